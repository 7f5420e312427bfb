package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample() Data {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	public := true
	past := now.Add(-time.Hour).UnixMilli()
	future := now.Add(time.Hour).UnixMilli()
	return Data{
		Brand: "Arunika",
		Courses: []models.Course{
			{ID: "c1", Title: "Go", Category: "Dev", Author: &models.Author{Name: "Rina"}, IsPublic: &public,
				Lessons: []models.Lesson{{ID: "l1"}, {ID: "l2"}, {ID: "l3"}, {ID: "l4"}}},
			{ID: "c2", Title: "Empty", Lessons: []models.Lesson{}},
		},
		Progress: models.ProgressState{CompletedLessons: []string{"l1"}},
		Tokens: []models.ShareToken{
			{Token: "t-old", CourseID: "c1", CreatedAt: past, ExpiresAt: &past},
			{Token: "t-new", CourseID: "c1", LessonID: "l2", CreatedAt: past, ExpiresAt: &future},
			{Token: "t-forever", CourseID: "c2", CreatedAt: past},
		},
		Now: now,
	}
}

func TestWrite_Rows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCourses, SheetTokens}, f.GetSheetList())

	rows, err := f.GetRows(SheetCourses)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Title", "Category", "Author", "Lessons", "Completed %", "Public"}, rows[0])
	assert.Equal(t, []string{"c1", "Go", "Dev", "Rina", "4", "25", "yes"}, rows[1])
	assert.Equal(t, "0", rows[2][5])
	assert.Equal(t, "no", rows[2][6])

	rows, err = f.GetRows(SheetTokens)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "expired", rows[1][5])
	assert.Equal(t, "active", rows[2][5])
	assert.Equal(t, "l2", rows[2][2])
	assert.Equal(t, "never", rows[3][4])
	assert.Equal(t, "active", rows[3][5])
}

func TestSave_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "report.xlsx")
	require.NoError(t, Save(path, Data{Now: time.Now()}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetTokens)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

// Package report exports the catalog and the share-token list to an xlsx
// workbook for admins.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/arunika/internal/filex"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/dmitrijs2005/arunika/internal/progress"
	"github.com/xuri/excelize/v2"
)

const (
	SheetCourses = "Courses"
	SheetTokens  = "Share tokens"
)

// Data is everything the workbook shows.
type Data struct {
	Brand    string
	Courses  []models.Course
	Progress models.ProgressState
	Tokens   []models.ShareToken
	Now      time.Time
}

var (
	courseHeader = []any{"ID", "Title", "Category", "Author", "Lessons", "Completed %", "Public"}
	tokenHeader  = []any{"Token", "Course", "Lesson", "Created", "Expires", "Status"}
)

// Build lays out the workbook. The caller closes the returned file.
func Build(d Data) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetCourses); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetTokens); err != nil {
		f.Close()
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	if err := writeCourses(f, d); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTokens(f, d); err != nil {
		f.Close()
		return nil, err
	}

	if d.Brand != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: d.Brand + " report", Creator: d.Brand}); err != nil {
			f.Close()
			return nil, fmt.Errorf("doc props: %w", err)
		}
	}
	return f, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, d Data) error {
	f, err := Build(d)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Save builds the workbook and stores it at path.
func Save(path string, d Data) error {
	f, err := Build(d)
	if err != nil {
		return err
	}
	defer f.Close()
	path, err = filex.EnsureParentDir(path)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeCourses(f *excelize.File, d Data) error {
	if err := header(f, SheetCourses, courseHeader); err != nil {
		return err
	}
	for i, c := range d.Courses {
		author := ""
		if c.Author != nil {
			author = c.Author.Name
		}
		row := []any{c.ID, c.Title, c.Category, author, len(c.Lessons), progress.Percent(c, d.Progress), yesNo(c.Public())}
		if err := setRow(f, SheetCourses, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetCourses, "A", "B", 36)
}

func writeTokens(f *excelize.File, d Data) error {
	if err := header(f, SheetTokens, tokenHeader); err != nil {
		return err
	}
	for i, t := range d.Tokens {
		expires, status := "never", "active"
		if exp, ok := t.Expiry(); ok {
			expires = exp.UTC().Format(time.RFC3339)
		}
		if !t.ValidAt(d.Now) {
			status = "expired"
		}
		row := []any{t.Token, t.CourseID, t.LessonID, time.UnixMilli(t.CreatedAt).UTC().Format(time.RFC3339), expires, status}
		if err := setRow(f, SheetTokens, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetTokens, "A", "A", 48)
}

func header(f *excelize.File, sheet string, cols []any) error {
	if err := setRow(f, sheet, 1, cols); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	return f.SetRowStyle(sheet, 1, 1, style)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package preview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/dmitrijs2005/arunika/internal/app"
	"github.com/dmitrijs2005/arunika/internal/config"
	"github.com/dmitrijs2005/arunika/internal/kvstore"
	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/dmitrijs2005/arunika/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LoginDelay = 0
	return cfg
}

// owner logs in as admin over store and returns the app for seeding.
func owner(t *testing.T, store kvstore.Store) *app.App {
	t.Helper()
	a, err := app.New(context.Background(), app.Deps{Store: store, Config: testConfig(), Log: logging.Nop()}, router.Entry{})
	require.NoError(t, err)
	require.NoError(t, a.Login(context.Background(), "admin1@arunika.com", "123456"))
	return a
}

func get(t *testing.T, s *Server, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Handler().ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestShared_Token(t *testing.T) {
	store := kvstore.NewMemoryStore()
	o := owner(t, store)
	tok, _, err := o.CreateShare(context.Background(), "course-1", "lesson-2")
	require.NoError(t, err)
	before, err := store.List(context.Background())
	require.NoError(t, err)

	s := NewServer(testConfig(), store, logging.Nop())
	rec, body := get(t, s, "/?share="+url.QueryEscape(tok.Token))

	require.Equal(t, http.StatusOK, rec.Code)
	course := body["course"].(map[string]any)
	assert.Equal(t, "course-1", course["id"])
	lessons := course["lessons"].([]any)
	require.Len(t, lessons, 1)
	assert.Equal(t, "lesson-2", lessons[0].(map[string]any)["id"])
	assert.Equal(t, "lesson-2", body["lessonId"])
	assert.NotNil(t, body["expiresAt"])
	assert.Equal(t, "Arunika", body["brand"].(map[string]any)["name"])

	after, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestShared_RawCourseID(t *testing.T) {
	s := NewServer(testConfig(), kvstore.NewMemoryStore(), logging.Nop())
	rec, body := get(t, s, "/?share=course-2")

	require.Equal(t, http.StatusOK, rec.Code)
	course := body["course"].(map[string]any)
	assert.Len(t, course["lessons"].([]any), 2)
	assert.NotContains(t, body, "expiresAt")
}

func TestShared_NoAccess(t *testing.T) {
	store := kvstore.NewMemoryStore()
	o := owner(t, store)
	tok, _, err := o.CreateShare(context.Background(), "course-1", "")
	require.NoError(t, err)

	s := NewServer(testConfig(), store, logging.Nop())
	s.now = func() time.Time { return time.Now().Add(31 * 24 * time.Hour) }

	for _, target := range []string{"/", "/?share=unknown", "/?share=" + tok.Token} {
		rec, body := get(t, s, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, map[string]any{"error": "no access"}, body, target)
	}
}

func TestShared_SeesOwnerChanges(t *testing.T) {
	store := kvstore.NewMemoryStore()
	s := NewServer(testConfig(), store, logging.Nop())
	o := owner(t, store)

	require.NoError(t, o.UpdateCourse(context.Background(), models.Course{ID: "course-2", Title: "Renamed"}))

	_, body := get(t, s, "/?share=course-2")
	assert.Equal(t, "Renamed", body["course"].(map[string]any)["title"])
}

func TestPublicPreview(t *testing.T) {
	s := NewServer(testConfig(), kvstore.NewMemoryStore(), logging.Nop())

	rec, body := get(t, s, "/preview?publicCourse=course-1&publicLesson=lesson-3")
	require.Equal(t, http.StatusOK, rec.Code)
	lessons := body["course"].(map[string]any)["lessons"].([]any)
	require.Len(t, lessons, 1)
	assert.Equal(t, "lesson-3", lessons[0].(map[string]any)["id"])

	rec, _ = get(t, s, "/preview?publicCourse=course-2")
	assert.Equal(t, http.StatusNotFound, rec.Code, "private course")

	rec, _ = get(t, s, "/preview")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type downStore struct{ *kvstore.MemoryStore }

func (downStore) Ping(context.Context) error { return errors.New("down") }

func TestHealth(t *testing.T) {
	s := NewServer(testConfig(), kvstore.NewMemoryStore(), logging.Nop())
	rec, body := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	s = NewServer(testConfig(), downStore{kvstore.NewMemoryStore()}, logging.Nop())
	rec, body = get(t, s, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", body["status"])
}

func TestCORS(t *testing.T) {
	s := NewServer(testConfig(), kvstore.NewMemoryStore(), logging.Nop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.PreviewAddr = "127.0.0.1:0"
	s := NewServer(cfg, kvstore.NewMemoryStore(), logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

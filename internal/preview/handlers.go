package preview

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/arunika/internal/app"
	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/dmitrijs2005/arunika/internal/router"
	"github.com/gin-gonic/gin"
)

type brandResponse struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type courseResponse struct {
	Brand     brandResponse `json:"brand"`
	Course    models.Course `json:"course"`
	LessonID  string        `json:"lessonId,omitempty"`
	ExpiresAt *int64        `json:"expiresAt,omitempty"`
}

// shared serves GET /?share=<token-or-courseId>.
func (s *Server) shared(c *gin.Context) {
	entry := router.EntryFromQuery(c.Request.URL.Query())

	lms, err := s.open(c.Request.Context(), entry)
	if err != nil {
		s.fail(c, err)
		return
	}
	v, err := lms.SharedCourse()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response(lms, v))
}

// publicPreview serves GET /preview?publicCourse=<id>&publicLesson=<id>.
func (s *Server) publicPreview(c *gin.Context) {
	entry := router.EntryFromQuery(c.Request.URL.Query())
	if entry.PublicCourse == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicCourse is required"})
		return
	}

	lms, err := s.open(c.Request.Context(), router.Entry{})
	if err != nil {
		s.fail(c, err)
		return
	}
	v, err := lms.PublicPreview(entry.PublicCourse, entry.PublicLesson)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response(lms, v))
}

func (s *Server) health(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.logger.Error(c.Request.Context(), "store ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "ok"})
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, common.ErrNoAccess) {
		c.JSON(http.StatusNotFound, gin.H{"error": common.ErrNoAccess.Error()})
		return
	}
	s.logger.Error(c.Request.Context(), "request failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func response(lms *app.App, v app.SharedView) courseResponse {
	b := lms.Brand()
	out := courseResponse{
		Brand:    brandResponse{Name: b.Name, Logo: b.Logo},
		Course:   v.Scoped(),
		LessonID: v.LessonID,
	}
	if v.Token != nil {
		out.ExpiresAt = v.Token.ExpiresAt
	}
	return out
}

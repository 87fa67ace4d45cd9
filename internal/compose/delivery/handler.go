package delivery

import (
	"errors"
	"net/http"

	"coursemail-backend/internal/compose/usecase"
	courseUsecase "coursemail-backend/internal/course/usecase"
	draftUsecase "coursemail-backend/internal/draft/usecase"
	"coursemail-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// ComposeHandler handles compose session HTTP requests
type ComposeHandler struct {
	composeUsecase usecase.ComposeUsecase
}

// NewComposeHandler creates a new ComposeHandler
func NewComposeHandler(composeUsecase usecase.ComposeUsecase) *ComposeHandler {
	return &ComposeHandler{
		composeUsecase: composeUsecase,
	}
}

// GetComposeSession returns the compose form description for the user in a
// course, optionally seeded from one of their drafts
// GET /api/courses/:courseId/compose?draft_id=...
func (h *ComposeHandler) GetComposeSession(c *gin.Context) {
	userID := c.GetString("userID")
	courseID := c.Param("courseId")
	draftID := c.Query("draft_id")

	session, err := h.composeUsecase.BuildComposeSession(userID, courseID, draftID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SubmitComposeSession accepts a compose form submission. With save_only the
// message is stored as a draft; otherwise it is validated and queued for
// dispatch.
// POST /api/courses/:courseId/compose
func (h *ComposeHandler) SubmitComposeSession(c *gin.Context) {
	userID := c.GetString("userID")
	courseID := c.Param("courseId")

	var req usecase.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, fieldErrors, err := h.composeUsecase.SubmitComposeSession(userID, courseID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(fieldErrors) > 0 {
		translated := make(map[string]string, len(fieldErrors))
		for field, messageID := range fieldErrors {
			translated[field] = h.t(c, messageID)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": translated})
		return
	}

	status := http.StatusOK
	if req.DraftID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, draft)
}

// SearchRecipients returns the course's recipient options matching a query
// GET /api/courses/:courseId/recipients?q=...
func (h *ComposeHandler) SearchRecipients(c *gin.Context) {
	userID := c.GetString("userID")
	courseID := c.Param("courseId")
	query := c.Query("q")

	options, err := h.composeUsecase.SearchRecipients(userID, courseID, query)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipients": options})
}

func (h *ComposeHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, courseUsecase.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": h.t(c, "course_not_found")})
	case errors.Is(err, draftUsecase.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": h.t(c, "draft_not_found")})
	case errors.Is(err, usecase.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": h.t(c, "compose_not_allowed")})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *ComposeHandler) t(c *gin.Context, messageID string) string {
	return i18n.T(i18n.GetLocalizer(c.GetHeader("Accept-Language")), messageID)
}

package delivery

import (
	"errors"
	"net/http"

	"coursemail-backend/internal/draft/usecase"
	"coursemail-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// DraftHandler handles message draft HTTP requests
type DraftHandler struct {
	draftUsecase usecase.DraftUsecase
}

// NewDraftHandler creates a new DraftHandler
func NewDraftHandler(draftUsecase usecase.DraftUsecase) *DraftHandler {
	return &DraftHandler{
		draftUsecase: draftUsecase,
	}
}

// GetCourseDrafts returns the user's editable drafts for a course
// GET /api/courses/:courseId/drafts
func (h *DraftHandler) GetCourseDrafts(c *gin.Context) {
	userID := c.GetString("userID")
	courseID := c.Param("courseId")

	drafts, err := h.draftUsecase.GetCourseDrafts(userID, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

// GetDraft returns one of the user's drafts
// GET /api/drafts/:id
func (h *DraftHandler) GetDraft(c *gin.Context) {
	userID := c.GetString("userID")
	draftID := c.Param("id")

	draft, err := h.draftUsecase.GetUserDraft(userID, draftID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(i18n.GetLocalizer(c.GetHeader("Accept-Language")), "draft_not_found")})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// DeleteDraft removes one of the user's drafts
// DELETE /api/drafts/:id
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	userID := c.GetString("userID")
	draftID := c.Param("id")

	if err := h.draftUsecase.DeleteDraft(userID, draftID); err != nil {
		if errors.Is(err, usecase.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(i18n.GetLocalizer(c.GetHeader("Accept-Language")), "draft_not_found")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "draft deleted"})
}

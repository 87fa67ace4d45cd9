package api

import (
	"errors"
	"net/http"

	coursedomain "coursemail-backend/internal/course/domain"
	courseUsecase "coursemail-backend/internal/course/usecase"

	"github.com/gin-gonic/gin"
)

// AddAlternateEmailRequest represents the request body for registering an
// alternate sender address
type AddAlternateEmailRequest struct {
	Email string `json:"email" binding:"required"`
	Label string `json:"label"`
}

// GetCourseSettings returns a course's resolved messaging configuration
// GET /api/courses/:courseId/settings
func (h *Handler) GetCourseSettings(c *gin.Context) {
	courseID := c.Param("courseId")

	if !h.requireCapability(c, courseID, coursedomain.CapabilityConfigure) {
		return
	}

	resolved, err := h.courseUsecase.ResolveMessagingConfig(courseID)
	if err != nil {
		renderCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// UpdateCourseSettings applies per-course overrides of the messaging defaults
// PUT /api/courses/:courseId/settings
func (h *Handler) UpdateCourseSettings(c *gin.Context) {
	courseID := c.Param("courseId")

	if !h.requireCapability(c, courseID, coursedomain.CapabilityConfigure) {
		return
	}

	var updates courseUsecase.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := h.courseUsecase.UpdateSettings(courseID, updates)
	if err != nil {
		renderCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// ListAlternateEmails returns the user's approved alternate sender addresses
// for a course
// GET /api/courses/:courseId/alternate-emails
func (h *Handler) ListAlternateEmails(c *gin.Context) {
	userID := c.GetString("userID")
	courseID := c.Param("courseId")

	if !h.requireCapability(c, courseID, coursedomain.CapabilitySelectAlternate) {
		return
	}

	emails, err := h.courseUsecase.GetAlternateEmails(courseID, userID)
	if err != nil {
		renderCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alternate_emails": emails})
}

// AddAlternateEmail registers a new alternate sender address for the user
// POST /api/courses/:courseId/alternate-emails
func (h *Handler) AddAlternateEmail(c *gin.Context) {
	userID := c.GetString("userID")
	courseID := c.Param("courseId")

	if !h.requireCapability(c, courseID, coursedomain.CapabilitySelectAlternate) {
		return
	}

	var req AddAlternateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alt, err := h.courseUsecase.AddAlternateEmail(courseID, userID, req.Email, req.Label)
	if err != nil {
		if errors.Is(err, courseUsecase.ErrInvalidEmail) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"email": err.Error()}})
			return
		}
		renderCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alt)
}

// requireCapability aborts the request unless the user's role in the course
// carries the capability
func (h *Handler) requireCapability(c *gin.Context, courseID, capability string) bool {
	userID := c.GetString("userID")

	allowed, err := h.courseUsecase.HasCapability(userID, courseID, capability)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient course permissions"})
		return false
	}
	return true
}

func renderCourseError(c *gin.Context, err error) {
	if errors.Is(err, courseUsecase.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

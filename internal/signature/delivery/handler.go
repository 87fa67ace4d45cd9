package delivery

import (
	"errors"
	"net/http"

	"coursemail-backend/internal/signature/usecase"
	"coursemail-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// SignatureHandler handles signature HTTP requests
type SignatureHandler struct {
	sigUsecase usecase.SignatureUsecase
}

// NewSignatureHandler creates a new SignatureHandler
func NewSignatureHandler(sigUsecase usecase.SignatureUsecase) *SignatureHandler {
	return &SignatureHandler{
		sigUsecase: sigUsecase,
	}
}

// CreateSignatureRequest represents the request body for creating a signature
type CreateSignatureRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// ListSignatures returns the user's signatures as selection options
// GET /api/signatures
func (h *SignatureHandler) ListSignatures(c *gin.Context) {
	userID := c.GetString("userID")

	options, err := h.sigUsecase.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"signatures": options})
}

// GetSignature returns one of the user's signatures
// GET /api/signatures/:id
func (h *SignatureHandler) GetSignature(c *gin.Context) {
	userID := c.GetString("userID")
	signatureID := c.Param("id")

	sig, err := h.sigUsecase.GetUserSignature(userID, signatureID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sig == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": h.t(c, "signature_not_found")})
		return
	}

	c.JSON(http.StatusOK, sig)
}

// CreateSignature creates a new signature
// POST /api/signatures
func (h *SignatureHandler) CreateSignature(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sig, err := h.sigUsecase.CreateSignature(userID, req.Title, req.Body, req.IsDefault)
	if err != nil {
		if fieldErrors := h.fieldErrors(c, err); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sig)
}

// UpdateSignature updates an existing signature
// PUT /api/signatures/:id
func (h *SignatureHandler) UpdateSignature(c *gin.Context) {
	userID := c.GetString("userID")
	signatureID := c.Param("id")

	var updates usecase.SignatureUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sig, err := h.sigUsecase.UpdateSignature(userID, signatureID, updates)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.t(c, "signature_not_found")})
			return
		}
		if fieldErrors := h.fieldErrors(c, err); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sig)
}

// DeleteSignature soft-deletes a signature
// DELETE /api/signatures/:id
func (h *SignatureHandler) DeleteSignature(c *gin.Context) {
	userID := c.GetString("userID")
	signatureID := c.Param("id")

	if err := h.sigUsecase.DeleteSignature(userID, signatureID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.t(c, "signature_not_found")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signature deleted"})
}

// fieldErrors maps validation failures to a field -> message map, or nil if
// the error is not user-correctable
func (h *SignatureHandler) fieldErrors(c *gin.Context, err error) map[string]string {
	switch {
	case errors.Is(err, usecase.ErrEmptyTitle):
		return map[string]string{"title": h.t(c, "signature_title_required")}
	case errors.Is(err, usecase.ErrDuplicateTitle):
		return map[string]string{"title": h.t(c, "signature_title_must_be_unique")}
	case errors.Is(err, usecase.ErrEmptyBody):
		return map[string]string{"body": h.t(c, "signature_body_required")}
	}
	return nil
}

func (h *SignatureHandler) t(c *gin.Context, messageID string) string {
	return i18n.T(i18n.GetLocalizer(c.GetHeader("Accept-Language")), messageID)
}

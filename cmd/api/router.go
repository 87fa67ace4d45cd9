package api

import (
	"net/http"

	"coursemail-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		// Signature routes (protected)
		signatures := api.Group("/signatures")
		signatures.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			signatures.GET("", h.signatureHandler.ListSignatures)
			signatures.POST("", h.signatureHandler.CreateSignature)
			signatures.GET("/:id", h.signatureHandler.GetSignature)
			signatures.PUT("/:id", h.signatureHandler.UpdateSignature)
			signatures.DELETE("/:id", h.signatureHandler.DeleteSignature)
		}

		// Draft routes (protected)
		drafts := api.Group("/drafts")
		drafts.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			drafts.GET("/:id", h.draftHandler.GetDraft)
			drafts.DELETE("/:id", h.draftHandler.DeleteDraft)
		}

		// Course-scoped routes (protected)
		courses := api.Group("/courses")
		courses.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			courses.GET("/:courseId/compose", h.composeHandler.GetComposeSession)
			courses.POST("/:courseId/compose", h.composeHandler.SubmitComposeSession)
			courses.GET("/:courseId/recipients", h.composeHandler.SearchRecipients)
			courses.GET("/:courseId/drafts", h.draftHandler.GetCourseDrafts)
			courses.GET("/:courseId/settings", h.GetCourseSettings)
			courses.PUT("/:courseId/settings", h.UpdateCourseSettings)
			courses.GET("/:courseId/alternate-emails", h.ListAlternateEmails)
			courses.POST("/:courseId/alternate-emails", h.AddAlternateEmail)
		}
	}
}

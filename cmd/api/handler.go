package api

import (
	authUsecase "coursemail-backend/internal/auth/usecase"
	composeDelivery "coursemail-backend/internal/compose/delivery"
	composeUsecasePkg "coursemail-backend/internal/compose/usecase"
	courseUsecasePkg "coursemail-backend/internal/course/usecase"
	draftDelivery "coursemail-backend/internal/draft/delivery"
	draftUsecasePkg "coursemail-backend/internal/draft/usecase"
	sigDelivery "coursemail-backend/internal/signature/delivery"
	sigUsecasePkg "coursemail-backend/internal/signature/usecase"
	"coursemail-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	courseUsecase    courseUsecasePkg.CourseUsecase
	config           *config.Config
	composeHandler   *composeDelivery.ComposeHandler
	signatureHandler *sigDelivery.SignatureHandler
	draftHandler     *draftDelivery.DraftHandler
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	courseUc courseUsecasePkg.CourseUsecase,
	signatureUc sigUsecasePkg.SignatureUsecase,
	draftUc draftUsecasePkg.DraftUsecase,
	composeUc composeUsecasePkg.ComposeUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:      authUc,
		courseUsecase:    courseUc,
		config:           cfg,
		composeHandler:   composeDelivery.NewComposeHandler(composeUc),
		signatureHandler: sigDelivery.NewSignatureHandler(signatureUc),
		draftHandler:     draftDelivery.NewDraftHandler(draftUc),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept-Language, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h)

	return r.Run(addr)
}

package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/luffy2025/rcli/internal/domain/keys"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	signingKeyUploadService keys.SigningKeyUploadService,
	signingKeyMetadataService keys.SigningKeyMetadataService,
	textSigningService keys.TextSigningService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(signingKeyUploadService, signingKeyMetadataService)
	v1.POST("/keys", keyHandler.UploadKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Text Routes
	textHandler := NewTextHandler(textSigningService)
	v1.POST("/text/sign", textHandler.Sign)
	v1.POST("/text/verify", textHandler.Verify)
}

package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luffy2025/rcli/internal/domain/keys"
)

// TextHandler defines the interface for signing and verifying text with stored keys
type TextHandler interface {
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type textHandler struct {
	textSigningService keys.TextSigningService
}

// NewTextHandler creates a new TextHandler
func NewTextHandler(textSigningService keys.TextSigningService) TextHandler {
	return &textHandler{textSigningService: textSigningService}
}

// Sign handles the POST request to sign text with a stored key
// @Summary Sign text
// @Description Sign the content with the stored key and return a URL-safe unpadded base64 signature.
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body SignTextRequest true "Text to sign"
// @Success 200 {object} SignTextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /text/sign [post]
func (handler *textHandler) Sign(ctx *gin.Context) {
	var request SignTextRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid sign request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	signature, err := handler.textSigningService.SignWithKey(ctx, request.KeyID, []byte(request.Content))
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error signing with key %s: %v", request.KeyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, SignTextResponse{Signature: signature})
}

// Verify handles the POST request to verify a text signature with a stored key
// @Summary Verify text
// @Description Verify a URL-safe unpadded base64 signature over the content with the stored key.
// @Tags Text
// @Accept json
// @Produce json
// @Param requestBody body VerifyTextRequest true "Text and signature"
// @Success 200 {object} VerifyTextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /text/verify [post]
func (handler *textHandler) Verify(ctx *gin.Context) {
	var request VerifyTextRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid verify request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	valid, err := handler.textSigningService.VerifyWithKey(ctx, request.KeyID, []byte(request.Content), request.Signature)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error verifying with key %s: %v", request.KeyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, VerifyTextResponse{Valid: valid})
}

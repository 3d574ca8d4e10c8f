package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
)

// KeyHandler defines the interface for handling signing key operations
type KeyHandler interface {
	UploadKeys(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type keyHandler struct {
	signingKeyUploadService   keys.SigningKeyUploadService
	signingKeyMetadataService keys.SigningKeyMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(signingKeyUploadService keys.SigningKeyUploadService, signingKeyMetadataService keys.SigningKeyMetadataService) KeyHandler {
	return &keyHandler{
		signingKeyUploadService:   signingKeyUploadService,
		signingKeyMetadataService: signingKeyMetadataService,
	}
}

// UploadKeys handles the POST request to generate and store signing keys
// @Summary Generate and store signing keys
// @Description Generate a key set for the requested format and store every key with its metadata.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body UploadKeyRequest true "Signing key request"
// @Success 201 {array} SigningKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) UploadKeys(ctx *gin.Context) {
	var request UploadKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	format, err := textsign.ParseFormat(request.Format)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	opts := textsign.GenerateOptions{KeyMode: textsign.KeyMaterialFullRange}
	if request.KeyMode != "" {
		opts.KeyMode = textsign.KeyMaterialMode(request.KeyMode)
	}

	signingKeyMetas, err := handler.signingKeyUploadService.Upload(ctx, request.UserID, format, opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error uploading key: %v", err)})
		return
	}

	listResponse := []SigningKeyMetaResponse{}
	for _, signingKeyMeta := range signingKeyMetas {
		listResponse = append(listResponse, newSigningKeyMetaResponse(signingKeyMeta))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list signing key metadata with optional query parameters
// @Summary List signing key metadata based on query parameters
// @Description Fetch signing key metadata filtered by user, key pair, format, type and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param userId query string false "User ID"
// @Param keyPairId query string false "Key pair ID"
// @Param format query string false "Signing format"
// @Param type query string false "Key type"
// @Param dateTimeCreated query string false "Key creation date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} SigningKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewSigningKeyQuery()

	query.UserID = ctx.Query("userId")
	query.KeyPairID = ctx.Query("keyPairId")
	query.Format = ctx.Query("format")
	query.Type = ctx.Query("type")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		value := ctx.Query(name)
		if len(value) == 0 {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %v", name, err)})
			return
		}
		*target = parsed
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	signingKeyMetas, err := handler.signingKeyMetadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []SigningKeyMetaResponse{}
	for _, signingKeyMeta := range signingKeyMetas {
		listResponse = append(listResponse, newSigningKeyMetaResponse(signingKeyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve signing key metadata by ID
// @Summary Retrieve signing key metadata by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} SigningKeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	signingKeyMeta, err := handler.signingKeyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("key with id %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, newSigningKeyMetaResponse(signingKeyMeta))
}

// DeleteByID handles the DELETE request to delete a key by ID
// @Summary Delete a signing key by ID
// @Description Delete a specific signing key and its metadata by ID.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.signingKeyMetadataService.DeleteByID(ctx, keyID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deleting key with id %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key with id %s", keyID)})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, textsign.ErrBase64Decode),
		errors.Is(err, textsign.ErrInvalidSignatureLength),
		errors.Is(err, textsign.ErrKeyTypeMismatch),
		errors.Is(err, textsign.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
)

const testKeyID = "0e6a1d2c-7b3f-4a5e-9c8d-1f2e3d4c5b6a"

func newTestKeyMeta() *keys.SigningKeyMeta {
	return &keys.SigningKeyMeta{
		ID:              testKeyID,
		KeyPairID:       "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a",
		Format:          "blake3",
		Type:            textsign.KeyTypeSymmetric,
		DateTimeCreated: time.Now(),
		UserID:          testUUID,
	}
}

func newTestKeyHandler() (KeyHandler, *MockSigningKeyUploadService, *MockSigningKeyMetadataService) {
	mockUploadService := new(MockSigningKeyUploadService)
	mockMetadataService := new(MockSigningKeyMetadataService)
	return NewKeyHandler(mockUploadService, mockMetadataService), mockUploadService, mockMetadataService
}

func TestKeyHandler_UploadKeys_Success(t *testing.T) {
	handler, mockUploadService, _ := newTestKeyHandler()

	mockUploadService.
		On("Upload", mock.Anything, testUUID, textsign.FormatBlake3, textsign.GenerateOptions{KeyMode: textsign.KeyMaterialFullRange}).
		Return([]*keys.SigningKeyMeta{newTestKeyMeta()}, nil)

	requestBody := fmt.Sprintf(`{"user_id": %q, "format": "BLAKE3"}`, testUUID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.UploadKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), testKeyID)
	mockUploadService.AssertExpectations(t)
}

func TestKeyHandler_UploadKeys_CharsetMode(t *testing.T) {
	handler, mockUploadService, _ := newTestKeyHandler()

	mockUploadService.
		On("Upload", mock.Anything, testUUID, textsign.FormatBlake3, textsign.GenerateOptions{KeyMode: textsign.KeyMaterialCharset}).
		Return([]*keys.SigningKeyMeta{newTestKeyMeta()}, nil)

	requestBody := fmt.Sprintf(`{"user_id": %q, "format": "blake3", "key_mode": "charset"}`, testUUID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.UploadKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUploadService.AssertExpectations(t)
}

func TestKeyHandler_UploadKeys_ValidationError(t *testing.T) {
	handler, mockUploadService, _ := newTestKeyHandler()

	for _, body := range []string{
		`not json`,
		fmt.Sprintf(`{"user_id": %q, "format": "rsa"}`, testUUID),
		`{"user_id": "user-1", "format": "blake3"}`,
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.UploadKeys(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	mockUploadService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestKeyHandler_ListMetadata_Success(t *testing.T) {
	handler, _, mockMetadataService := newTestKeyHandler()

	mockMetadataService.
		On("List", mock.Anything, mock.MatchedBy(func(query *keys.SigningKeyQuery) bool {
			return query.Format == "blake3" && query.Limit == 10 && query.SortOrder == "desc"
		})).
		Return([]*keys.SigningKeyMeta{newTestKeyMeta()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys?format=blake3&limit=10&sortOrder=desc", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testKeyID)
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_ListMetadata_ValidationError(t *testing.T) {
	handler, _, mockMetadataService := newTestKeyHandler()

	for _, url := range []string{
		"/keys?sortOrder=invalid",
		"/keys?limit=ten",
		"/keys?dateTimeCreated=yesterday",
		"/keys?format=rsa",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", url, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.ListMetadata(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
	mockMetadataService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestKeyHandler_GetMetadataByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler, _, mockMetadataService := newTestKeyHandler()
		mockMetadataService.On("GetByID", mock.Anything, testKeyID).Return(newTestKeyMeta(), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/keys/"+testKeyID, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{gin.Param{Key: "id", Value: testKeyID}}

		handler.GetMetadataByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"format":"blake3"`)
		mockMetadataService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		handler, _, mockMetadataService := newTestKeyHandler()
		mockMetadataService.On("GetByID", mock.Anything, testKeyID).
			Return(nil, fmt.Errorf("lookup: %w", keys.ErrKeyNotFound))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/keys/"+testKeyID, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{gin.Param{Key: "id", Value: testKeyID}}

		handler.GetMetadataByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestKeyHandler_DeleteByID(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		handler, _, mockMetadataService := newTestKeyHandler()
		mockMetadataService.On("DeleteByID", mock.Anything, testKeyID).Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/keys/"+testKeyID, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{gin.Param{Key: "id", Value: testKeyID}}

		handler.DeleteByID(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockMetadataService.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		handler, _, mockMetadataService := newTestKeyHandler()
		mockMetadataService.On("DeleteByID", mock.Anything, testKeyID).Return(errors.New("disk gone"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/keys/"+testKeyID, nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{gin.Param{Key: "id", Value: testKeyID}}

		handler.DeleteByID(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

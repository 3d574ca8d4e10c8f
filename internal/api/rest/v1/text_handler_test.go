//go:build unit
// +build unit

package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
)

func serveText(handle func(*gin.Context), url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handle(c)
	return w
}

func TestTextHandler_Sign(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		mockService := new(MockTextSigningService)
		mockService.On("SignWithKey", mock.Anything, testKeyID, []byte("hello world")).
			Return("9w1nUwM4JGplIurp2q2SwN_UvPTlEWAtlumv0dIhBHk", nil)

		w := serveText(NewTextHandler(mockService).Sign, "/text/sign",
			fmt.Sprintf(`{"key_id": %q, "content": "hello world"}`, testKeyID))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "9w1nUwM4JGplIurp2q2SwN_UvPTlEWAtlumv0dIhBHk")
		mockService.AssertExpectations(t)
	})

	t.Run("unknown key", func(t *testing.T) {
		mockService := new(MockTextSigningService)
		mockService.On("SignWithKey", mock.Anything, testKeyID, mock.Anything).
			Return("", keys.ErrKeyNotFound)

		w := serveText(NewTextHandler(mockService).Sign, "/text/sign",
			fmt.Sprintf(`{"key_id": %q, "content": "x"}`, testKeyID))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("public key", func(t *testing.T) {
		mockService := new(MockTextSigningService)
		mockService.On("SignWithKey", mock.Anything, testKeyID, mock.Anything).
			Return("", textsign.ErrKeyTypeMismatch)

		w := serveText(NewTextHandler(mockService).Sign, "/text/sign",
			fmt.Sprintf(`{"key_id": %q, "content": "x"}`, testKeyID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid key id", func(t *testing.T) {
		mockService := new(MockTextSigningService)

		w := serveText(NewTextHandler(mockService).Sign, "/text/sign", `{"key_id": "abc", "content": "x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "SignWithKey", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTextHandler_Verify(t *testing.T) {
	tests := []struct {
		name       string
		valid      bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{"valid", true, nil, http.StatusOK, `"valid":true`},
		{"tampered", false, nil, http.StatusOK, `"valid":false`},
		{"bad base64", false, fmt.Errorf("decode: %w", textsign.ErrBase64Decode), http.StatusBadRequest, "message"},
		{"bad length", false, textsign.ErrInvalidSignatureLength, http.StatusBadRequest, "message"},
		{"unknown key", false, keys.ErrKeyNotFound, http.StatusNotFound, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTextSigningService)
			mockService.On("VerifyWithKey", mock.Anything, testKeyID, []byte("hello world"), "c2ln").
				Return(tt.valid, tt.err)

			w := serveText(NewTextHandler(mockService).Verify, "/text/verify",
				fmt.Sprintf(`{"key_id": %q, "content": "hello world", "signature": "c2ln"}`, testKeyID))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			mockService.AssertExpectations(t)
		})
	}
}

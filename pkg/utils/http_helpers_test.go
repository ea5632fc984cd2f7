package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "maintenance-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext("/api/requests")
	require.NoError(t, SuccessResponse(c, []string{"a"}, "ok", http.StatusOK, 1))

	body := decode(t, rec)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, []interface{}{"a"}, body["body"])
}

func TestSuccessResponse_WithPagination(t *testing.T) {
	c, rec := newContext("/api/requests?withPagination=true&limit=2&page=2")
	require.NoError(t, SuccessResponse(c, []string{"c", "d"}, "ok", http.StatusOK, 5))

	body := decode(t, rec)["body"].(map[string]interface{})
	assert.Equal(t, []interface{}{"c", "d"}, body["list"])
	assert.Equal(t, map[string]interface{}{
		"total_count": float64(5),
		"page":        float64(2),
		"limit":       float64(2),
		"total_pages": float64(3),
	}, body["pagination"])
}

func TestErrorResponse(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	verr := validator.New().Struct(payload{})
	require.Error(t, verr)

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"http error", apperrors.NewBadRequestError("invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"validation", verr, http.StatusBadRequest, "validation failed: field 'Name' failed check 'required'"},
		{"wrapped sentinel", fmt.Errorf("load: %w", apperrors.ErrNotFound), http.StatusNotFound, apperrors.ErrNotFound.Error()},
		{"conflict", apperrors.ErrDuplicateEmail, http.StatusConflict, apperrors.ErrDuplicateEmail.Error()},
		{"unknown", fmt.Errorf("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("/")
			require.NoError(t, ErrorResponse(c, tt.err, zap.NewNop()))

			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["status"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.NoError(t, ComparePasswords(hash, "secret"))
	assert.Error(t, ComparePasswords(hash, "guess"))
}

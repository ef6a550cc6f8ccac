package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidFormat))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(ErrInternalServer))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInternalServer, "failed to encode analysis result", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"SRV_001","message":"failed to encode analysis result"}`, rec.Body.String())
}

package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-insights/pkg/apiErrors"
)

func TestNew(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/healthcheck",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}),
	}))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedCode   string
	}{
		{name: "Rota registrada", method: http.MethodGet, path: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v2/unknown", expectedStatus: http.StatusNotFound, expectedCode: apiErrors.ErrRouteNotFound},
		{name: "Método não suportado", method: http.MethodDelete, path: "/healthcheck", expectedStatus: http.StatusMethodNotAllowed, expectedCode: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode == "" {
				assert.Equal(t, "ok", rec.Body.String())
				return
			}

			var apiErr apiErrors.APIError
			require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Contains(t, apiErr.Message, tt.path)
		})
	}
}

package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkHealth(t *testing.T, h *HealthController) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", h.Check)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("refused") }

	tests := []struct {
		name     string
		database Probe
		cache    Probe
		want     HealthResponse
	}{
		{"all up", up, up, HealthResponse{Status: "ok", Database: "connected", Cache: "connected"}},
		{"no cache configured", up, nil, HealthResponse{Status: "ok", Database: "connected", Cache: "disabled"}},
		{"cache down", up, down, HealthResponse{Status: "ok", Database: "connected", Cache: "disconnected"}},
		{"database down", down, up, HealthResponse{Status: "degraded", Database: "disconnected", Cache: "connected"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkHealth(t, NewHealthController(tt.database, tt.cache))
			assert.NotEmpty(t, got.Timestamp)
			got.Timestamp = ""
			assert.Equal(t, tt.want, got)
		})
	}
}

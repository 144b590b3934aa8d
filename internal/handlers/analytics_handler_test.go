package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"outreachai_backend/internal/config"
	"outreachai_backend/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettings struct {
	values map[string]string
}

func (s *stubSettings) All() (map[string]interface{}, error) { return nil, nil }
func (s *stubSettings) Set(key string, v interface{}) error  { return nil }
func (s *stubSettings) GetInt(key string, fallback int) int  { return fallback }

func (s *stubSettings) GetString(key, fallback string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

func diagnosticsRouter(settings *stubSettings, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalyticsHandler(NewBaseHandler(nil), nil, settings, cfg)
	r.GET("/diagnostics/tracking", h.TrackingDiagnostics)
	return r
}

// The base URL diagnostics reports must be the one outgoing mail
// resolves, including the admin-managed app_base_url setting.
func TestTrackingDiagnostics_ReportsAdminSetting(t *testing.T) {
	cfg := &config.Config{}
	cfg.Tracking.AppBaseURL = "https://config.example.com"
	settings := &stubSettings{values: map[string]string{
		"app_base_url": "https://admin.example.com",
	}}
	r := diagnosticsRouter(settings, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/diagnostics/tracking", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BaseURL string `json:"base_url"`
		Source  string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://admin.example.com", resp.BaseURL)
	assert.Equal(t, tracking.SourceSetting, resp.Source)
}

func TestTrackingDiagnostics_FallsBackToConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Tracking.AppBaseURL = "https://config.example.com"
	r := diagnosticsRouter(&stubSettings{}, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/diagnostics/tracking", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BaseURL string `json:"base_url"`
		Source  string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://config.example.com", resp.BaseURL)
	assert.Equal(t, tracking.SourceOverride, resp.Source)
}

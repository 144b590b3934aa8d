package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"outreachai_backend/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type trackingSpy struct {
	opens  []string
	clicks []string
}

func (s *trackingSpy) RecordOpen(trackingID, ip, userAgent string) {
	s.opens = append(s.opens, trackingID)
}

func (s *trackingSpy) RecordClick(trackingID, url, ip, userAgent string) {
	s.clicks = append(s.clicks, trackingID+" "+url)
}

func trackingRouter(spy *trackingSpy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTrackingHandler(spy)
	r.GET(tracking.OpenPath+"/:id", h.Open)
	r.GET(tracking.ClickPath+"/:id", h.Click)
	return r
}

func TestTrackingOpen_AlwaysServesPixel(t *testing.T) {
	spy := &trackingSpy{}
	r := trackingRouter(spy)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, tracking.OpenPath+"/trk-1.gif", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
	assert.Equal(t, tracking.PixelGIF, w.Body.Bytes())
	// The .gif suffix is cosmetic and must not reach the service.
	assert.Equal(t, []string{"trk-1"}, spy.opens)
}

func TestTrackingClick_RedirectsToTarget(t *testing.T) {
	spy := &trackingSpy{}
	r := trackingRouter(spy)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		tracking.ClickPath+"/trk-1?url=https%3A%2F%2Fexample.com%2Fjobs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/jobs", w.Header().Get("Location"))
	assert.Equal(t, []string{"trk-1 https://example.com/jobs"}, spy.clicks)
}

func TestTrackingClick_MissingURLFallsBackToRoot(t *testing.T) {
	spy := &trackingSpy{}
	r := trackingRouter(spy)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, tracking.ClickPath+"/trk-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Empty(t, spy.clicks)
}

func TestTrackingClick_ScriptURLFallsBackToRoot(t *testing.T) {
	spy := &trackingSpy{}
	r := trackingRouter(spy)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		tracking.ClickPath+"/trk-1?url=javascript%3Aalert(1)", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestIsRedirectable(t *testing.T) {
	assert.True(t, isRedirectable("https://example.com"))
	assert.True(t, isRedirectable("/dashboard"))
	assert.False(t, isRedirectable("javascript:alert(1)"))
	assert.False(t, isRedirectable("data:text/html,x"))
	assert.False(t, isRedirectable("ftp://example.com"))
}

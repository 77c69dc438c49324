package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, *fakeGenerator) {
	t.Helper()
	generate, generator, _, _, records := newTestHandler()

	injector := do.New()
	do.ProvideValue(injector, generate)
	do.ProvideValue(injector, &GalleryHandler{verifier: &fakeVerifier{subject: "U1"}, records: records})
	do.ProvideValue(injector, &SiteHandler{})

	router, err := NewRouter(injector)
	require.NoError(t, err)
	return router, generator
}

func TestPreflightBypassesAuth(t *testing.T) {
	router, generator := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/generate-image", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "authorization")
	assert.Empty(t, w.Body.Bytes())
	assert.Zero(t, generator.calls)
}

func TestRouterGenerateRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/generate-image", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

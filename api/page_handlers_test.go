package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlphaHasher/churchlink-go/cache"
	"github.com/AlphaHasher/churchlink-go/i18n"
	"github.com/AlphaHasher/churchlink-go/models"
	"github.com/AlphaHasher/churchlink-go/store"
	"github.com/AlphaHasher/churchlink-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }

func testRouter(t *testing.T) (*gin.Engine, *Deps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.NewDatabase(&store.Config{SQLitePath: filepath.Join(t.TempDir(), "api.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	localeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(localeDir, "en.json"), []byte(`{}`), 0644))
	bundle, err := i18n.Load(localeDir, "en", []string{"en"})
	require.NoError(t, err)

	hash, err := utils.HashBuilderSecret("builder-secret")
	require.NoError(t, err)

	d := &Deps{
		Cache:             cache.NewManager(time.Hour, time.Hour),
		Pages:             store.NewPageRepository(db),
		Assets:            store.NewAssetRepository(db),
		Bundle:            bundle,
		JWTSecret:         "test-jwt-secret",
		AESKey:            "0123456789abcdef",
		BuilderSecretHash: hash,
	}
	Configure(d)
	t.Cleanup(func() { Configure(nil) })

	r := gin.New()
	r.GET("/api/v1/pages/:slug/html", GetPageHTMLHandler)
	r.POST("/api/v1/pages/:slug/html", RenderPageHandler)
	r.GET("/api/v1/pages", ListPagesHandler)
	r.PUT("/api/v1/pages", UpsertPageHandler)
	r.GET("/api/v1/fragments/sections/:id", GetSectionFragmentHandler)
	r.POST("/api/v1/auth/preview", PreviewAuthHandler)
	r.GET("/api/v1/health", HealthHandler)
	return r, d
}

func seedPage(t *testing.T, d *Deps, page *models.Page) {
	t.Helper()
	require.NoError(t, d.Pages.Upsert(context.Background(), page))
}

func samplePage(draft bool) *models.Page {
	return &models.Page{
		ID:      "p1",
		Slug:    "home",
		Title:   "Home",
		Visible: true,
		IsDraft: draft,
		Sections: []*models.Section{
			{
				ID:   "s1",
				Grid: models.GridSpec{Cols: 64, Aspect: models.Aspect{Num: 16, Den: 9}},
				Nodes: []*models.Node{
					{
						ID:   "n1",
						Type: models.NodeText,
						Text: &models.TextProps{HTML: "<p>Welcome</p>"},
						Layout: &models.Layout{
							Units: &models.Units{Xu: 2, Yu: 1, Wu: fptr(10), Hu: fptr(2)},
						},
					},
				},
			},
		},
	}
}

func TestGetPageHTML(t *testing.T) {
	r, d := testRouter(t)
	seedPage(t, d, samplePage(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/pages/home/html?width=1280", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="page-p1"`)
	assert.Contains(t, body, `data-layout-state="measuring"`)
	assert.Contains(t, body, "Welcome")
}

func TestGetPageHTMLNotFound(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/pages/missing/html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftPageRequiresPreviewToken(t *testing.T) {
	r, d := testRouter(t)
	seedPage(t, d, samplePage(true))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/pages/home/html?width=1280", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	token, err := utils.GeneratePreviewToken(d.JWTSecret, d.AESKey)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/pages/home/html?width=1280", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// A token whose session was sealed under a different key is rejected
	// even though its signature verifies.
	foreign, err := utils.GeneratePreviewToken(d.JWTSecret, "fedcba9876543210")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/pages/home/html?width=1280", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRenderPageAppliesSnapshot(t *testing.T) {
	r, d := testRouter(t)
	seedPage(t, d, samplePage(false))

	body := []byte(`{"width": 1280, "snapshot": {"containerOffsets": {"s1": {"x": 0, "y": 0}}}}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/pages/home/html", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-layout-state="measured"`)
}

func TestSectionFragment(t *testing.T) {
	r, d := testRouter(t)
	seedPage(t, d, samplePage(false))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/fragments/sections/s1?page=home&width=1280", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="section-s1"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/fragments/sections/nope?page=home", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertPageInvalidatesCache(t *testing.T) {
	r, d := testRouter(t)
	seedPage(t, d, samplePage(false))

	// Warm the fragment cache.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/pages/home/html?width=1280", nil))
	require.Equal(t, http.StatusOK, w.Code)
	_, ok := d.Cache.GetFragment("p1", cache.FragmentKey{Width: 1280, Locale: "en"})
	require.True(t, ok)

	token, err := utils.GeneratePreviewToken(d.JWTSecret, d.AESKey)
	require.NoError(t, err)

	updated := samplePage(false)
	updated.Title = "Updated"
	payload, err := json.Marshal(updated)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/v1/pages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, ok = d.Cache.GetFragment("p1", cache.FragmentKey{Width: 1280, Locale: "en"})
	assert.False(t, ok)
}

func TestPreviewAuth(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/preview", bytes.NewReader([]byte(`{"secret": "wrong"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/v1/auth/preview", bytes.NewReader([]byte(`{"secret": "builder-secret"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestHealth(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/hooks"
	"github.com/osse101/SaleBadge_Go/internal/i18n"
	"github.com/osse101/SaleBadge_Go/internal/nonce"
	"github.com/osse101/SaleBadge_Go/internal/salebadge"
	"github.com/osse101/SaleBadge_Go/internal/settings"
)

const (
	testAPIKey    = "test-api-key"
	testAdminUser = "shop-admin"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	translator, err := i18n.New(i18n.DefaultLanguage)
	require.NoError(t, err)
	nonces, err := nonce.NewManager("server-test-secret", time.Hour)
	require.NoError(t, err)

	repo := settings.NewRepository(settings.NewCachedStore(settings.NewMemoryStore(), settings.CacheConfig{Size: 16, TTL: time.Minute}))
	_, err = repo.Activate(ctx, domain.DefaultBadgeConfig())
	require.NoError(t, err)

	svc := salebadge.NewService(repo, badge.NewRenderer(translator.DefaultLabel()))
	registry := hooks.NewMemoryRegistry()
	salebadge.Register(ctx, registry, svc)

	srv := NewServer(
		Options{Port: 0, APIKey: testAPIKey, AdminUser: testAdminUser},
		Dependencies{Service: svc, Registry: registry, Nonces: nonces, Translator: translator},
	)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	h := newTestServer(t)

	t.Run("healthz", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
	})

	t.Run("readyz without database", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(t, h, httptest.NewRequest(http.MethodGet, "/readyz", nil)).Code)
	})

	t.Run("stylesheet", func(t *testing.T) {
		rec := do(t, h, httptest.NewRequest(http.MethodGet, "/assets/sale-badge.css", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ".wsc-badge.style-10 {")
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	})

	t.Run("sale flash uses stored settings", func(t *testing.T) {
		rec := do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/products/123/sale-flash", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, badge.RenderBadge(domain.DefaultBadgeConfig()), rec.Body.String())
	})
}

func TestServer_AdminAPIRequiresKey(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/admin/settings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/settings", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec = do(t, h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"PROMOCJA"`)
}

func TestServer_APIUpdateChangesStorefront(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings",
		strings.NewReader(`{"label":"WYPRZEDAŻ","style_id":6,"font_size_px":18,"font_weight":"800","italic":true}`))
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := do(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/products/123/sale-flash", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `class="onsale wsc-badge style-6"`)
	assert.Contains(t, body, "font-size:18px !important")
	assert.Contains(t, body, "font-weight:800 !important")
	assert.Contains(t, body, "font-style:italic !important")
	assert.Contains(t, body, ">WYPRZEDAŻ</span>")
}

var nonceInput = regexp.MustCompile(`name="woosale_customizer_ajk_nonce" value="([0-9a-f]+)"`)

func TestServer_AdminPageFlow(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/admin/settings", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, BasicAuthRealm, rec.Header().Get(HeaderWWWAuthenticate))

	get := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	get.SetBasicAuth(testAdminUser, testAPIKey)
	get.Header.Set("Accept-Language", "en")
	rec = do(t, h, get)
	require.Equal(t, http.StatusOK, rec.Code)

	match := nonceInput.FindStringSubmatch(rec.Body.String())
	require.Len(t, match, 2)

	form := url.Values{
		domain.FormFieldSubmit:     {"1"},
		domain.FormFieldNonce:      {match[1]},
		domain.FormFieldLabel:      {"<script>alert(1)</script>Flash"},
		domain.FormFieldStyle:      {"3"},
		domain.FormFieldFontSize:   {"12"},
		domain.FormFieldFontWeight: {"400"},
	}
	post := httptest.NewRequest(http.MethodPost, "/admin/settings", strings.NewReader(form.Encode()))
	post.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	post.Header.Set("Accept-Language", "en")
	post.SetBasicAuth(testAdminUser, testAPIKey)
	rec = do(t, h, post)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Settings saved.")

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/products/1/sale-flash", nil))
	assert.Contains(t, rec.Body.String(), `class="onsale wsc-badge style-3"`)
	assert.Contains(t, rec.Body.String(), "font-style:normal !important")
	assert.NotContains(t, rec.Body.String(), "<script>")
}

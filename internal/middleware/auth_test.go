package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/auth"
	"github.com/deep314313/unnativ-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "unnativ-test",
	}
}

func setupRouter(cfg *config.JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authMw := AuthRequired(cfg)
	r.GET("/org-only", authMw, RequirePrincipal(domain.KindOrganization), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"principal_id": GetPrincipalID(c), "kind": GetPrincipalKind(c)})
	})
	r.GET("/any-kind", authMw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"kind": GetPrincipalKind(c)})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/org-only", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	r := setupRouter(testJWTConfig())
	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_BadFormat(t *testing.T) {
	r := setupRouter(testJWTConfig())
	req := httptest.NewRequest(http.MethodGet, "/org-only", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	r := setupRouter(testJWTConfig())
	w := doRequest(r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	expired := *cfg
	expired.Expiry = -time.Minute
	token, err := auth.GenerateToken(&expired, 3, domain.KindOrganization)
	require.NoError(t, err)

	r := setupRouter(cfg)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePrincipal_WrongKind(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.GenerateToken(cfg, 5, domain.KindAthlete)
	require.NoError(t, err)

	r := setupRouter(cfg)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePrincipal_MatchingKind(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.GenerateToken(cfg, 5, domain.KindOrganization)
	require.NoError(t, err)

	r := setupRouter(cfg)
	w := doRequest(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"principal_id":5`)
	assert.Contains(t, w.Body.String(), domain.KindOrganization)
}

func TestNoDeclaration_AnyKindPasses(t *testing.T) {
	cfg := testJWTConfig()
	r := setupRouter(cfg)

	for _, kind := range []string{domain.KindAthlete, domain.KindOrganization, domain.KindDonor} {
		token, err := auth.GenerateToken(cfg, 1, kind)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/any-kind", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "kind %s should pass an undeclared route", kind)
	}
}

package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hardware-catalog/internal/auth"
	"hardware-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, codec *auth.TokenCodec) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	policy := auth.NewPolicy([]auth.Rule{
		{Pattern: "/public", Level: auth.LevelPublic},
		{Pattern: "/private", Level: auth.LevelAuthenticated},
		{Pattern: "/admin/*", Level: auth.LevelAdmin},
		{Pattern: "*", Level: auth.LevelAuthenticated},
	})

	router := gin.New()
	router.Use(SecurityFilter(policy, codec, logger.NewTestLogger()))

	ok := func(c *gin.Context) {
		principal, _ := auth.PrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"subject": principal.Subject, "role": principal.Role})
	}
	router.GET("/public", ok)
	router.GET("/private", ok)
	router.GET("/admin/panel", ok)

	return router
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSecurityFilterPublicRoute(t *testing.T) {
	codec := auth.NewTokenCodec("middleware-test-secret", time.Hour)
	router := newTestRouter(t, codec)

	t.Run("NoToken", func(t *testing.T) {
		w := doRequest(router, "/public", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GarbageTokenIgnored", func(t *testing.T) {
		// Public routes never look at the header.
		w := doRequest(router, "/public", "completely-bogus")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSecurityFilterAuthenticatedRoute(t *testing.T) {
	codec := auth.NewTokenCodec("middleware-test-secret", time.Hour)
	router := newTestRouter(t, codec)

	t.Run("MissingToken", func(t *testing.T) {
		w := doRequest(router, "/private", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		w := doRequest(router, "/private", "not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		token, _, err := codec.Issue("alice", "ROLE_STAFF", time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Basic "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token, _, err := codec.Issue("alice", "ROLE_STAFF", time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		w := doRequest(router, "/private", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, _, err := codec.Issue("alice", "ROLE_STAFF", time.Now())
		require.NoError(t, err)

		w := doRequest(router, "/private", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subject":"alice"`)
		assert.Contains(t, w.Body.String(), `"role":"ROLE_STAFF"`)
	})
}

func TestSecurityFilterAdminRoute(t *testing.T) {
	codec := auth.NewTokenCodec("middleware-test-secret", time.Hour)
	router := newTestRouter(t, codec)

	t.Run("NonAdminForbidden", func(t *testing.T) {
		token, _, err := codec.Issue("alice", "ROLE_STAFF", time.Now())
		require.NoError(t, err)

		w := doRequest(router, "/admin/panel", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		token, _, err := codec.Issue("root", auth.RoleAdmin, time.Now())
		require.NoError(t, err)

		w := doRequest(router, "/admin/panel", token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MissingTokenIsUnauthorizedNotForbidden", func(t *testing.T) {
		// Identity is established before role is examined.
		w := doRequest(router, "/admin/panel", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUniform401Body(t *testing.T) {
	codec := auth.NewTokenCodec("middleware-test-secret", time.Hour)
	router := newTestRouter(t, codec)

	expired, _, err := codec.Issue("alice", "ROLE_STAFF", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	foreign := auth.NewTokenCodec("another-secret", time.Hour)
	badSig, _, err := foreign.Issue("alice", "ROLE_STAFF", time.Now())
	require.NoError(t, err)

	// All rejection reasons produce the same error payload so clients
	// cannot probe which check failed.
	var want map[string]interface{}
	missing := doRequest(router, "/private", "")
	require.NoError(t, json.Unmarshal(missing.Body.Bytes(), &want))

	for name, token := range map[string]string{
		"malformed":     "garbage",
		"expired":       expired,
		"bad-signature": badSig,
	} {
		w := doRequest(router, "/private", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, want["error"], got["error"], name)
		assert.Equal(t, want["success"], got["success"], name)
	}
}

package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyFirstMatchWins(t *testing.T) {
	policy := NewPolicy([]Rule{
		{Pattern: "/api/auth/login", Method: http.MethodPost, Level: LevelPublic},
		{Pattern: "/api/auth/users/*", Level: LevelAdmin},
		{Pattern: "/api/auth/*", Level: LevelAuthenticated},
		{Pattern: "*", Level: LevelAuthenticated},
	})

	assert.Equal(t, LevelPublic, policy.RequiredLevel(http.MethodPost, "/api/auth/login"))
	// Same path, different method: the login rule is POST-scoped.
	assert.Equal(t, LevelAuthenticated, policy.RequiredLevel(http.MethodGet, "/api/auth/login"))
	// The narrower users rule is declared before the broad auth rule.
	assert.Equal(t, LevelAdmin, policy.RequiredLevel(http.MethodGet, "/api/auth/users/3/reset-password"))
	assert.Equal(t, LevelAuthenticated, policy.RequiredLevel(http.MethodGet, "/api/auth/me"))
}

func TestPolicyNoMatchFailsClosed(t *testing.T) {
	policy := NewPolicy([]Rule{
		{Pattern: "/health", Level: LevelPublic},
	})

	assert.Equal(t, LevelAuthenticated, policy.RequiredLevel(http.MethodGet, "/anything/else"))
}

func TestPolicyIsDeterministic(t *testing.T) {
	policy := DefaultPolicy()

	first := policy.RequiredLevel(http.MethodGet, "/api/v1/products/7")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, policy.RequiredLevel(http.MethodGet, "/api/v1/products/7"))
	}
}

func TestDefaultPolicyTable(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		method string
		path   string
		want   Level
	}{
		{http.MethodPost, "/api/v1/auth/login", LevelPublic},
		{http.MethodPost, "/api/v1/auth/register", LevelPublic},
		{http.MethodGet, "/api/v1/auth/me", LevelAuthenticated},
		{http.MethodPost, "/api/v1/auth/change-password", LevelAuthenticated},
		{http.MethodGet, "/api/v1/auth/users", LevelAdmin},
		{http.MethodPost, "/api/v1/auth/users/5/deactivate", LevelAdmin},

		{http.MethodGet, "/api/v1/admin/dashboard", LevelAdmin},
		{http.MethodPost, "/api/v1/admin/products", LevelAdmin},
		{http.MethodDelete, "/api/v1/admin/banners/3", LevelAdmin},
		{http.MethodPost, "/api/v1/config/admin", LevelAdmin},
		{http.MethodDelete, "/api/v1/templates/admin/welcome/en", LevelAdmin},
		{http.MethodPut, "/api/v1/languages/admin/2", LevelAdmin},

		{http.MethodGet, "/api/v1/categories", LevelPublic},
		{http.MethodGet, "/api/v1/products/42", LevelPublic},
		{http.MethodGet, "/api/v1/banners", LevelPublic},
		{http.MethodGet, "/api/v1/config/store_phone", LevelPublic},
		{http.MethodGet, "/api/v1/templates/welcome/en", LevelPublic},
		{http.MethodGet, "/api/v1/languages", LevelPublic},

		{http.MethodPost, "/api/v1/quotes", LevelPublic},
		{http.MethodGet, "/api/v1/quotes", LevelAuthenticated},
		{http.MethodGet, "/api/v1/quotes/9", LevelAuthenticated},
		{http.MethodPut, "/api/v1/quotes/9/status", LevelAuthenticated},
		{http.MethodPost, "/api/v1/templates/render", LevelAuthenticated},

		{http.MethodGet, "/health", LevelPublic},
		{http.MethodGet, "/ping", LevelPublic},

		// Unlisted routes fall through to the catch-all.
		{http.MethodGet, "/api/v2/surprise", LevelAuthenticated},
		{http.MethodDelete, "/metrics", LevelAuthenticated},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, policy.RequiredLevel(tc.method, tc.path),
			"%s %s", tc.method, tc.path)
	}
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*", "/anything", true},
		{"/exact", "/exact", true},
		{"/exact", "/exact/more", false},
		{"/prefix/*", "/prefix", true},
		{"/prefix/*", "/prefix/sub", true},
		{"/prefix/*", "/prefix/sub/deeper", true},
		{"/prefix/*", "/prefixes", false},
		{"/prefix/*", "/other", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, matchPattern(tc.pattern, tc.path),
			"pattern %q path %q", tc.pattern, tc.path)
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "PUBLIC", LevelPublic.String())
	assert.Equal(t, "AUTHENTICATED", LevelAuthenticated.String())
	assert.Equal(t, "ADMIN", LevelAdmin.String())
}

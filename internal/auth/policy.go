package auth

import (
	"net/http"
	"strings"
)

// Level is the access requirement a route carries.
type Level int

const (
	// LevelPublic routes are served without looking at credentials.
	LevelPublic Level = iota
	// LevelAuthenticated routes require any valid token.
	LevelAuthenticated
	// LevelAdmin routes require a valid token carrying the admin role.
	LevelAdmin
)

func (l Level) String() string {
	switch l {
	case LevelPublic:
		return "PUBLIC"
	case LevelAuthenticated:
		return "AUTHENTICATED"
	case LevelAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

// Rule binds a path pattern, and optionally an HTTP method, to an
// access level. An empty Method matches every method. Patterns are
// exact paths, prefix patterns ending in "/*", or the catch-all "*".
type Rule struct {
	Pattern string
	Method  string
	Level   Level
}

// Policy is an ordered rule table evaluated first-match-wins, so more
// specific rules must be declared before broader ones. Evaluation
// depends only on method and path, never on request state, which keeps
// decisions deterministic and cheap.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from rules in declaration order.
func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy returns the route protection table for the service.
// The final catch-all keeps unlisted routes authenticated rather than
// open, so forgetting to list a new route fails closed.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Pattern: "/api/v1/auth/login", Method: http.MethodPost, Level: LevelPublic},
		{Pattern: "/api/v1/auth/register", Method: http.MethodPost, Level: LevelPublic},
		{Pattern: "/api/v1/auth/users/*", Level: LevelAdmin},
		{Pattern: "/api/v1/auth/*", Level: LevelAuthenticated},

		{Pattern: "/api/v1/admin/*", Level: LevelAdmin},
		{Pattern: "/api/v1/config/admin/*", Level: LevelAdmin},
		{Pattern: "/api/v1/templates/admin/*", Level: LevelAdmin},
		{Pattern: "/api/v1/languages/admin/*", Level: LevelAdmin},

		{Pattern: "/api/v1/categories/*", Method: http.MethodGet, Level: LevelPublic},
		{Pattern: "/api/v1/products/*", Method: http.MethodGet, Level: LevelPublic},
		{Pattern: "/api/v1/banners/*", Method: http.MethodGet, Level: LevelPublic},
		{Pattern: "/api/v1/config/*", Method: http.MethodGet, Level: LevelPublic},
		{Pattern: "/api/v1/templates/*", Method: http.MethodGet, Level: LevelPublic},
		{Pattern: "/api/v1/languages/*", Method: http.MethodGet, Level: LevelPublic},

		{Pattern: "/api/v1/quotes", Method: http.MethodPost, Level: LevelPublic},
		{Pattern: "/api/v1/quotes/*", Level: LevelAuthenticated},

		{Pattern: "/health", Level: LevelPublic},
		{Pattern: "/ping", Level: LevelPublic},

		{Pattern: "*", Level: LevelAuthenticated},
	})
}

// Rules returns the table in evaluation order.
func (p *Policy) Rules() []Rule {
	return p.rules
}

// RequiredLevel resolves the access level for a request. When no rule
// matches it falls back to LevelAuthenticated.
func (p *Policy) RequiredLevel(method, path string) Level {
	for _, rule := range p.rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if matchPattern(rule.Pattern, path) {
			return rule.Level
		}
	}
	return LevelAuthenticated
}

// matchPattern matches a path against a rule pattern. A trailing "/*"
// also matches the bare prefix itself, so "/api/v1/quotes/*" covers
// both "/api/v1/quotes" and everything below it.
func matchPattern(pattern, path string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return pattern == path
}

package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// RoleAdmin is the canonical form of the administrative role.
const RoleAdmin = "ROLE_ADMIN"

// Principal is the validated identity attached to one in-flight
// request. It is built from token claims by the security filter, lives
// for the duration of that request, and is never persisted.
type Principal struct {
	Subject string
	Role    string
}

// NewPrincipal builds a principal with its role in canonical form.
func NewPrincipal(subject, role string) Principal {
	return Principal{Subject: subject, Role: NormalizeRole(role)}
}

// NormalizeRole maps free-text role values to their canonical
// "ROLE_"-prefixed form used by policy checks.
func NormalizeRole(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role == "" {
		return ""
	}
	if strings.HasPrefix(role, "ROLE_") {
		return role
	}
	return "ROLE_" + role
}

// HasRole reports whether the principal holds the given canonical role.
func (p Principal) HasRole(role string) bool {
	return p.Role == NormalizeRole(role)
}

// IsAdmin reports whether the principal holds the administrative role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

const principalKey = "auth.principal"

// SetPrincipal binds the principal to the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// PrincipalFromContext extracts the principal bound to the request, if
// any. Handlers behind authenticated routes can rely on ok being true.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

package middlewares

import (
	"net/http"
	"strings"
	"time"

	"hardware-catalog/internal/api/models"
	"hardware-catalog/internal/auth"
	"hardware-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SecurityFilter enforces the route access policy on every request. It
// resolves the required level from method and path, then:
//
//   - PUBLIC: passes through without reading the Authorization header,
//     so an expired token in hand never breaks a public page.
//   - AUTHENTICATED: requires a valid bearer token.
//   - ADMIN: additionally requires the admin role.
//
// Missing, malformed, badly signed and expired tokens all produce the
// same 401 body; only a valid token with the wrong role yields 403.
func SecurityFilter(policy *auth.Policy, codec *auth.TokenCodec, log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("security")

	return func(c *gin.Context) {
		level := policy.RequiredLevel(c.Request.Method, c.Request.URL.Path)
		if level == auth.LevelPublic {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			unauthorized(c)
			return
		}

		claims, err := codec.Parse(token)
		if err != nil {
			log.Debug("rejected token for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			unauthorized(c)
			return
		}

		principal := auth.NewPrincipal(claims.Subject, claims.Role)

		if level == auth.LevelAdmin && !principal.IsAdmin() {
			log.Warning("user %s denied admin route %s %s", principal.Subject, c.Request.Method, c.Request.URL.Path)
			c.JSON(http.StatusForbidden, models.BaseResponse{
				Success: false,
				Error: &models.ErrorInfo{
					Code:    models.ErrCodeForbidden,
					Message: "Admin access required",
				},
				Timestamp: time.Now().Unix(),
			})
			c.Abort()
			return
		}

		auth.SetPrincipal(c, principal)
		c.Next()
	}
}

// unauthorized writes the uniform 401 response. The body never says
// which check failed.
func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.BaseResponse{
		Success: false,
		Error: &models.ErrorInfo{
			Code:    models.ErrCodeUnauthorized,
			Message: "Authentication required",
		},
		Timestamp: time.Now().Unix(),
	})
	c.Abort()
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

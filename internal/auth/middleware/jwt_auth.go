package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/auth"
	"github.com/nexus-blend/showcase-api/internal/auth/domain"
	"github.com/nexus-blend/showcase-api/internal/logging"
)

// Authenticator validates a raw bearer token.
type Authenticator interface {
	Authenticate(token string) (domain.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified identity in the gin context.
func RequireAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := a.Authenticate(extractToken(c))
		if err != nil {
			msg := domain.ErrInvalidToken.Error()
			if errors.Is(err, domain.ErrMissingToken) {
				msg = domain.ErrMissingToken.Error()
			} else {
				logging.FromContext(c.Request.Context()).Warnf("authenticate", "path=%s error=%v", c.Request.URL.Path, err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		c.Set(auth.CtxUserID, id.UserID)
		c.Set(auth.CtxUsername, id.Username)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

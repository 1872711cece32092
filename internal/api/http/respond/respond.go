// Package respond maps domain errors onto JSON error bodies of the form
// {"message": "..."}.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/nexus-blend/showcase-api/internal/auth/domain"
	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/nexus-blend/showcase-api/internal/logging"
)

const internalMessage = "internal server error"

// Message writes a bare message body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error classifies err and writes the matching status. Unclassified errors
// are logged under operation and answered with a generic 500.
func Error(c *gin.Context, operation string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": ve.Fields})
	case errors.Is(err, domain.ErrNotFound):
		Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrMissingToken),
		errors.Is(err, authdomain.ErrInvalidToken):
		Message(c, http.StatusUnauthorized, err.Error())
	default:
		logging.FromContext(c.Request.Context()).Error(operation, err)
		Message(c, http.StatusInternalServerError, internalMessage)
	}
}

// BadBody answers a request whose JSON could not be decoded.
func BadBody(c *gin.Context) {
	Message(c, http.StatusBadRequest, "invalid request body")
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/auth"
	"github.com/nexus-blend/showcase-api/internal/auth/domain"
	"github.com/nexus-blend/showcase-api/internal/auth/repository"
	"github.com/nexus-blend/showcase-api/internal/auth/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewAuthService(repository.NewUserRepository(), service.NewTokenIssuer([]byte("k"), time.Hour)).
		WithHashCost(bcrypt.MinCost)
	_, err := svc.SeedAdmin("admin", "pw")
	require.NoError(t, err)
	res, err := svc.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/private", RequireAuth(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": auth.UserID(c), "username": auth.Username(c)})
	})
	return r, res.Token
}

func doGet(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireAuth(t *testing.T) {
	r, token := setupRouter(t)

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + token, http.StatusOK, ""},
		{"no header", "", http.StatusUnauthorized, domain.ErrMissingToken.Error()},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, domain.ErrMissingToken.Error()},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, domain.ErrMissingToken.Error()},
		{"tampered token", "Bearer " + token + "x", http.StatusUnauthorized, domain.ErrInvalidToken.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doGet(r, tt.header)
			assert.Equal(t, tt.status, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			if tt.status == http.StatusOK {
				assert.Equal(t, "admin", body["username"])
				assert.NotEmpty(t, body["id"])
			} else {
				assert.Equal(t, tt.message, body["message"])
			}
		})
	}
}

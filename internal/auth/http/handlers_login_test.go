package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexus-blend/showcase-api/internal/auth/repository"
	"github.com/nexus-blend/showcase-api/internal/auth/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewAuthService(repository.NewUserRepository(), service.NewTokenIssuer([]byte("k"), time.Hour)).
		WithHashCost(bcrypt.MinCost)
	_, err := svc.SeedAdmin("admin", "password123")
	require.NoError(t, err)

	r := gin.New()
	New(svc).Register(r.Group("/api/auth"))
	return r
}

func postLogin(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLogin_Success(t *testing.T) {
	r := setupAuthRouter(t)

	rr := postLogin(r, `{"username":"admin","password":"password123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "admin", body.User.Username)
	assert.NotContains(t, rr.Body.String(), "password")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), body.User.ID)
}

func TestLogin_Failures(t *testing.T) {
	r := setupAuthRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"root","password":"password123"}`, http.StatusUnauthorized},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest},
		{"blank username", `{"username":"  ","password":"x"}`, http.StatusBadRequest},
		{"malformed json", `{"username":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postLogin(r, tt.body)
			assert.Equal(t, tt.status, rr.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestMe_RequiresToken(t *testing.T) {
	r := setupAuthRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

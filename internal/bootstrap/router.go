package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/nexus-blend/showcase-api/internal/api/http"
	apimw "github.com/nexus-blend/showcase-api/internal/api/http/middleware"
	authhttp "github.com/nexus-blend/showcase-api/internal/auth/http"
	authmw "github.com/nexus-blend/showcase-api/internal/auth/middleware"
	authservice "github.com/nexus-blend/showcase-api/internal/auth/service"
	"github.com/nexus-blend/showcase-api/internal/content/events"
	contenthttp "github.com/nexus-blend/showcase-api/internal/content/http"
	"github.com/nexus-blend/showcase-api/internal/content/repository"
	contentservice "github.com/nexus-blend/showcase-api/internal/content/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Store       *repository.Store
	Auth        *authservice.AuthService
	Events      events.Publisher
	// Limiter guards the public write routes. When nil one is built from
	// RateLimitRPS and RateLimitBurst.
	Limiter        *apimw.IPRateLimiter
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Events == nil {
		dep.Events = events.NopPublisher{}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		r.Use(gin.Logger())
	}
	r.Use(apimw.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Events)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	limiter := dep.Limiter
	if limiter == nil {
		limiter = apimw.NewIPRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst)
	}
	publicWrite := limiter.Middleware()

	authHandler := authhttp.New(dep.Auth)
	authHandler.Register(api.Group("/auth"), publicWrite)

	content := contentservice.NewContentService(dep.Store, dep.Events)
	contentHandler := contenthttp.New(content, authmw.RequireAuth(dep.Auth))
	contentHandler.Register(api, publicWrite)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", apimw.HeaderRequestID},
		ExposeHeaders: []string{apimw.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

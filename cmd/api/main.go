package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexus-blend/showcase-api/config"
	apimw "github.com/nexus-blend/showcase-api/internal/api/http/middleware"
	"github.com/nexus-blend/showcase-api/internal/auth/repository"
	authservice "github.com/nexus-blend/showcase-api/internal/auth/service"
	"github.com/nexus-blend/showcase-api/internal/bootstrap"
	"github.com/nexus-blend/showcase-api/internal/content/events"
	contentrepo "github.com/nexus-blend/showcase-api/internal/content/repository"
	"github.com/nexus-blend/showcase-api/internal/content/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Redis.Enabled() {
		client, err := bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Printf("[warn] content events disabled: %v", err)
		} else {
			defer client.Close()
			publisher = events.NewRedisPublisher(client)
			log.Printf("[info] content events publishing to %s", cfg.Redis.Addr)
		}
	}

	store := contentrepo.NewStore()
	if err := seed.Load(store); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	tokens := authservice.NewTokenIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	auth := authservice.NewAuthService(repository.NewUserRepository(), tokens)
	if _, err := auth.SeedAdmin(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	limiter := apimw.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	scheduler, err := bootstrap.NewScheduler(bootstrap.MaintenanceJobs(limiter, store)...)
	if err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}
	scheduler.Start()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
		Store:       store,
		Auth:        auth,
		Events:      publisher,
		Limiter:     limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[info] %s %s listening on :%s", cfg.App.ServiceName, cfg.App.Version, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[info] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[error] server shutdown: %v", err)
	}
	<-scheduler.Stop().Done()
	log.Println("[info] server stopped")
}

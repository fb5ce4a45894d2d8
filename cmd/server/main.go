package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cyberhub/community-platform/backend/internal/auth"
	"github.com/cyberhub/community-platform/backend/internal/config"
	"github.com/cyberhub/community-platform/backend/internal/metrics"
	"github.com/cyberhub/community-platform/backend/internal/server"
	"github.com/cyberhub/community-platform/backend/internal/store"
	"github.com/cyberhub/community-platform/backend/internal/validation"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── Content store ────────────────────────────────────────
	st := store.New()
	if cfg.SeedData {
		store.Seed(st)
	}

	// ── Credentials ──────────────────────────────────────────
	creds := auth.NewCredentials(st, auth.Hasher{Cost: cfg.BcryptCost})
	if _, err := creds.SeedAdmin(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("%v", err)
	}

	// ── Sessions ─────────────────────────────────────────────
	var sessions auth.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		sessions = auth.NewRedisSessions(rdb, cfg.SessionTTL)
	case "memory":
		sessions = auth.NewMemorySessions(cfg.SessionTTL)
	default:
		log.Fatalf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}
	log.Printf("sessions: %s backend, ttl %s", cfg.SessionBackend, cfg.SessionTTL)

	metrics.Register()

	// ── Router ───────────────────────────────────────────────
	handler := server.New(server.Deps{
		Store:       st,
		Sessions:    sessions,
		Credentials: creds,
		Validator:   validation.New(),
		Auth: auth.HandlerConfig{
			SessionTTL:   cfg.SessionTTL,
			SecureCookie: cfg.CookieSecure,
		},
		AllowedOrigins: cfg.AllowedOrigins,
		AccessLog:      true,
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		log.Printf("CyberHub API listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

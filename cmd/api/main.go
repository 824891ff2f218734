package main

import (
	"context"
	"net/http"
	"time"

	"baby-tracker/internal/adapters/auth/identity"
	"baby-tracker/internal/adapters/auth/jwtauth"
	"baby-tracker/internal/adapters/storage/postgres"
	"baby-tracker/internal/config"
	"baby-tracker/internal/platform/logger"
	"baby-tracker/internal/ports/auth"
	"baby-tracker/internal/router"

	"go.uber.org/zap"
)

// @title Baby Tracker API
// @version 1.0
// @description API de seguimiento de bebés: perfiles y registros de tomas, sueño, pañales, crecimiento y recuerdos.
// @BasePath /
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	opts := router.Options{Logger: log}

	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal("postgres open", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := postgres.RunMigrations(ctx, db); err != nil {
			cancel()
			log.Fatal("migrations", zap.Error(err))
		}
		cancel()

		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory storage")
	}

	opts.Verifier = buildVerifier(cfg, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}

func buildVerifier(cfg *config.Config, log *zap.Logger) auth.Verifier {
	switch cfg.AuthMode {
	case "jwt":
		v, err := jwtauth.NewVerifier(cfg.JWTSecret)
		if err != nil {
			log.Fatal("jwt verifier", zap.Error(err))
		}
		return v
	case "identity":
		v, err := identity.NewVerifier(identity.Config{
			BaseURL: cfg.IdentityBaseURL,
			APIKey:  cfg.IdentityAPIKey,
			Timeout: cfg.IdentityTimeout,
		})
		if err != nil {
			log.Fatal("identity verifier", zap.Error(err))
		}
		return v
	default:
		log.Warn("AUTH_MODE not set, running in dev mode (X-Debug-User-ID)")
		return nil
	}
}

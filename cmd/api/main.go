package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"my-pets-api/internal/adapters/auth/jwtauth"
	"my-pets-api/internal/adapters/mail/resendmail"
	"my-pets-api/internal/adapters/media/s3store"
	pg "my-pets-api/internal/adapters/storage/postgres"
	"my-pets-api/internal/config"
	"my-pets-api/internal/platform/logger"
	"my-pets-api/internal/router"
)

// @title My Pets API
// @version 1.0
// @description API de historia clínica de mascotas
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	opts := router.Options{
		Tokens:         jwtauth.New(cfg.JWTSecret, cfg.JWTExpiry),
		Logger:         log,
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
		FrontendURL:    cfg.FrontendURL,
		ResetTokenTTL:  cfg.ResetTokenTTL,
	}

	if cfg.DatabaseURL != "" {
		db, err := pg.Open(cfg.DatabaseURL)
		if err != nil {
			log.Error("opening database", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := pg.Migrate(ctx, db); err != nil {
			cancel()
			log.Error("running migrations", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		cancel()

		opts.DB = db
		log.Info("using postgres storage", nil)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage", nil)
	}

	if cfg.S3Bucket != "" {
		store, err := s3store.New(context.Background(), s3store.Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Error("configuring object store", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Media = store
		log.Info("using s3 object store", map[string]any{"bucket": cfg.S3Bucket})
	} else {
		log.Warn("S3_BUCKET not set, using in-memory object store", nil)
	}

	if cfg.ResendAPIKey != "" {
		sender, err := resendmail.New(cfg.ResendAPIKey, cfg.MailFrom)
		if err != nil {
			log.Error("configuring mail sender", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		opts.Mailer = sender
	}

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
		// cubre uploads de 5MB en enlaces lentos
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "app": cfg.AppName})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

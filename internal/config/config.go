package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del servicio.
// Todo viene por env; los defaults sirven para dev local.
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"my-pets-api"`

	// DSN de Postgres. Vacío => repos in-memory (dev/tests).
	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"168h"`

	// Orígenes permitidos para el frontend (CORS con credentials).
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173,http://localhost:5174"`

	// Límite del body en uploads multipart.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	// Object store (S3 o compatible). Bucket vacío => store in-memory.
	S3Bucket string `env:"S3_BUCKET"`
	S3Region string `env:"S3_REGION" envDefault:"us-east-1"`
	// Endpoint custom para providers S3-compatible (MinIO, R2). Vacío => AWS.
	S3Endpoint string `env:"S3_ENDPOINT"`
	// Base pública con la que se arman los locators guardados en DB.
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`

	// Mail transaccional (reset de contraseña). API key vacía => sender in-memory.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"My Pets <no-reply@mypets.local>"`
	// URL del SPA para armar el link de reset.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

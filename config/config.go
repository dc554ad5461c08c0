package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	OAuth      OAuthConfig
	Cloudinary CloudinaryConfig
	Mail       MailConfig
	RateLimit  RateLimitConfig
	AdminSeed  AdminSeedConfig
}

type ServerConfig struct {
	Port         string        `env:"PORT" env-default:"8080"`
	Env          string        `env:"APP_ENV" env-default:"development"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" env-default:"10s"`
}

type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN" env-required:"true"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"100"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`
}

type JWTConfig struct {
	AccessSecret  string        `env:"JWT_ACCESS_SECRET" env-required:"true"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET" env-required:"true"`
	AccessExpiry  time.Duration `env:"JWT_ACCESS_EXPIRY" env-default:"15m"`
	RefreshExpiry time.Duration `env:"JWT_REFRESH_EXPIRY" env-default:"168h"`
	Issuer        string        `env:"JWT_ISSUER" env-default:"thepersonalbuddy"`
}

type OAuthConfig struct {
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`
}

type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

type MailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromAddress  string `env:"MAIL_FROM" env-default:"The Personal Buddy <onboarding@resend.dev>"`
	AdminEmail   string `env:"ADMIN_NOTIFY_EMAIL" env-required:"true"`
}

type RateLimitConfig struct {
	// Submission quota guards booking/contact POSTs per client IP.
	SubmissionQuota  int           `env:"SUBMIT_RATE_LIMIT" env-default:"3"`
	SubmissionWindow time.Duration `env:"SUBMIT_RATE_WINDOW" env-default:"1h"`
	GlobalLimit      int           `env:"GLOBAL_RATE_LIMIT" env-default:"100"`
	GlobalWindow     time.Duration `env:"GLOBAL_RATE_WINDOW" env-default:"1m"`
}

// AdminSeedConfig provisions the initial admin account on startup. Leaving
// the email empty skips seeding.
type AdminSeedConfig struct {
	Email    string `env:"SEED_ADMIN_EMAIL"`
	Password string `env:"SEED_ADMIN_PASSWORD"`
	Name     string `env:"SEED_ADMIN_NAME" env-default:"Site Admin"`
}

// Load reads configuration from the environment, after loading an optional
// .env file. Missing required values are a startup failure, never a
// degraded server.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

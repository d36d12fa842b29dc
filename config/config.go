package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	OAuth      OAuthConfig
	Cloudinary CloudinaryConfig
	Razorpay   RazorpayConfig
}

type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8088"`
	Env          string        `env:"SERVER_ENV" envDefault:"development"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN" envDefault:"unnativ:unnativ@tcp(localhost:3306)/unnativ?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"1h"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	Expiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"unnativ"`
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

// RazorpayConfig holds payment gateway credentials. KeySecret signs the
// completion callback; KeyID is safe to hand to clients for checkout.
type RazorpayConfig struct {
	BaseURL   string        `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
	KeyID     string        `env:"RAZORPAY_KEY_ID"`
	KeySecret string        `env:"RAZORPAY_KEY_SECRET"`
	Currency  string        `env:"RAZORPAY_CURRENCY" envDefault:"INR"`
	Timeout   time.Duration `env:"RAZORPAY_TIMEOUT" envDefault:"15s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

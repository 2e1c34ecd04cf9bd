package config

import (
	"fmt"
	"os"
)

// Config carries all process-wide settings. It is loaded once in main and
// handed to the components that need it, so nothing reads the environment
// after startup.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string

	// Hosted-checkout provider.
	PaymentAPIKey        string
	PaymentWebhookSecret string
	PaymentBaseURL       string
	Currency             string

	AllowedOrigins []string

	// Product image uploads.
	S3Bucket string

	// Order confirmation emails. Optional; emails are skipped when FromEmail
	// is empty.
	SMTPAddress       string
	SMTPHost          string
	FromEmail         string
	FromEmailPassword string
}

const defaultCurrency = "eur"

// Load builds a Config from the environment. Only the settings without a
// usable default are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseDSN:          os.Getenv("DATABASE_DSN"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		PaymentAPIKey:        os.Getenv("PAYMENT_API_KEY"),
		PaymentWebhookSecret: os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		PaymentBaseURL:       getEnv("PAYMENT_BASE_URL", "https://api.payments.example.com"),
		Currency:             getEnv("PAYMENT_CURRENCY", defaultCurrency),
		AllowedOrigins:       []string{getEnv("FRONTEND_URL", "http://localhost:3000")},
		S3Bucket:             getEnv("S3_BUCKET", "boutique-lea"),
		SMTPAddress:          os.Getenv("SMTP_ADDRESS"),
		SMTPHost:             os.Getenv("FROM_EMAIL_SMTP"),
		FromEmail:            os.Getenv("FROM_EMAIL"),
		FromEmailPassword:    os.Getenv("FROM_EMAIL_PASSWORD"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.PaymentAPIKey == "" {
		return nil, fmt.Errorf("PAYMENT_API_KEY is not set")
	}
	if cfg.PaymentWebhookSecret == "" {
		return nil, fmt.Errorf("PAYMENT_WEBHOOK_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

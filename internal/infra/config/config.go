// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration for the whole service.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// Firebase Auth project (defaults to the GCP project).
	FirebaseProjectID string

	// GCS bucket for product / profile photo uploads.
	GCSBucket string
	GCPCreds  string

	// Outbound notification (new-order mail to the operator).
	SendGridAPIKey     string
	SendGridFromEmail  string
	OperatorEmail      string
	SendGridSecretName string // Secret Manager resource name, used when SENDGRID_API_KEY is unset

	// Optional Postgres read model for the back-office order listing.
	// Disabled when PGHOST is empty.
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// CORS origin of the storefront.
	AllowedOrigin string
}

// Load reads environment variables and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "zapateria-artesanal")

	cfg := &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		GCSBucket: os.Getenv("GCS_BUCKET"),
		GCPCreds:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:  getenvDefault("SENDGRID_FROM_EMAIL", "no-reply@zapateria.example.com"),
		OperatorEmail:      os.Getenv("OPERATOR_EMAIL"),
		SendGridSecretName: os.Getenv("SENDGRID_SECRET_NAME"),

		PGHost:     os.Getenv("PGHOST"),
		PGPort:     getenvDefault("PGPORT", "5432"),
		PGUser:     os.Getenv("PGUSER"),
		PGPassword: os.Getenv("PGPASSWORD"),
		PGDatabase: getenvDefault("PGDATABASE", "zapateria"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}

	return cfg
}

// OrdersReadModelEnabled reports whether the Postgres order read model should be wired.
func (c *Config) OrdersReadModelEnabled() bool {
	return c.PGHost != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Client captures everything the portal client needs at startup.
type Client struct {
	// PortalBaseURL is the root of the portal API, without the /api prefix.
	PortalBaseURL string
	// RequestTimeout bounds every portal call except the eligibility check.
	RequestTimeout time.Duration
	// EligibilityTimeout bounds the eligibility check, which waits on a
	// server-side reasoning step and is much slower than the other calls.
	EligibilityTimeout time.Duration
	// CredentialFile is where the bearer token is persisted between runs.
	CredentialFile string
}

// Stub captures configuration for the local stub portal server.
type Stub struct {
	Addr          string
	JWTSigningKey string
	TokenTTL      time.Duration
}

// FromEnv builds configuration from environment variables so main stays lean.
// A .env file is honored when present.
func FromEnv() (Client, Stub) {
	if err := godotenv.Load(); err != nil {
		// No .env file is the normal case outside development.
		_ = err
	}

	client := Client{
		PortalBaseURL:      getEnv("JANSEVA_PORTAL_URL", "http://localhost:8080"),
		RequestTimeout:     getEnvDuration("JANSEVA_REQUEST_TIMEOUT", 10*time.Second),
		EligibilityTimeout: getEnvDuration("JANSEVA_ELIGIBILITY_TIMEOUT", 45*time.Second),
		CredentialFile:     getEnv("JANSEVA_CREDENTIAL_FILE", defaultCredentialFile()),
	}

	signingKey := getEnv("JANSEVA_JWT_SIGNING_KEY", "dev-secret-key-change-in-production")
	if signingKey == "dev-secret-key-change-in-production" {
		log.Println("Warning: using default JWT signing key; override JANSEVA_JWT_SIGNING_KEY outside development")
	}

	stub := Stub{
		Addr:          getEnv("JANSEVA_STUB_ADDR", ":8080"),
		JWTSigningKey: signingKey,
		TokenTTL:      getEnvDuration("JANSEVA_TOKEN_TTL", 24*time.Hour),
	}

	return client, stub
}

func defaultCredentialFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".janseva-token")
	}
	return filepath.Join(dir, "janseva", "token")
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration retrieves a duration (accepts Go duration syntax or plain
// seconds) or returns the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Warning: could not parse %s=%q, using default %s", key, value, defaultValue)
	return defaultValue
}

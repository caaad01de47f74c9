package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time expresses token lifetimes

	"github.com/joho/godotenv" // godotenv loads a local .env file into the environment
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in the
// application: strings for identifiers and secrets, durations for lifetimes.
type Config struct {
	Env          string        // application environment (e.g. "dev", "prod")
	Port         string        // HTTP port to listen on
	JWTSecret    string        // secret used to sign session tokens
	TokenTTL     time.Duration // session token time-to-live
	BcryptCost   int           // bcrypt cost for seed password hashing
	StoreDriver  string        // "memory" (default) or "mysql"
	DBUser       string        // database username (mysql driver only)
	DBPass       string        // database password (optional)
	DBHost       string        // database host address
	DBPort       string        // database port number
	DBName       string        // database name
	QueueEnabled bool          // publish catalog events to RabbitMQ when true
}

// Load reads configuration values from environment variables and returns a
// Config. A .env file in the working directory is loaded first when present.
// Required variables are enforced by must() and missing values cause the
// program to exit with a fatal log message.
func Load() Config {
	// Ignore the error: a missing .env file simply means the environment
	// is configured externally.
	_ = godotenv.Load()

	cfg := Config{
		Env:          getenv("APP_ENV", "dev"),                       // environment (dev/test/prod)
		Port:         getenv("APP_PORT", "8080"),                     // port to bind the HTTP server
		JWTSecret:    must("JWT_SECRET"),                             // secret for signing session tokens
		TokenTTL:     time.Duration(ttlHours()) * time.Hour,          // session lifetime
		BcryptCost:   atoiDefault("BCRYPT_COST", 10),                 // bcrypt cost factor
		StoreDriver:  getenv("STORE_DRIVER", "memory"),               // backing store selection
		QueueEnabled: getenv("QUEUE_ENABLED", "false") == "true",     // catalog event publishing
	}
	if cfg.StoreDriver == "mysql" {
		// Database settings are only required when the MySQL store is active.
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// ttlHours reads the token lifetime in hours, defaulting to 24.
func ttlHours() int {
	return atoiDefault("TOKEN_TTL_HOURS", 24)
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of key or def when unset/empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// atoiDefault parses an integer environment variable, falling back to def on
// absence or malformed input.
func atoiDefault(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

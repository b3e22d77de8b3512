package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Settings is read once at startup and passed down explicitly.
type Settings struct {
	AppName        string
	AppVersion     string
	AppDescription string

	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	AllowedOrigins []string
	AllowedHeaders []string
	AllowedMethods []string
	CORSMaxAge     int

	DBDriver    string
	DatabaseURL string
	PGHost      string
	PGPort      int
	PGUser      string
	PGPassword  string
	PGDatabase  string

	StrictStatusTransitions bool

	RateLimitRPS   float64
	RateLimitBurst int

	KafkaBrokers []string
	KafkaTopic   string

	PublicBaseURL string
}

func Load() Settings {
	return Settings{
		AppName:        envDefault("APP_NAME", "Food Delivery Backend API"),
		AppVersion:     envDefault("APP_VERSION", "0.1.0"),
		AppDescription: envDefault("APP_DESCRIPTION", "Backend API for a food delivery app: restaurants, menus, orders, delivery tracking."),

		Port:      envDefault("PORT", "8080"),
		GinMode:   os.Getenv("GIN_MODE"),
		LogLevel:  envDefault("LOG_LEVEL", "info"),
		LogFormat: envDefault("LOG_FORMAT", "text"),

		AllowedOrigins: csv(os.Getenv("ALLOWED_ORIGINS")),
		AllowedHeaders: csv(os.Getenv("ALLOWED_HEADERS")),
		AllowedMethods: csv(os.Getenv("ALLOWED_METHODS")),
		CORSMaxAge:     envInt("CORS_MAX_AGE", 3600),

		DBDriver:    strings.ToLower(envDefault("DB_DRIVER", DriverPostgres)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		PGHost:      os.Getenv("PGHOST"),
		PGPort:      envInt("PGPORT", 5432),
		PGUser:      os.Getenv("PGUSER"),
		PGPassword:  os.Getenv("PGPASSWORD"),
		PGDatabase:  os.Getenv("PGDATABASE"),

		StrictStatusTransitions: envBool("STRICT_STATUS_TRANSITIONS", false),

		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 100),

		KafkaBrokers: csv(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   envDefault("KAFKA_TOPIC", "order-events"),

		PublicBaseURL: strings.TrimRight(envDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
	}
}

// DSN returns DATABASE_URL when set. For postgres it falls back to the
// discrete PG* variables, which must all be present.
func (s Settings) DSN() (string, error) {
	if s.DatabaseURL != "" {
		return s.DatabaseURL, nil
	}
	if s.DBDriver != DriverPostgres {
		return "", fmt.Errorf("database is not configured: set DATABASE_URL for driver %q", s.DBDriver)
	}
	if s.PGHost == "" || s.PGUser == "" || s.PGPassword == "" || s.PGDatabase == "" {
		return "", fmt.Errorf("database is not configured: set DATABASE_URL (preferred) or PGHOST/PGPORT/PGUSER/PGPASSWORD/PGDATABASE")
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		s.PGHost, s.PGPort, s.PGUser, s.PGPassword, s.PGDatabase), nil
}

func csv(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return f
}

func envBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

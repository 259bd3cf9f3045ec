package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	MongoURI    string
	MongoDB     string
	SessionPath string
	SessionTTL  time.Duration

	// JWTSecret signs session tokens. Required unless DemoMode is on.
	JWTSecret string

	// DemoMode enables the demonstration accounts and the fixture responses
	// served when the database refuses a query. Off unless DEMO_MODE=true.
	DemoMode     bool
	DemoPassword string

	B2AccountID string
	B2AppKey    string
	B2Bucket    string
}

// DemoAccount is a fixed identity accepted in demo mode without an
// allow-list entry.
type DemoAccount struct {
	Email       string
	Role        string
	Institution string
	Course      string
	Class       string
}

var DemoAccounts = []DemoAccount{
	{
		Email:       "cienciaalcindob@gmail.com",
		Role:        "aluno",
		Institution: "Unama Alcindo Cacela",
		Course:      "Ciência da Computação",
		Class:       "Turma B",
	},
	{
		Email:       "adminalcindo@gmail.com",
		Role:        "instituicao",
		Institution: "Unama Alcindo Cacela",
	},
}

// FindDemoAccount returns the demo account matching the exact triple.
func FindDemoAccount(email, role, institution string) *DemoAccount {
	for i := range DemoAccounts {
		a := &DemoAccounts[i]
		if a.Email == email && a.Role == role && a.Institution == institution {
			return a
		}
	}
	return nil
}

// LoadEnv loads .env into the process environment when the file exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getEnv("MONGO_DB", "green_saas"),
		SessionPath:  getEnv("SESSION_PATH", "./data/sessions"),
		SessionTTL:   24 * time.Hour,
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DemoMode:     os.Getenv("DEMO_MODE") == "true",
		DemoPassword: getEnv("DEMO_PASSWORD", "12345678"),
		B2AccountID:  os.Getenv("B2_ACCOUNT_ID"),
		B2AppKey:     os.Getenv("B2_APP_KEY"),
		B2Bucket:     os.Getenv("B2_BUCKET"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "host=" + getEnv("DB_HOST", "localhost") +
			" port=" + getEnv("DB_PORT", "5432") +
			" user=" + getEnv("DB_USER", "postgres") +
			" password=" + os.Getenv("DB_PASSWORD") +
			" dbname=" + getEnv("DB_NAME", "green_saas") +
			" sslmode=" + getEnv("DB_SSLMODE", "disable")
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.SessionTTL = d
		} else if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			cfg.SessionTTL = time.Duration(hours) * time.Hour
		} else {
			log.Warnf("ignoring invalid SESSION_TTL %q", raw)
		}
	}

	if cfg.DemoMode {
		log.Warn("DEMO_MODE is on: demo accounts and fixture fallbacks are enabled")
	}
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set: session tokens are signed with the public development secret")
	}

	return cfg
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set when DEMO_MODE is off")

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" && !c.DemoMode {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

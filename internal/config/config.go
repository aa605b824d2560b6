package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services. It is built
// once at startup and passed by injection; nothing reads the environment
// after Load returns.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"quizmint"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:4000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Mongo    Mongo
	Security Security
	OpenAI   OpenAI
	Redis    Redis
	CORS     CORS
}

// Mongo captures connection info for the document store.
type Mongo struct {
	URI      string `env:"MONGO_URI,notEmpty"`
	Database string `env:"MONGO_DATABASE" envDefault:"quizmint"`
}

// Security stores secrets for token signing and auth.
type Security struct {
	JWTSecret string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// OpenAI configures the question generation provider.
type OpenAI struct {
	// APIKey is optional; when empty the service runs fallback-only.
	APIKey      string        `env:"OPENAI_API_KEY" envDefault:""`
	BaseURL     string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature float64       `env:"OPENAI_TEMPERATURE" envDefault:"0.9"`
	HTTPTimeout time.Duration `env:"OPENAI_HTTP_TIMEOUT" envDefault:"15s"`
}

// Redis holds optional question pack cache configuration. The cache is
// enabled only when Addr is set.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	PackTTL  time.Duration `env:"REDIS_PACK_TTL" envDefault:"2m"`
	PoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

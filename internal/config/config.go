package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const devJWTSecret = "dev-insecure-secret"

type Config struct {
	AppEnv string `env:"APP_ENV, default=development"`
	Port   string `env:"PORT, default=3000"`

	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Auth   AuthConfig
	Reset  ResetConfig
	Mail   MailConfig
	Worker WorkerConfig

	Timezone                string        `env:"LOGBOOK_TIMEZONE, default=Asia/Kolkata"`
	ReportsClientTypeFilter bool          `env:"REPORTS_CLIENT_TYPE_FILTER, default=false"`
	ReportsCacheTTL         time.Duration `env:"REPORTS_CACHE_TTL, default=5m"`
	OTLPEndpoint            string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

type DBConfig struct {
	Host        string `env:"DB_HOST, default=localhost"`
	User        string `env:"DB_USER, default=postgres"`
	Password    string `env:"DB_PASSWORD"`
	Name        string `env:"DB_NAME, default=logbook"`
	Port        string `env:"DB_PORT, default=5432"`
	SSLMode     string `env:"DB_SSLMODE, default=disable"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE, default=false"`
	MaxRetries  int    `env:"DB_MAX_RETRIES, default=5"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type KafkaConfig struct {
	Broker        string `env:"KAFKA_BROKER"`
	ConsumerGroup string `env:"KAFKA_CONSUMER_GROUP, default=logbook-report-cache"`
}

type AuthConfig struct {
	JWTSecret       string        `env:"JWT_SECRET, default=dev-insecure-secret"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL, default=15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
	LoginPerMinute  int           `env:"RATE_LIMIT_LOGIN_PER_MINUTE, default=10"`
}

type ResetConfig struct {
	TokenTTL        time.Duration `env:"RESET_TOKEN_TTL, default=15m"`
	FrontendBaseURL string        `env:"FRONTEND_BASE_URL, default=http://localhost:5173"`
	PerMinute       int           `env:"RATE_LIMIT_RESET_PER_MINUTE, default=5"`
}

type MailConfig struct {
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT, default=587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	From         string `env:"MAIL_FROM, default=no-reply@logbook.local"`
}

type WorkerConfig struct {
	PollInterval      time.Duration `env:"WORKER_POLL_INTERVAL, default=3s"`
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL, default=5m"`
	ReconcileBatch    int           `env:"RECONCILE_BATCH, default=100"`
	TokenPurgeAfter   time.Duration `env:"RESET_TOKEN_PURGE_AFTER, default=24h"`
}

// Load reads an optional .env file and decodes the environment.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom decodes configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.IsProduction() && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == devJWTSecret) {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.Reset.TokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("LOGBOOK_TIMEZONE: %w", err)
	}
	return nil
}

// Location is the calendar used for "first log of the day".
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

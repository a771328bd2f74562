package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// RedisConfig backs the live calendar/inbox feed. An empty Addr selects the in-process hub.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	// Wall-clock times in slot plans are interpreted in this zone.
	TimeZone          string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Seoul"`
	MaxSlotsPerPlan   int           `envconfig:"BOOKING_MAX_SLOTS_PER_PLAN" default:"96"`
	IdempotencyTTL    time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
	LiveHeartbeat     time.Duration `envconfig:"BOOKING_LIVE_HEARTBEAT" default:"25s"`
	DefaultListWindow time.Duration `envconfig:"BOOKING_DEFAULT_LIST_WINDOW" default:"336h"`
}

type WorkerConfig struct {
	Enabled                bool          `envconfig:"WORKER_ENABLED" default:"true"`
	DispatchSpec           string        `envconfig:"WORKER_DISPATCH_SPEC" default:"@every 5s"`
	IdempotencyCleanupSpec string        `envconfig:"WORKER_IDEMPOTENCY_CLEANUP_SPEC" default:"@every 1h"`
	BatchSize              int           `envconfig:"WORKER_BATCH_SIZE" default:"50"`
	MaxAttempts            int           `envconfig:"WORKER_MAX_ATTEMPTS" default:"5"`
	RetryBase              time.Duration `envconfig:"WORKER_RETRY_BASE" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LoadConfig reads an optional .env file before processing the environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: "1h",
		},
		Booking: BookingConfig{
			TimeZone:          "Asia/Seoul",
			MaxSlotsPerPlan:   96,
			IdempotencyTTL:    24 * time.Hour,
			LiveHeartbeat:     time.Second,
			DefaultListWindow: 14 * 24 * time.Hour,
		},
		Worker: WorkerConfig{
			// e2e drives the dispatcher by hand
			Enabled:                false,
			DispatchSpec:           "@every 1s",
			IdempotencyCleanupSpec: "@every 1h",
			BatchSize:              50,
			MaxAttempts:            3,
			RetryBase:              time.Second,
		},
	}
}

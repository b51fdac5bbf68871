package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Events   EventsConfig
}

type AppConfig struct {
	AppName         string
	Environment     string
	HTTPPort        string
	LogJSON         bool
	LogDebug        bool
	CORSOrigins     []string
	RateLimitMax    int
	MatchingTimeout time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
	SlowQueryThreshold    time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

// StorageConfig points at an S3 compatible bucket for beneficiary
// attachments. An empty bucket disables uploads.
type StorageConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

// EventsConfig configures the RabbitMQ publisher. An empty URL disables it.
type EventsConfig struct {
	RabbitMQURL string
	Exchange    string
}

func (c EventsConfig) Enabled() bool {
	return c.RabbitMQURL != ""
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// take precedence.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string) bool {
		v, _ := strconv.ParseBool(opt(key))
		return v
	}

	cfg.App = AppConfig{
		AppName:         req("APP_NAME"),
		Environment:     req("APP_ENV"),
		HTTPPort:        req("HTTP_PORT"),
		LogJSON:         optBool("LOG_JSON"),
		LogDebug:        optBool("LOG_DEBUG"),
		CORSOrigins:     splitList(opt("CORS_ORIGINS")),
		RateLimitMax:    optInt("RATE_LIMIT_MAX", 120),
		MatchingTimeout: optDuration("MATCHING_TIMEOUT", 5*time.Second),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     req("DB_PORT"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
		SlowQueryThreshold:    optDuration("DB_SLOW_QUERY_THRESHOLD", 500*time.Millisecond),
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.Redis = RedisConfig{
		Host:      opt("REDIS_HOST"),
		Port:      opt("REDIS_PORT"),
		Password:  opt("REDIS_PASSWORD"),
		DB:        optInt("REDIS_DB", 0),
		KeyPrefix: opt("REDIS_KEY_PREFIX"),
		TTL:       time.Duration(optInt("REDIS_TTL", 600)) * time.Second,
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}

	cfg.Storage = StorageConfig{
		Endpoint:      opt("S3_ENDPOINT"),
		Region:        opt("S3_REGION"),
		Bucket:        opt("S3_BUCKET"),
		AccessKey:     opt("S3_ACCESS_KEY"),
		SecretKey:     opt("S3_SECRET_KEY"),
		PublicBaseURL: strings.TrimRight(opt("S3_PUBLIC_BASE_URL"), "/"),
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "auto"
	}

	cfg.Events = EventsConfig{
		RabbitMQURL: opt("RABBITMQ_URL"),
		Exchange:    opt("RABBITMQ_EXCHANGE"),
	}
	if cfg.Events.Exchange == "" {
		cfg.Events.Exchange = "jobbridge.records"
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

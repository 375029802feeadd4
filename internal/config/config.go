package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service needs. It is built once by Load and
// passed explicitly to the components that need it.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Kafka    KafkaConfig
}

// AppConfig contains HTTP server and request handling settings.
type AppConfig struct {
	Host               string
	Port               string
	LogLevel           string
	LogFormat          string
	APIPrefix          string
	CORSAllowedOrigins []string
	UploadMaxBytes     int64
}

// PostgresConfig contains database connection settings.
type PostgresConfig struct {
	URL          string
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig contains settings of the Redis instance that stores admin sessions.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
}

// JWTConfig contains token signing settings.
type JWTConfig struct {
	SecretKey        string
	RefreshSecretKey string
	Algorithm        string
	AccessExp        time.Duration
	RefreshExp       time.Duration
}

// AdminConfig contains admin panel credentials. The panel is disabled when
// either credential is empty.
type AdminConfig struct {
	Username   string
	Password   string
	SessionTTL time.Duration
}

// KafkaConfig contains progress event publishing settings. Publishing is
// disabled when no brokers are configured.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether the admin panel should be mounted.
func (c AdminConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// DSN returns the Postgres connection string.
func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// Addr returns the HTTP listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Addr returns the Redis address.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads environment variables from the file at path (if it exists) and
// builds a Config. Variables already present in the environment take precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	var err error

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	cfg.App.APIPrefix = normalizePrefix(getEnv("API_PREFIX", "/api"))
	cfg.App.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))
	if cfg.App.UploadMaxBytes, err = getInt64("UPLOAD_MAX_BYTES", 500*1024); err != nil {
		return nil, err
	}

	// PostgreSQL config
	cfg.Postgres.URL = getEnv("DATABASE_URL", "")
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "database")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	// JWT config
	cfg.JWT.SecretKey = getEnv("SECRET_KEY", "my_super_secret_key")
	cfg.JWT.RefreshSecretKey = getEnv("REFRESH_SECRET_KEY", "my_super_refresh_secret_key")
	cfg.JWT.Algorithm = getEnv("ALGORITHM", "HS256")
	accessMinutes, err := getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	refreshDays, err := getInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	if err != nil {
		return nil, err
	}
	cfg.JWT.AccessExp = time.Duration(accessMinutes) * time.Minute
	cfg.JWT.RefreshExp = time.Duration(refreshDays) * 24 * time.Hour

	// Admin panel config
	cfg.Admin.Username = getEnv("ADMIN_USERNAME", "")
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", "")
	ttlMinutes, err := getInt("ADMIN_SESSION_TTL_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cfg.Admin.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	// Kafka config
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "flashcards.progress")

	return cfg, nil
}

// normalizePrefix returns prefix with one leading slash and no trailing one.
// A bare "/" yields "".
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getInt64(key string, defaultValue int64) (int64, error) {
	raw := getEnv(key, strconv.FormatInt(defaultValue, 10))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

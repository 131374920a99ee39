package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	S3      S3Config
	Session SessionConfig
	Partner PartnerConfig
	Email   EmailConfig
	Search  SearchConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the catalog store.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds the wizard-state snapshot store settings.
type RedisConfig struct {
	Address    string        `mapstructure:"address"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// S3Config holds document storage settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// SessionConfig holds wizard session token settings.
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// PartnerConfig holds the financing partner submission endpoint settings.
type PartnerConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// EmailConfig holds confirmation email settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// SearchConfig holds product typeahead settings.
type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
	MaxHits  int           `mapstructure:"max_hits"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the FFS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "fatafat")
	v.SetDefault("db.password", "fatafat_secret")
	v.SetDefault("db.name", "fatafat_store")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Redis defaults
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.session_ttl", "72h")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "fatafat-emi-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 900)

	// Session defaults
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.expiry", "72h")
	v.SetDefault("session.issuer", "fatafatsewa")

	// Partner defaults
	v.SetDefault("partner.endpoint", "http://localhost:9090/api/emi-applications")
	v.SetDefault("partner.timeout", "30s")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@fatafatsewa.com")
	v.SetDefault("email.from_name", "Fatafat Sewa")

	// Search defaults
	v.SetDefault("search.debounce", "300ms")
	v.SetDefault("search.max_hits", 10)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "FFS_SERVER_PORT",
		"server.read_timeout":  "FFS_SERVER_READ_TIMEOUT",
		"server.write_timeout": "FFS_SERVER_WRITE_TIMEOUT",
		"server.environment":   "FFS_SERVER_ENVIRONMENT",
		"db.host":              "FFS_DB_HOST",
		"db.port":              "FFS_DB_PORT",
		"db.user":              "FFS_DB_USER",
		"db.password":          "FFS_DB_PASSWORD",
		"db.name":              "FFS_DB_NAME",
		"db.sslmode":           "FFS_DB_SSLMODE",
		"db.max_open":          "FFS_DB_MAX_OPEN",
		"db.max_idle":          "FFS_DB_MAX_IDLE",
		"redis.address":        "FFS_REDIS_ADDRESS",
		"redis.password":       "FFS_REDIS_PASSWORD",
		"redis.db":             "FFS_REDIS_DB",
		"redis.session_ttl":    "FFS_REDIS_SESSION_TTL",
		"s3.region":            "FFS_S3_REGION",
		"s3.bucket":            "FFS_S3_BUCKET",
		"s3.endpoint":          "FFS_S3_ENDPOINT",
		"s3.access_key":        "FFS_S3_ACCESS_KEY",
		"s3.secret_key":        "FFS_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "FFS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "FFS_S3_PRESIGN_EXPIRY",
		"session.secret":       "FFS_SESSION_SECRET",
		"session.expiry":       "FFS_SESSION_EXPIRY",
		"session.issuer":       "FFS_SESSION_ISSUER",
		"partner.endpoint":     "FFS_PARTNER_ENDPOINT",
		"partner.timeout":      "FFS_PARTNER_TIMEOUT",
		"email.provider":       "FFS_EMAIL_PROVIDER",
		"email.region":         "FFS_EMAIL_REGION",
		"email.from_address":   "FFS_EMAIL_FROM_ADDRESS",
		"email.from_name":      "FFS_EMAIL_FROM_NAME",
		"search.debounce":      "FFS_SEARCH_DEBOUNCE",
		"search.max_hits":      "FFS_SEARCH_MAX_HITS",
		"cors.allowed_origins": "FFS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FFS_SERVER_PORT is
	// not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FFS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Redis = RedisConfig{
		Address:    v.GetString("redis.address"),
		Password:   v.GetString("redis.password"),
		DB:         v.GetInt("redis.db"),
		SessionTTL: v.GetDuration("redis.session_ttl"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Session = SessionConfig{
		Secret: v.GetString("session.secret"),
		Expiry: v.GetDuration("session.expiry"),
		Issuer: v.GetString("session.issuer"),
	}
	cfg.Partner = PartnerConfig{
		Endpoint: v.GetString("partner.endpoint"),
		Timeout:  v.GetDuration("partner.timeout"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Search = SearchConfig{
		Debounce: v.GetDuration("search.debounce"),
		MaxHits:  v.GetInt("search.max_hits"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MySQL, the system of record
	Database DatabaseConfig `json:"database"`

	// GridFS mirror for daily images
	MongoDB MongoDBConfig `json:"mongodb"`

	// Redis cache for like counts
	Redis RedisConfig `json:"redis"`

	JWT JWTConfig `json:"jwt"`

	DailyImage DailyImageConfig `json:"daily_image"`

	Social SocialConfig `json:"social"`

	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	GRPCPort     string `json:"grpc_port"`
	ReadTimeout  int    `json:"read_timeout"`  // seconds
	WriteTimeout int    `json:"write_timeout"` // seconds
	Environment  string `json:"environment"`   // development, staging, production
	MediaBaseURL string `json:"media_base_url"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
	LogLevel     string `json:"log_level"` // silent, error, warn, info
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
	Enabled  bool   `json:"enabled"`
}

type RedisConfig struct {
	Address      string `json:"address"`
	Port         int    `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Database     int    `json:"database"`
	Enabled      bool   `json:"enabled"`
	LikeCountTTL int    `json:"like_count_ttl"` // seconds
}

type JWTConfig struct {
	Secret      string `json:"-"`
	ExpiryHours int    `json:"expiry_hours"`
	Issuer      string `json:"issuer"`
}

// DailyImageConfig points at the Wikipedia featured content feed
type DailyImageConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	UserAgent      string `json:"user_agent"`
	MirrorImages   bool   `json:"mirror_images"`
}

type SocialConfig struct {
	MessagePageLimit        int `json:"message_page_limit"`
	MaxMessagePageLimit     int `json:"max_message_page_limit"`
	MaxMessageLength        int `json:"max_message_length"`
	MaxRequestMessageLength int `json:"max_request_message_length"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, console
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
}

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("HOST", "0.0.0.0"),
			Port:         getEnv("HTTP_PORT", "8080"),
			GRPCPort:     getEnv("GRPC_PORT", "9090"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
			Environment:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "journal"),
			Password:     getEnv("MYSQL_PASSWORD", "journal123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "journal"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
			LogLevel:     getEnv("MYSQL_LOG_LEVEL", "warn"),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Database: getEnv("MONGO_DATABASE", "journal"),
			Bucket:   getEnv("MONGO_BUCKET", "daily_images"),
			Enabled:  getEnvAsBool("MONGO_ENABLED", false),
		},
		Redis: RedisConfig{
			Address:      getEnv("REDIS_HOST", "localhost"),
			Port:         getEnvAsInt("REDIS_PORT", 6379),
			Username:     getEnv("REDIS_USERNAME", ""),
			Password:     getEnv("REDIS_PASSWORD", ""),
			Database:     getEnvAsInt("REDIS_DB", 0),
			Enabled:      getEnvAsBool("REDIS_ENABLED", false),
			LikeCountTTL: getEnvAsInt("LIKE_COUNT_TTL_SECONDS", 300),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "change-me"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
			Issuer:      getEnv("JWT_ISSUER", "gojournal"),
		},
		DailyImage: DailyImageConfig{
			BaseURL:        getEnv("WIKIPEDIA_BASE_URL", "https://en.wikipedia.org/api/rest_v1"),
			TimeoutSeconds: getEnvAsInt("WIKIPEDIA_TIMEOUT_SECONDS", 10),
			UserAgent:      getEnv("WIKIPEDIA_USER_AGENT", "gojournal/1.0"),
			MirrorImages:   getEnvAsBool("MIRROR_IMAGES", false),
		},
		Social: SocialConfig{
			MessagePageLimit:        getEnvAsInt("MESSAGE_PAGE_LIMIT", 50),
			MaxMessagePageLimit:     getEnvAsInt("MAX_MESSAGE_PAGE_LIMIT", 200),
			MaxMessageLength:        getEnvAsInt("MAX_MESSAGE_LENGTH", 1000),
			MaxRequestMessageLength: getEnvAsInt("MAX_REQUEST_MESSAGE_LENGTH", 500),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		},
	}

	cfg.Server.MediaBaseURL = getEnv("MEDIA_BASE_URL",
		fmt.Sprintf("http://localhost:%s/media", cfg.Server.Port))

	return cfg
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}

func (cfg *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Redis.Address, cfg.Redis.Port)
}

func (cfg *Config) IsProduction() bool {
	return strings.EqualFold(cfg.Server.Environment, "production")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

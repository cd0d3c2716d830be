package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	OpenAI    OpenAIConfig
	WordPress WordPressConfig
	Sheets    SheetsConfig
	Analyzer  AnalyzerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// StorageConfig holds object storage configuration for image mirroring
type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	UseSSL          bool
}

// OpenAIConfig holds OpenAI configuration for text and image generation
type OpenAIConfig struct {
	APIKey       string
	ChatModel    string
	ImageModel   string
	ImageSize    string
	ImageQuality string
	Temperature  float32
	MaxTokens    int
	Timeout      time.Duration
}

// WordPressConfig holds WordPress REST API configuration
type WordPressConfig struct {
	URL             string
	Username        string
	AppPassword     string
	DefaultCategory string
	DefaultStatus   string
	Timeout         time.Duration
}

// SheetsConfig holds Google Sheets tracking configuration
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	WorksheetName   string
}

// AnalyzerConfig holds tunable extraction thresholds
type AnalyzerConfig struct {
	MinTextLength    int
	FormalityRatio   float64
	SkilledThreshold int
	ExpertThreshold  int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			Name:        getEnv("DB_NAME", "blog_automation"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", "6h"),
		},
		Storage: StorageConfig{
			Enabled:         getEnvAsBool("STORAGE_ENABLED", false),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "blog-images"),
			PublicURL:       getEnv("STORAGE_PUBLIC_URL", ""),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
		},
		OpenAI: OpenAIConfig{
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			ChatModel:    getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ImageModel:   getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
			ImageSize:    getEnv("OPENAI_IMAGE_SIZE", "1024x1024"),
			ImageQuality: getEnv("OPENAI_IMAGE_QUALITY", "standard"),
			Temperature:  float32(getEnvAsFloat("OPENAI_TEMPERATURE", 0.7)),
			MaxTokens:    getEnvAsInt("OPENAI_MAX_TOKENS", 2000),
			Timeout:      getEnvAsDuration("OPENAI_TIMEOUT", "90s"),
		},
		WordPress: WordPressConfig{
			URL:             getEnv("WORDPRESS_URL", ""),
			Username:        getEnv("WORDPRESS_USERNAME", ""),
			AppPassword:     getEnv("WORDPRESS_APP_PASSWORD", ""),
			DefaultCategory: getEnv("WORDPRESS_DEFAULT_CATEGORY", "안과정보"),
			DefaultStatus:   getEnv("WORDPRESS_DEFAULT_STATUS", "draft"),
			Timeout:         getEnvAsDuration("WORDPRESS_TIMEOUT", "30s"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   getEnv("GOOGLE_SHEETS_ID", ""),
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
			WorksheetName:   getEnv("GOOGLE_SHEETS_WORKSHEET", "콘텐츠 관리"),
		},
		Analyzer: AnalyzerConfig{
			MinTextLength:    getEnvAsInt("ANALYZER_MIN_TEXT_LENGTH", 10),
			FormalityRatio:   getEnvAsFloat("ANALYZER_FORMALITY_RATIO", 1.5),
			SkilledThreshold: getEnvAsInt("ANALYZER_SKILLED_THRESHOLD", 3),
			ExpertThreshold:  getEnvAsInt("ANALYZER_EXPERT_THRESHOLD", 5),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Analyzer.MinTextLength < 1 {
		return fmt.Errorf("ANALYZER_MIN_TEXT_LENGTH must be positive")
	}
	if c.Analyzer.ExpertThreshold < c.Analyzer.SkilledThreshold {
		return fmt.Errorf("ANALYZER_EXPERT_THRESHOLD must be >= ANALYZER_SKILLED_THRESHOLD")
	}
	if c.WordPress.URL != "" && (c.WordPress.Username == "" || c.WordPress.AppPassword == "") {
		return fmt.Errorf("WORDPRESS_USERNAME and WORDPRESS_APP_PASSWORD are required when WORDPRESS_URL is set")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

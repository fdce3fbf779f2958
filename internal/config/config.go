package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"rentify_backend/internal/logger"
)

// Config is the immutable process configuration. It is loaded once at
// startup and passed into constructors; nothing mutates it afterwards.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`
}

var AppConfig *Config

// TokenTTLSeconds is the session lifetime used for both the JWT expiry
// claim and the cookie max-age. Keeping the two derived from one value
// is deliberate: a cookie that outlives its token (or vice versa) only
// produces confusing 401s.
func (c *Config) TokenTTLSeconds() int {
	return c.JWT.TTLHours * 3600
}

// LoadConfig populates AppConfig from a YAML file, or entirely from
// environment variables when DATABASE_URL is set. A .env file in the
// working directory is honored when present. Missing required values
// terminate the process.
func LoadConfig() {
	var cfg Config

	// Optional .env bootstrap for local development
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded environment from .env file")
	}

	if os.Getenv("DATABASE_URL") != "" {
		loadFromEnv(&cfg)
	} else {
		loadFromFile(&cfg)
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	AppConfig = &cfg
}

func loadFromFile(cfg *Config) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		logger.Fatal("Failed to open config file", "path", configPath, "error", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		logger.Fatal("Failed to parse config file", "path", configPath, "error", err)
	}
}

func loadFromEnv(cfg *Config) {
	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.CORS.AllowedOrigins = splitOrigins(os.Getenv("CORS_ORIGIN"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTLHours, _ = strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM_EMAIL")
	cfg.Email.FromName = os.Getenv("SMTP_FROM_NAME")
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// validate rejects configurations that cannot possibly run. Defaults are
// applied only where a safe one exists; secrets never default.
func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed CORS origin is required")
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database DSN is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.JWT.TTLHours <= 0 {
		c.JWT.TTLHours = 24
	}
	if c.Email.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Email.FromEmail == "" {
		return fmt.Errorf("sender email address is required")
	}
	return nil
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

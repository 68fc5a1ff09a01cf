package confs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings sourced from .env, the environment and
// an optional YAML overlay.
type Config struct {
	Port  string
	Debug bool

	DBDriver   string
	DBURL      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	RedisURL string

	KafkaBrokers       []string
	KafkaTopicActivity string
	KafkaTopicLeads    string

	EnforceLoginRole      bool
	ActivityFlushInterval time.Duration
	ResetTokenTTL         time.Duration
	DefaultLocale         string
	CORSOrigins           []string
}

type fileConfig struct {
	Server struct {
		Port          string   `yaml:"port"`
		CORSOrigins   []string `yaml:"cors_allowed_origins"`
		DefaultLocale string   `yaml:"default_locale"`
	} `yaml:"server"`
	Database struct {
		Driver     string `yaml:"driver"`
		URL        string `yaml:"url"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Auth struct {
		JWTIssuer           string `yaml:"jwt_issuer"`
		JWTTTLMinutes       int    `yaml:"jwt_ttl_minutes"`
		EnforceLoginRole    *bool  `yaml:"enforce_login_role"`
		ResetTokenTTLMinute int    `yaml:"reset_token_ttl_minutes"`
	} `yaml:"auth"`
	Dependencies struct {
		RedisURL           string   `yaml:"redis_url"`
		KafkaBrokers       []string `yaml:"kafka_brokers"`
		KafkaTopicActivity string   `yaml:"kafka_topic_activity"`
		KafkaTopicLeads    string   `yaml:"kafka_topic_leads"`
	} `yaml:"dependencies"`
	Activity struct {
		FlushSeconds int `yaml:"flush_seconds"`
	} `yaml:"activity"`
}

// LoadEnv loads a .env file if present; a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}
}

// Load reads the configuration from the environment, then applies the
// YAML file named by REALTY_CONFIG when set.
func Load() (Config, error) {
	cfg := Config{
		Port:  fallback(os.Getenv("PORT"), "3536"),
		Debug: parseBool(os.Getenv("DEBUG"), false),

		DBDriver:   strings.ToLower(fallback(os.Getenv("DB_DRIVER"), "postgres")),
		DBURL:      strings.TrimSpace(os.Getenv("DB_URL")),
		DBHost:     strings.TrimSpace(os.Getenv("DB_HOST")),
		DBPort:     strings.TrimSpace(os.Getenv("DB_PORT")),
		DBUser:     strings.TrimSpace(os.Getenv("DB_USER")),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     strings.TrimSpace(os.Getenv("DB_NAME")),
		SQLitePath: fallback(os.Getenv("SQLITE_PATH"), "realty.db"),

		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer: fallback(os.Getenv("JWT_ISSUER"), "realty-server"),
		JWTTTL:    minutes(os.Getenv("JWT_TTL_MINUTES"), 24*60),

		RedisURL: strings.TrimSpace(os.Getenv("REDIS_URL")),

		KafkaBrokers:       parseCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopicActivity: fallback(os.Getenv("KAFKA_TOPIC_ACTIVITY"), "realty.activity"),
		KafkaTopicLeads:    fallback(os.Getenv("KAFKA_TOPIC_LEADS"), "realty.demo-leads"),

		EnforceLoginRole:      parseBool(os.Getenv("ENFORCE_LOGIN_ROLE"), true),
		ActivityFlushInterval: seconds(os.Getenv("ACTIVITY_FLUSH_SECONDS"), 30),
		ResetTokenTTL:         minutes(os.Getenv("RESET_TOKEN_TTL_MINUTES"), 30),
		DefaultLocale:         fallback(os.Getenv("DEFAULT_LOCALE"), "fa"),
		CORSOrigins:           parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	if path := strings.TrimSpace(os.Getenv("REALTY_CONFIG")); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.DBURL == "" && (c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBPassword == "" || c.DBName == "") {
			return errors.New("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// HTTPAddress returns the address the HTTP server binds to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port)
}

func (c *Config) overlayFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&c.Port, fc.Server.Port)
	setString(&c.DefaultLocale, fc.Server.DefaultLocale)
	if len(fc.Server.CORSOrigins) > 0 {
		c.CORSOrigins = fc.Server.CORSOrigins
	}
	setString(&c.DBDriver, strings.ToLower(fc.Database.Driver))
	setString(&c.DBURL, fc.Database.URL)
	setString(&c.SQLitePath, fc.Database.SQLitePath)
	setString(&c.JWTIssuer, fc.Auth.JWTIssuer)
	if fc.Auth.JWTTTLMinutes > 0 {
		c.JWTTTL = time.Duration(fc.Auth.JWTTTLMinutes) * time.Minute
	}
	if fc.Auth.EnforceLoginRole != nil {
		c.EnforceLoginRole = *fc.Auth.EnforceLoginRole
	}
	if fc.Auth.ResetTokenTTLMinute > 0 {
		c.ResetTokenTTL = time.Duration(fc.Auth.ResetTokenTTLMinute) * time.Minute
	}
	setString(&c.RedisURL, fc.Dependencies.RedisURL)
	if len(fc.Dependencies.KafkaBrokers) > 0 {
		c.KafkaBrokers = fc.Dependencies.KafkaBrokers
	}
	setString(&c.KafkaTopicActivity, fc.Dependencies.KafkaTopicActivity)
	setString(&c.KafkaTopicLeads, fc.Dependencies.KafkaTopicLeads)
	if fc.Activity.FlushSeconds > 0 {
		c.ActivityFlushInterval = time.Duration(fc.Activity.FlushSeconds) * time.Second
	}
	return nil
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseBool(value string, def bool) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
		return b
	}
	return def
}

func minutes(value string, def int) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return time.Duration(n) * time.Minute
	}
	return time.Duration(def) * time.Minute
}

func seconds(value string, def int) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return time.Duration(def) * time.Second
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

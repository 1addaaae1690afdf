package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task capture
	Parser         ParserConfig
	Store          StoreConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Retention      RetentionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ParserConfig struct {
	// Timezone is the IANA name days are resolved in.
	Timezone string
}

type StoreConfig struct {
	Driver     string
	SQLitePath string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type GoogleCalendarConfig struct {
	CredentialsPath      string
	TokenPath            string
	CalendarID           string
	EventDurationMinutes int
}

type RetentionConfig struct {
	Enabled  bool
	Schedule string
	Days     int
}

// Location loads the parser timezone.
func (c ParserConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// EventDuration is how long a timed calendar event lasts.
func (c GoogleCalendarConfig) EventDuration() time.Duration {
	return time.Duration(c.EventDurationMinutes) * time.Minute
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Task capture
	cfg.Parser.Timezone = v.GetString("parser.timezone")
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Store.SQLitePath = v.GetString("store.sqlite_path")

	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(v, v.GetString("telegram.secret_token"))
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDurationMinutes = v.GetInt("google_calendar.event_duration_minutes")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Retention.Enabled = v.GetBool("retention.enabled")
	cfg.Retention.Schedule = v.GetString("retention.schedule")
	cfg.Retention.Days = v.GetInt("retention.days")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 120)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("parser.timezone", "UTC")
	v.SetDefault("store.driver", StoreDriverMemory)
	v.SetDefault("store.sqlite_path", "data/tasks.db")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.event_duration_minutes", 60)
	v.SetDefault("retention.enabled", false)
	v.SetDefault("retention.schedule", "5 0 * * *")
	v.SetDefault("retention.days", 90)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", c.HTTPServer.Port)
	}
	if c.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative")
	}
	if _, err := c.Parser.Location(); err != nil {
		return fmt.Errorf("parser.timezone %q: %w", c.Parser.Timezone, err)
	}

	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("store.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want %s or %s)", c.Store.Driver, StoreDriverMemory, StoreDriverSQLite)
	}

	if c.GoogleCalendar.EventDurationMinutes <= 0 {
		return fmt.Errorf("google_calendar.event_duration_minutes must be positive")
	}
	if c.Retention.Enabled && c.Retention.Days < 1 {
		return fmt.Errorf("retention.days must be at least 1 when retention is enabled")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return ""
}

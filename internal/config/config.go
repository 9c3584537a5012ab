package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const devSessionSecret = "amantech-dev-session-secret-change-me"

// Provider exposes the application configuration to the rest of the app.
// Handlers and services depend on this interface rather than on Config so
// tests can stub individual values.
type Provider interface {
	GetEnv() string
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentPath() string
	GetContentWatch() bool
	GetLogFormat() string
	GetLogLevel() string
	GetContactRateLimit() int
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetEmailTo() string
}

// Config holds all configuration for the application.
type Config struct {
	Env              string
	Addr             string
	AppBaseURL       string
	SessionSecret    string
	ContentPath      string
	ContentWatch     bool
	LogFormat        string
	LogLevel         string
	ContactRateLimit int
	// EmailProvider is none, log or resend. Accepted inquiries are mailed to
	// EmailTo unless it is none.
	EmailProvider string
	EmailAPIKey   string
	EmailSender   string
	EmailTo       string
}

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() *Config {
	cfg := &Config{
		Env:              getenv("APP_ENV", "development"),
		Addr:             getenv("APP_ADDR", ":8080"),
		AppBaseURL:       getenv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		ContentPath:      os.Getenv("CONTENT_PATH"),
		ContentWatch:     getbool("CONTENT_WATCH", false),
		LogFormat:        getenv("LOG_FORMAT", "text"),
		LogLevel:         getenv("LOG_LEVEL", "debug"),
		ContactRateLimit: getint("CONTACT_RATE_LIMIT", 10),
		EmailProvider:    getenv("EMAIL_PROVIDER", "none"),
		EmailAPIKey:      os.Getenv("EMAIL_API_KEY"),
		EmailSender:      os.Getenv("EMAIL_SENDER"),
		EmailTo:          os.Getenv("INQUIRY_EMAIL_TO"),
	}

	if cfg.SessionSecret == "" && cfg.Env != "production" {
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required in production"))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.ContactRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", c.ContactRateLimit))
	}
	if c.ContentWatch && c.ContentPath == "" {
		errs = append(errs, errors.New("CONTENT_WATCH requires CONTENT_PATH"))
	}
	switch c.EmailProvider {
	case "", "none":
	case "log", "resend":
		if c.EmailTo == "" {
			errs = append(errs, fmt.Errorf("EMAIL_PROVIDER %s requires INQUIRY_EMAIL_TO", c.EmailProvider))
		}
	default:
		errs = append(errs, fmt.Errorf("EMAIL_PROVIDER must be none, log or resend, got %q", c.EmailProvider))
	}
	return errors.Join(errs...)
}

func (c *Config) GetEnv() string           { return c.Env }
func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentPath() string   { return c.ContentPath }
func (c *Config) GetContentWatch() bool    { return c.ContentWatch }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
func (c *Config) GetLogLevel() string      { return c.LogLevel }
func (c *Config) GetContactRateLimit() int { return c.ContactRateLimit }
func (c *Config) GetEmailProvider() string { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string   { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string   { return c.EmailSender }
func (c *Config) GetEmailTo() string       { return c.EmailTo }

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

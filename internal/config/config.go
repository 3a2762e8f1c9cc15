package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultMonthlyLimit matches the free tier of the Google Cloud
	// Translation API, in characters per month.
	DefaultMonthlyLimit = 500000

	// DefaultProvider is used when config.json names none.
	DefaultProvider = "google"

	configFile  = "config.json"
	usageFile   = "usage.json"
	historyFile = "history.json"
)

// Error describes missing or invalid configuration
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config holds the resolved runtime configuration
type Config struct {
	Dir          string // directory holding config.json and the state files
	Provider     string
	GoogleAPIKey string
	OpenAIAPIKey string
	GeminiAPIKey string
	MonthlyLimit int
}

// BaseDir returns the directory the config and state files live in.
// State sits next to the executable so the whole tool can be moved as
// one directory, with the working directory as fallback.
func BaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Load reads config.json from dir. The file must exist. API keys may
// be overridden through the GOOGLE_API_KEY, OPENAI_API_KEY and
// GEMINI_API_KEY environment variables.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err != nil {
		return nil, &Error{Message: fmt.Sprintf("config.json not found in %s, please create it with your Google API key", dir)}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("monthly_limit", DefaultMonthlyLimit)
	v.SetDefault("provider", DefaultProvider)
	v.SetEnvPrefix("CLOUDTRANSLATE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, &Error{Message: "reading config.json", Err: err}
	}

	cfg := &Config{
		Dir:          dir,
		Provider:     v.GetString("provider"),
		GoogleAPIKey: envOr("GOOGLE_API_KEY", v, "google_api_key"),
		OpenAIAPIKey: envOr("OPENAI_API_KEY", v, "openai_api_key"),
		GeminiAPIKey: envOr("GEMINI_API_KEY", v, "gemini_api_key"),
		MonthlyLimit: v.GetInt("monthly_limit"),
	}
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	return cfg, nil
}

// envOr prefers the conventional environment variable over the config key
func envOr(envVar string, v *viper.Viper, key string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return v.GetString(key)
}

// UsagePath returns the path of the usage ledger document.
func (c *Config) UsagePath() string {
	return filepath.Join(c.Dir, usageFile)
}

// HistoryPath returns the path of the history log document.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Dir, historyFile)
}

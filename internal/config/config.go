package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Credentials are loaded
// here, once, and handed to notifier constructors as plain values; no other
// package reads the environment.
type Config struct {
	// Project settings
	ProjectPath string
	Project     string
	Environment string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Notifier credentials
	DiscordWebhookURL string
	TelegramBotToken  string
	TelegramChatID    string

	// Optional MySQL DSN for the notification history sink
	HistoryDSN string

	// Notification settings
	IncludeFailedTests   bool
	MaxFailedTestsToShow int

	// Command flags
	Flags Flags
}

// Flags holds command-line flag overrides
type Flags struct {
	Project        string
	Environment    string
	RunURL         string
	Input          string
	Progress       bool
	NoDiscord      bool
	NoTelegram     bool
	NoFailedTests  bool
	MaxFailedTests int

	// notify command only
	Status   string
	Duration string
	Details  string
	Files    []string
	Errors   []string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:          DefaultProjectPath,
		OutputJSONFile:       DefaultOutputJSONFile,
		OutputJSONDir:        DefaultOutputJSONDir,
		IncludeFailedTests:   true,
		MaxFailedTestsToShow: DefaultMaxFailedTestsToShow,
	}
}

// Load creates a config from defaults, a best-effort .env file, environment
// variables and finally flag overrides, in that order of precedence.
func Load(flags Flags) *Config {
	cfg := New()

	// A missing .env is fine; explicit environment variables still apply.
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))
	cfg.applyEnv()
	cfg.applyFlags(flags)

	return cfg
}

func (c *Config) applyEnv() {
	c.DiscordWebhookURL = os.Getenv("DISCORD_WEBHOOK_URL")
	c.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	c.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")
	c.HistoryDSN = os.Getenv("NOTIFY_HISTORY_DSN")
	if v := os.Getenv("E2E_PROJECT_NAME"); v != "" {
		c.Project = v
	}
	if v := os.Getenv("E2E_ENVIRONMENT"); v != "" {
		c.Environment = v
	}
}

func (c *Config) applyFlags(flags Flags) {
	c.Flags = flags
	if flags.Project != "" {
		c.Project = flags.Project
	}
	if flags.Environment != "" {
		c.Environment = flags.Environment
	}
	if flags.MaxFailedTests > 0 {
		c.MaxFailedTestsToShow = flags.MaxFailedTests
	}
	if flags.NoFailedTests {
		c.IncludeFailedTests = false
	}
}

// DiscordConfigured reports whether Discord credentials are present
func (c *Config) DiscordConfigured() bool {
	return c.DiscordWebhookURL != ""
}

// TelegramConfigured reports whether Telegram credentials are present
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// GetOutputPath returns the full path to the last-run JSON file.
// Resolves to an absolute path so report and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

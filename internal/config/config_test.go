package config

import (
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.MaxFailedTestsToShow != DefaultMaxFailedTestsToShow {
		t.Errorf("expected MaxFailedTestsToShow %d, got %d", DefaultMaxFailedTestsToShow, cfg.MaxFailedTestsToShow)
	}
	if !cfg.IncludeFailedTests {
		t.Errorf("failed tests should be included by default")
	}
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.test/hook")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-42")
	t.Setenv("E2E_PROJECT_NAME", "env-project")
	t.Setenv("E2E_ENVIRONMENT", "staging")

	t.Run("env values apply", func(t *testing.T) {
		cfg := Load(Flags{})
		if cfg.DiscordWebhookURL != "https://discord.test/hook" {
			t.Errorf("unexpected webhook URL %q", cfg.DiscordWebhookURL)
		}
		if cfg.Project != "env-project" || cfg.Environment != "staging" {
			t.Errorf("expected env project metadata, got %q/%q", cfg.Project, cfg.Environment)
		}
	})

	t.Run("flags win over env", func(t *testing.T) {
		cfg := Load(Flags{Project: "flag-project", MaxFailedTests: 10, NoFailedTests: true})
		if cfg.Project != "flag-project" {
			t.Errorf("flag should override env, got %q", cfg.Project)
		}
		if cfg.MaxFailedTestsToShow != 10 {
			t.Errorf("expected max 10, got %d", cfg.MaxFailedTestsToShow)
		}
		if cfg.IncludeFailedTests {
			t.Errorf("NoFailedTests flag should disable the failures section")
		}
	})
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		discord  bool
		telegram bool
	}{
		{"nothing", Config{}, false, false},
		{"discord only", Config{DiscordWebhookURL: "u"}, true, false},
		{"telegram needs both", Config{TelegramBotToken: "t"}, false, false},
		{"telegram complete", Config{TelegramBotToken: "t", TelegramChatID: "c"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DiscordConfigured(); got != tt.discord {
				t.Errorf("DiscordConfigured: expected %v, got %v", tt.discord, got)
			}
			if got := tt.cfg.TelegramConfigured(); got != tt.telegram {
				t.Errorf("TelegramConfigured: expected %v, got %v", tt.telegram, got)
			}
		})
	}
}

func TestGetOutputPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/project"

	expected := "/project/storage/last-run.json"
	if got := cfg.GetOutputPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

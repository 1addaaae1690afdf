package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"task-capture/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: staging\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Environment.Name != "staging" {
		t.Errorf("environment = %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Store.Driver != config.StoreDriverMemory {
		t.Errorf("driver = %q, want memory", cfg.Store.Driver)
	}
	if cfg.Parser.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", cfg.Parser.Timezone)
	}
	if got := cfg.GoogleCalendar.EventDuration().Minutes(); got != 60 {
		t.Errorf("event duration = %v minutes, want 60", got)
	}
	if cfg.Retention.Enabled {
		t.Error("retention should be off by default")
	}
}

func TestLoadFile_Sections(t *testing.T) {
	t.Setenv("TEST_TG_SECRET", "hush")

	cfg, err := config.LoadFile(writeConfig(t, `
http_server:
  port: 9090
  rate_limit_per_min: 10
parser:
  timezone: Asia/Tokyo
store:
  driver: SQLite
  sqlite_path: /tmp/tasks.db
telegram:
  bot_token: abc
  secret_token: ${TEST_TG_SECRET}
retention:
  enabled: true
  days: 14
`))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 || cfg.HTTPServer.RateLimitPerMin != 10 {
		t.Errorf("http_server = %+v", cfg.HTTPServer)
	}
	loc, err := cfg.Parser.Location()
	if err != nil || loc.String() != "Asia/Tokyo" {
		t.Errorf("location = %v, %v", loc, err)
	}
	if cfg.Store.Driver != config.StoreDriverSQLite || cfg.Store.SQLitePath != "/tmp/tasks.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Telegram.BotToken != "abc" || cfg.Telegram.SecretToken != "hush" {
		t.Errorf("telegram = %+v", cfg.Telegram)
	}
	if !cfg.Retention.Enabled || cfg.Retention.Days != 14 || cfg.Retention.Schedule != "5 0 * * *" {
		t.Errorf("retention = %+v", cfg.Retention)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unknown driver", body: "store:\n  driver: postgres\n", wantErr: "unknown store.driver"},
		{name: "bad timezone", body: "parser:\n  timezone: Mars/Olympus\n", wantErr: "parser.timezone"},
		{name: "port out of range", body: "http_server:\n  port: 70000\n", wantErr: "http_server.port"},
		{name: "retention without days", body: "retention:\n  enabled: true\n  days: 0\n", wantErr: "retention.days"},
		{name: "zero event duration", body: "google_calendar:\n  event_duration_minutes: 0\n", wantErr: "event_duration_minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFile(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

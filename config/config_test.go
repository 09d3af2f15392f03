package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Redis.ReportTTL != 10*time.Minute {
		t.Errorf("Redis.ReportTTL = %v, want 10m", cfg.Redis.ReportTTL)
	}
	if cfg.AMQP.Enabled {
		t.Error("AMQP should be disabled by default")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", ":memory:")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("REPORT_CACHE_TTL", "90s")
	t.Setenv("AMQP_ENABLED", "true")
	t.Setenv("AMQP_QUEUE", "custom.queue")
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.URL != ":memory:" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis.Enabled should be false")
	}
	if cfg.Redis.ReportTTL != 90*time.Second {
		t.Errorf("Redis.ReportTTL = %v, want 90s", cfg.Redis.ReportTTL)
	}
	if !cfg.AMQP.Enabled || cfg.AMQP.Queue != "custom.queue" {
		t.Errorf("AMQP = %+v", cfg.AMQP)
	}
	if cfg.JWT.AccessTokenExpiry != 15*time.Minute {
		t.Errorf("invalid duration should fall back to the default, got %v", cfg.JWT.AccessTokenExpiry)
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (LogConfig{Level: tt.level}).SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

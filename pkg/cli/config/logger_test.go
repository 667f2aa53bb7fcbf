package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/cihooks/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{
			name:    "Valid level: debug",
			level:   "debug",
			wantErr: false,
		},
		{
			name:    "Valid level: DEBUG (case insensitive)",
			level:   "DEBUG",
			wantErr: false,
		},
		{
			name:    "Valid level: info",
			level:   "info",
			wantErr: false,
		},
		{
			name:    "Valid level: WARN",
			level:   "WARN",
			wantErr: false,
		},
		{
			name:    "Valid level: error",
			level:   "error",
			wantErr: false,
		},
		{
			name:    "Invalid level: invalid",
			level:   "invalid",
			wantErr: true,
		},
		{
			name:    "Invalid level: empty string",
			level:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level:  tt.level,
				Format: "console",
				Output: &bytes.Buffer{},
			}

			result, err := logger.Configure()
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && result == nil {
				t.Error("Configure() returned nil logger for valid input")
			}
		})
	}
}

func TestLogger_Configure_Format(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", Format: "json", Output: &buf}).Configure()
		gt.NoError(t, err)

		logger.Info("test log message", "key", "value")
		gt.True(t, strings.Contains(buf.String(), `"msg":"test log message"`))
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", Format: "console", Output: &buf}).Configure()
		gt.NoError(t, err)

		logger.Info("test log message")
		gt.True(t, strings.Contains(buf.String(), "test log message"))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := (&config.Logger{Level: "info", Format: "xml"}).Configure()
		gt.Error(t, err)
	})
}

func TestLogger_Configure_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger, err := (&config.Logger{Level: "info", Format: "json", Output: &buf}).Configure()
	gt.NoError(t, err)

	logger.Info("config", "github", config.GitHub{Token: "ghp_supersecret", AppID: "12345"})

	gt.False(t, strings.Contains(buf.String(), "ghp_supersecret"))
	gt.True(t, strings.Contains(buf.String(), "12345"))
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()

	if len(flags) != 2 {
		t.Errorf("Flags() returned %d flags, want 2", len(flags))
	}

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		names := flag.Names()
		if len(names) > 0 {
			flagNames[names[0]] = true
		}
	}

	if !flagNames["log-level"] {
		t.Error("Missing log-level flag")
	}
	if !flagNames["log-format"] {
		t.Error("Missing log-format flag")
	}
}

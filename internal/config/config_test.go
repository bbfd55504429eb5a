package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmpolyakov/vocabtrainer/internal/testutil"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		wantErr           bool
		wantErrorContains []string
		want              *Config
	}{
		{
			name: "valid config file with custom values",
			configContent: `database:
  host: db.example.com
  port: 3307
  database: vocab
  username: admin
  tls: true
  max_open_conns: 25
  max_idle_conns: 5
  conn_max_lifetime_seconds: 300
telegram:
  poll_timeout_seconds: 30
session:
  idle_timeout_seconds: 600
  reap_interval_seconds: 120
quiz:
  distractor_count: 5
  min_options: 6
storage:
  timeout_seconds: 10
`,
			want: &Config{
				Database: DatabaseConfig{
					Host:            "db.example.com",
					Port:            3307,
					Database:        "vocab",
					Username:        "admin",
					TLS:             true,
					MaxOpenConns:    25,
					MaxIdleConns:    5,
					ConnMaxLifetime: 300,
				},
				Telegram: TelegramConfig{PollTimeoutSeconds: 30},
				Session:  SessionConfig{IdleTimeoutSeconds: 600, ReapIntervalSeconds: 120},
				Quiz:     QuizConfig{DistractorCount: 5, MinOptions: 6},
				Storage:  StorageConfig{TimeoutSeconds: 10},
			},
		},
		{
			name:          "missing config file uses defaults",
			configContent: "",
			want: &Config{
				Database: DatabaseConfig{
					Host:     "localhost",
					Port:     3306,
					Database: "vocabtrainer",
					Username: "user",
				},
				Telegram: TelegramConfig{PollTimeoutSeconds: 60},
				Session:  SessionConfig{IdleTimeoutSeconds: 300, ReapIntervalSeconds: 60},
				Quiz:     QuizConfig{DistractorCount: 3, MinOptions: 4},
				Storage:  StorageConfig{TimeoutSeconds: 5},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `session:
  idle_timeout_seconds: 900
`,
			want: &Config{
				Database: DatabaseConfig{
					Host:     "localhost",
					Port:     3306,
					Database: "vocabtrainer",
					Username: "user",
				},
				Telegram: TelegramConfig{PollTimeoutSeconds: 60},
				Session:  SessionConfig{IdleTimeoutSeconds: 900, ReapIntervalSeconds: 60},
				Quiz:     QuizConfig{DistractorCount: 3, MinOptions: 4},
				Storage:  StorageConfig{TimeoutSeconds: 5},
			},
		},
		{
			name: "secrets come from the environment",
			configContent: `database:
  host: localhost
`,
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN": "123:абв",
				"DB_PASSWORD":        "secret",
			},
			want: &Config{
				Database: DatabaseConfig{
					Host:     "localhost",
					Port:     3306,
					Database: "vocabtrainer",
					Username: "user",
					Password: "secret",
				},
				Telegram: TelegramConfig{Token: "123:абв", PollTimeoutSeconds: 60},
				Session:  SessionConfig{IdleTimeoutSeconds: 300, ReapIntervalSeconds: 60},
				Quiz:     QuizConfig{DistractorCount: 3, MinOptions: 4},
				Storage:  StorageConfig{TimeoutSeconds: 5},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `database:
  host: localhost
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "zero idle timeout is rejected",
			configContent: `session:
  idle_timeout_seconds: 0
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration"},
		},
		{
			name: "single quiz option is rejected",
			configContent: `quiz:
  min_options: 1
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.configContent != "" {
				configPath = filepath.Join(t.TempDir(), "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0o644))
			} else {
				// No explicit path and nothing to discover in the search
				// paths exercises the not-found tolerance.
				cwd, err := os.Getwd()
				require.NoError(t, err)
				require.NoError(t, os.Chdir(t.TempDir()))
				t.Cleanup(func() { _ = os.Chdir(cwd) })
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)

			got, err := loader.Load()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigLoader_LoadFixture(t *testing.T) {
	cfgPath := testutil.WriteTestConfig(t, t.TempDir(), "vocabtrainer_test")

	loader, err := NewConfigLoader(cfgPath)
	require.NoError(t, err)

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "vocabtrainer_test", got.Database.Database)
	assert.Equal(t, "testuser", got.Database.Username)
}

func TestDurationHelpers(t *testing.T) {
	sess := SessionConfig{IdleTimeoutSeconds: 300, ReapIntervalSeconds: 60}
	assert.Equal(t, 5*time.Minute, sess.IdleTimeout())
	assert.Equal(t, time.Minute, sess.ReapInterval())

	storage := StorageConfig{TimeoutSeconds: 5}
	assert.Equal(t, 5*time.Second, storage.Timeout())
}

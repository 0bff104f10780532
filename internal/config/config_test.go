package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Unit Tests: Validation Logic (AppConfig.validate)
// =============================================================================

func TestAppConfig_Validate_TableDriven(t *testing.T) {
	t.Parallel()

	// 1. Base Valid Configuration Factory
	baseConfig := func() *AppConfig {
		return &AppConfig{
			Debug: true,
			Webhook: WebhookConfig{
				BaseURL:           "https://n8n.example.com/webhook",
				FetchTimeout:      "30s",
				ReloadSettleDelay: "2s",
				HTTPRetry: HTTPRetryConfig{
					MaxRetries: 3,
					RetryDelay: "1s",
				},
			},
			Scheduler: SchedulerConfig{Runnable: true, TimeSpec: "@every 30m"},
			DashboardAPI: DashboardAPIConfig{
				WS:   WSConfig{ListenPort: 8088},
				CORS: CORSConfig{AllowOrigins: []string{"*"}},
			},
			Cache: CacheConfig{Dir: "data"},
		}
	}

	tests := []struct {
		name        string
		modifier    func(*AppConfig) // Config을 망가뜨리는 함수
		expectError bool
		errorMsg    string
	}{
		// Happy Path
		{
			name:        "Valid Configuration",
			modifier:    func(c *AppConfig) {},
			expectError: false,
		},
		// Webhook
		{
			name:        "Webhook: Missing BaseURL",
			modifier:    func(c *AppConfig) { c.Webhook.BaseURL = "" },
			expectError: true,
			errorMsg:    "BaseURL",
		},
		{
			name:        "Webhook: Malformed BaseURL",
			modifier:    func(c *AppConfig) { c.Webhook.BaseURL = "not a url" },
			expectError: true,
			errorMsg:    "BaseURL",
		},
		{
			name:        "Webhook: Invalid FetchTimeout Format",
			modifier:    func(c *AppConfig) { c.Webhook.FetchTimeout = "30 seconds" },
			expectError: true,
			errorMsg:    "올바른 시간 형식이 아닙니다",
		},
		{
			name:        "Webhook: Invalid RetryDelay Format",
			modifier:    func(c *AppConfig) { c.Webhook.HTTPRetry.RetryDelay = "soon" },
			expectError: true,
			errorMsg:    "retry_delay",
		},
		{
			name:        "Webhook: Excessive MaxRetries",
			modifier:    func(c *AppConfig) { c.Webhook.HTTPRetry.MaxRetries = 100 },
			expectError: true,
			errorMsg:    "MaxRetries",
		},
		// Scheduler
		{
			name:        "Scheduler: Invalid Cron Spec",
			modifier:    func(c *AppConfig) { c.Scheduler.TimeSpec = "invalid-cron" },
			expectError: true,
			errorMsg:    "스케줄러(TimeSpec) 설정이 유효하지 않습니다",
		},
		{
			name: "Scheduler: Disabled Skips Cron Check",
			modifier: func(c *AppConfig) {
				c.Scheduler.Runnable = false
				c.Scheduler.TimeSpec = ""
			},
			expectError: false,
		},
		// Notifier
		{
			name: "Telegram: Enabled but Missing BotToken",
			modifier: func(c *AppConfig) {
				c.Notifier.Telegram.Enabled = true
				c.Notifier.Telegram.ChatID = 12345
			},
			expectError: true,
			errorMsg:    "BotToken",
		},
		// Web Server
		{
			name:        "WS: Invalid Port",
			modifier:    func(c *AppConfig) { c.DashboardAPI.WS.ListenPort = -1 },
			expectError: true,
			errorMsg:    "ListenPort",
		},
		{
			name: "WS: TLS Enabled but Missing Cert",
			modifier: func(c *AppConfig) {
				c.DashboardAPI.WS.TLSServer = true
			},
			expectError: true,
			errorMsg:    "TLSCertFile",
		},
		// Cache
		{
			name:        "Cache: Missing Dir",
			modifier:    func(c *AppConfig) { c.Cache.Dir = "" },
			expectError: true,
			errorMsg:    "Dir",
		},
	}

	for _, tt := range tests {
		tt := tt // Capture range variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := baseConfig()
			tt.modifier(cfg)

			err := cfg.validate()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestVerifyRecommendations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		port       int
		origins    []string
		expectWarn bool
		warnMsg    string
	}{
		{"Safe Port", 8088, []string{"*"}, false, ""},
		{"Privileged Port (HTTP)", 80, []string{"*"}, true, "시스템 예약 포트"},
		{"Empty CORS Origins", 8088, nil, true, "allow_origins"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &AppConfig{DashboardAPI: DashboardAPIConfig{
				WS:   WSConfig{ListenPort: tt.port},
				CORS: CORSConfig{AllowOrigins: tt.origins},
			}}
			warnings := cfg.VerifyRecommendations()

			if tt.expectWarn {
				assert.NotEmpty(t, warnings)
				assert.Contains(t, warnings[0], tt.warnMsg)
			} else {
				assert.Empty(t, warnings)
			}
		})
	}
}

// =============================================================================
// Integration Tests: Load Logic
// =============================================================================

func TestLoad_Integration(t *testing.T) {
	// t.Setenv를 사용하는 서브 테스트가 있으므로 병렬 실행하지 않습니다.

	createTempConfig := func(t *testing.T, content string) string {
		t.Helper()
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	validJSON := `{
		"webhook": {"base_url": "https://n8n.example.com/webhook"},
		"dashboard_api": {"ws": {"listen_port": 9000}, "cors": {"allow_origins": ["*"]}}
	}`

	t.Run("Priority: Env > File > Defaults", func(t *testing.T) {
		path := createTempConfig(t, validJSON)

		// 환경 변수가 파일 설정을 덮어쓰는지 확인
		t.Setenv("RAMPRICE_WEBHOOK__HTTP_RETRY__MAX_RETRIES", "7")

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.Webhook.HTTPRetry.MaxRetries, "Environment variable should take precedence over file")
		assert.Equal(t, 9000, cfg.DashboardAPI.WS.ListenPort, "File config should take precedence over defaults")
		assert.Equal(t, DefaultFetchTimeout, cfg.Webhook.FetchTimeout, "Default value should persist if not overridden")
		assert.Equal(t, DefaultCacheDir, cfg.Cache.Dir)
	})

	t.Run("Error: File Not Found", func(t *testing.T) {
		cfg, err := LoadWithFile("non-existent-config.json")
		require.Error(t, err)
		assert.Nil(t, cfg)

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			assert.Equal(t, apperrors.System, appErr.Type)
			assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
		}
	})

	t.Run("Error: Malformed JSON", func(t *testing.T) {
		path := createTempConfig(t, "{ invalid_json: ... }")
		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "설정 파일 로드 중 오류")
	})

	t.Run("Error: Unknown Fields (Strict Unmarshal)", func(t *testing.T) {
		jsonContent := `{
			"unknown_field": "hacking",
			"debug": true
		}`
		path := createTempConfig(t, jsonContent)
		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "구조체로 변환하는데 실패했습니다")
	})

	t.Run("Error: Validation Failure After Load", func(t *testing.T) {
		jsonContent := `{
			"webhook": {"base_url": "https://n8n.example.com/webhook", "fetch_timeout": "nonsense"},
			"dashboard_api": {"ws": {"listen_port": 9000}, "cors": {"allow_origins": ["*"]}}
		}`
		path := createTempConfig(t, jsonContent)
		cfg, err := LoadWithFile(path)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "올바른 시간 형식이 아닙니다")
	})
}

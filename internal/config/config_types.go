package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/darkkaiser/ramprice-server/internal/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 전체 설정 정보를 담는 최상위 구조체입니다.
type AppConfig struct {
	Debug        bool               `json:"debug"`
	Webhook      WebhookConfig      `json:"webhook" validate:"required"`
	Scheduler    SchedulerConfig    `json:"scheduler"`
	Notifier     NotifierConfig     `json:"notifier"`
	DashboardAPI DashboardAPIConfig `json:"dashboard_api"`
	Cache        CacheConfig        `json:"cache"`
}

// WebhookConfig 상품 데이터를 공급하는 n8n 웹훅 백엔드 접속 설정입니다.
type WebhookConfig struct {
	// BaseURL 웹훅 엔드포인트들의 공통 URL 접두사 (예: https://n8n.example.com/webhook)
	BaseURL string `json:"base_url" validate:"required,url"`

	// FetchTimeout 웹훅 호출 1회당 허용되는 최대 시간 (예: "30s")
	FetchTimeout string `json:"fetch_timeout" validate:"required"`

	// ReloadSettleDelay 백엔드 리로드 트리거 후 재수집 전 대기 시간 (예: "2s")
	ReloadSettleDelay string `json:"reload_settle_delay" validate:"required"`

	HTTPRetry HTTPRetryConfig `json:"http_retry"`
}

// HTTPRetryConfig HTTP 요청 실패시의 재시도 정책 설정입니다.
type HTTPRetryConfig struct {
	MaxRetries int    `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay string `json:"retry_delay"`
}

// SchedulerConfig 상품 데이터 주기 갱신 스케줄러 설정입니다.
type SchedulerConfig struct {
	// Runnable 주기 갱신 활성화 여부
	Runnable bool `json:"runnable"`

	// TimeSpec cron 표현식 (예: "0 0/30 * * * *")
	TimeSpec string `json:"time_spec" validate:"required_if=Runnable true"`
}

// NotifierConfig 가격 변동 알림 설정입니다.
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 텔레그램 알림 봇 설정입니다.
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

// DashboardAPIConfig 대시보드 API 서비스 설정입니다.
type DashboardAPIConfig struct {
	WS             WSConfig   `json:"ws"`
	CORS           CORSConfig `json:"cors"`
	RequestTimeout string     `json:"request_timeout"`
}

// WSConfig API 웹서버 설정입니다.
type WSConfig struct {
	ListenPort int  `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer  bool `json:"tls_server"`

	// TLSServer가 true인 경우에만 필요한 인증서 파일 경로
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true"`
}

// CORSConfig 교차 출처 요청 허용 설정입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins"`
}

// CacheConfig 상품 스냅샷 파일 캐시 설정입니다.
type CacheConfig struct {
	Dir string `json:"dir" validate:"required"`
}

// validate 설정 값의 유효성을 검증합니다.
// 구조체 태그 기반 검증과 태그로 표현할 수 없는 정합성 검증을 함께 수행합니다.
func (c *AppConfig) validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 구조체 검증에 실패했습니다")
	}

	// time.Duration 형식 문자열 검증
	if err := validation.ValidateDuration(c.Webhook.FetchTimeout); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "'webhook.fetch_timeout' 설정이 유효하지 않습니다")
	}
	if err := validation.ValidateDuration(c.Webhook.ReloadSettleDelay); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "'webhook.reload_settle_delay' 설정이 유효하지 않습니다")
	}
	if c.Webhook.HTTPRetry.RetryDelay != "" {
		if err := validation.ValidateDuration(c.Webhook.HTTPRetry.RetryDelay); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "'webhook.http_retry.retry_delay' 설정이 유효하지 않습니다")
		}
	}
	if c.DashboardAPI.RequestTimeout != "" {
		if err := validation.ValidateDuration(c.DashboardAPI.RequestTimeout); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "'dashboard_api.request_timeout' 설정이 유효하지 않습니다")
		}
	}

	// 스케줄러 활성화 시 cron 표현식 검증
	if c.Scheduler.Runnable {
		if err := validation.ValidateRobfigCronExpression(c.Scheduler.TimeSpec); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("스케줄러(TimeSpec) 설정이 유효하지 않습니다: '%s'", c.Scheduler.TimeSpec))
		}
	}

	// CORS Origin 형식 검증
	for _, origin := range c.DashboardAPI.CORS.AllowOrigins {
		if err := validation.ValidateCORSOrigin(origin); err != nil {
			return err
		}
	}

	// TLS 사용 시 인증서 파일 존재 여부 검증
	if c.DashboardAPI.WS.TLSServer {
		if err := validation.ValidateFileExists(c.DashboardAPI.WS.TLSCertFile, false); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "지정된 TLS 인증서 파일(tls_cert_file)을 찾을 수 없습니다")
		}
		if err := validation.ValidateFileExists(c.DashboardAPI.WS.TLSKeyFile, false); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "지정된 TLS 키 파일(tls_key_file)을 찾을 수 없습니다")
		}
	}

	return nil
}

// VerifyRecommendations 운영 환경에서 권장되지 않는 설정을 찾아 경고 메시지 목록을 반환합니다.
// 검증 실패와 달리 애플리케이션 기동을 막지는 않습니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.DashboardAPI.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("웹 서버 포트(%d)가 시스템 예약 포트 범위(0~1023)에 속합니다. 1024 이상의 포트 사용을 권장합니다.", c.DashboardAPI.WS.ListenPort))
	}
	if len(c.DashboardAPI.CORS.AllowOrigins) == 0 {
		warnings = append(warnings, "CORS 허용 도메인(allow_origins)이 비어있어 모든 교차 출처 요청이 차단됩니다.")
	}

	return warnings
}

// FetchTimeoutDuration 검증이 완료된 FetchTimeout 설정값을 time.Duration으로 반환합니다.
func (c *WebhookConfig) FetchTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.FetchTimeout)
	return d
}

// ReloadSettleDelayDuration 검증이 완료된 ReloadSettleDelay 설정값을 time.Duration으로 반환합니다.
func (c *WebhookConfig) ReloadSettleDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReloadSettleDelay)
	return d
}

// RetryDelayDuration 검증이 완료된 RetryDelay 설정값을 time.Duration으로 반환합니다.
// 값이 비어있으면 기본값을 반환합니다.
func (c *HTTPRetryConfig) RetryDelayDuration() time.Duration {
	if c.RetryDelay == "" {
		d, _ := time.ParseDuration(DefaultRetryDelay)
		return d
	}
	d, _ := time.ParseDuration(c.RetryDelay)
	return d
}

// RequestTimeoutDuration 검증이 완료된 RequestTimeout 설정값을 time.Duration으로 반환합니다.
// 값이 비어있으면 30초를 반환합니다.
func (c *DashboardAPIConfig) RequestTimeoutDuration() time.Duration {
	if c.RequestTimeout == "" {
		return 30 * time.Second
	}
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

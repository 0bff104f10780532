// Package contract 서비스 간 의존성을 끊기 위한 공용 인터페이스와 타입을 정의합니다.
package contract

import (
	"strings"
	"time"
)

// PriceAlertKind 가격 알림의 종류입니다.
type PriceAlertKind string

const (
	// PriceAlertDrop 최저 시세가 이전 수집 결과보다 하락한 경우
	PriceAlertDrop PriceAlertKind = "DROP"

	// PriceAlertRise 최저 시세가 이전 수집 결과보다 상승한 경우
	PriceAlertRise PriceAlertKind = "RISE"

	// PriceAlertUnavailable 판매중인 판매처가 모두 사라진 경우
	PriceAlertUnavailable PriceAlertKind = "UNAVAILABLE"
)

// PriceAlert 모델 하나의 최저 시세 변동 알림입니다.
type PriceAlert struct {
	Kind         PriceAlertKind
	ModelCode    string
	ProductName  string
	PreviousBest float64
	CurrentBest  float64
	VendorName   string
	OccurredAt   time.Time
}

// NotificationSender 알림 발송 기능을 제공하는 인터페이스입니다.
// 제품 수집 서비스와 API 서비스는 이 인터페이스를 통해 알림 서비스를 사용합니다.
type NotificationSender interface {
	// NotifyPriceAlert 최저 시세 변동 알림 메시지를 발송합니다.
	// 발송 요청이 정상적으로 큐에 등록되면 nil을 반환하며, 실제 전송 결과와는 무관합니다.
	NotifyPriceAlert(alert PriceAlert) error

	// NotifyMessage 일반 텍스트 알림 메시지를 발송합니다.
	NotifyMessage(message string) error

	// NotifyError 관리자의 주의가 필요한 오류 알림 메시지를 발송합니다.
	NotifyError(message string) error
}

// NotificationHealthChecker Notification 서비스의 상태를 확인하는 인터페이스입니다.
type NotificationHealthChecker interface {
	// Health 서비스가 정상적으로 실행 중이면 nil을 반환합니다.
	Health() error
}

// Validate PriceAlert의 필수 값이 채워져 있는지 검증합니다.
func (a PriceAlert) Validate() error {
	if strings.TrimSpace(a.ModelCode) == "" {
		return ErrModelCodeRequired
	}
	switch a.Kind {
	case PriceAlertDrop, PriceAlertRise, PriceAlertUnavailable:
		return nil
	default:
		return ErrUnknownAlertKind
	}
}

package notification

import (
	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
)

var (
	// ErrQueueFull 발송 대기열이 가득 차서 알림을 접수할 수 없을 때 반환하는 에러입니다.
	ErrQueueFull = apperrors.New(apperrors.System, "알림 발송 대기열이 가득 차서 메시지를 접수할 수 없습니다")

	// ErrTelegramDisabled 텔레그램 알림이 설정에서 비활성화되어 있을 때 반환하는 에러입니다.
	ErrTelegramDisabled = apperrors.New(apperrors.System, "텔레그램 알림이 비활성화되어 있습니다")
)

// NewErrBotInitFailed 텔레그램 봇 초기화에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrBotInitFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "텔레그램 봇 초기화에 실패했습니다")
}

package contract

import (
	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
)

var (
	// ErrServiceStopped 서비스가 이미 중지되어 요청을 처리할 수 없을 때 반환하는 에러입니다.
	ErrServiceStopped = apperrors.New(apperrors.System, "서비스가 중지되어 요청을 처리할 수 없습니다")

	// ErrMessageRequired 알림의 본문 내용이 비어있거나 공백 문자로만 구성되어 있어 유효하지 않을 때 반환하는 에러입니다.
	ErrMessageRequired = apperrors.New(apperrors.InvalidInput, "알림 메시지 본문은 비워둘 수 없습니다")

	// ErrModelCodeRequired 가격 알림에 모델 코드가 비어있을 때 반환하는 에러입니다.
	ErrModelCodeRequired = apperrors.New(apperrors.InvalidInput, "가격 알림의 모델 코드는 비워둘 수 없습니다")

	// ErrUnknownAlertKind 가격 알림의 종류가 정의되지 않은 값일 때 반환하는 에러입니다.
	ErrUnknownAlertKind = apperrors.New(apperrors.InvalidInput, "정의되지 않은 가격 알림 종류입니다")
)

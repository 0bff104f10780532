// Package constants API 서비스 전반에서 사용되는 상수를 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	// ComponentService 서비스 컴포넌트 이름
	ComponentService = "api.service"

	// ComponentHandler 핸들러 컴포넌트 이름
	ComponentHandler = "api.handler"

	// ComponentMiddleware 미들웨어 컴포넌트 이름
	ComponentMiddleware = "api.middleware"

	// ComponentErrorHandler 에러 핸들러 컴포넌트 이름
	ComponentErrorHandler = "api.error_handler"
)

// HTTP 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간
	// 별도의 타임아웃 설정이 없는 경우 이 값이 적용됩니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 본문 읽기 제한 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더 읽기 제한 시간
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한 시간
	DefaultWriteTimeout = 90 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 유휴 제한 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 버스트 허용량
	DefaultRateLimitBurst = 40

	// DefaultMaxBodySize 요청 본문의 최대 크기
	DefaultMaxBodySize = "2M"
)

// 클라이언트에게 반환되는 표준 에러 메시지 상수입니다.
const (
	// ErrMsgBadRequest 400 Bad Request 에러 메시지입니다.
	ErrMsgBadRequest = "잘못된 요청입니다."

	// ErrMsgNotFound 404 Not Found 에러 메시지입니다.
	ErrMsgNotFound = "페이지를 찾을 수 없습니다."

	// ErrMsgTooManyRequests 429 Too Many Requests 에러 메시지입니다.
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."

	// ErrMsgInternalServer 500 Internal Server Error 메시지입니다.
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다."
)

// 헬스체크 상태 및 의존성 이름 상수입니다.
const (
	// HealthStatusHealthy 정상 상태
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 비정상 상태
	HealthStatusUnhealthy = "unhealthy"

	// DependencyNotificationService 알림 서비스 의존성 이름
	DependencyNotificationService = "notification_service"
)

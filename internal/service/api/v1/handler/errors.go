package handler

import (
	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/darkkaiser/ramprice-server/internal/service/api/httputil"
)

// toHTTPError 서비스 계층의 에러를 적절한 HTTP 에러로 변환합니다.
//
// InvalidInput과 NotFound는 서비스가 생성한 메시지를 그대로 노출하고,
// 그 외의 에러는 내부 정보 노출을 막기 위해 일반화된 메시지로 대체합니다.
func toHTTPError(err error) error {
	switch {
	case apperrors.Is(err, apperrors.InvalidInput):
		return httputil.NewBadRequestError(err.Error())
	case apperrors.Is(err, apperrors.NotFound):
		return httputil.NewNotFoundError(err.Error())
	case apperrors.Is(err, apperrors.FetchFailed):
		return httputil.NewBadGatewayError("웹훅 백엔드 호출에 실패했습니다. 잠시 후 다시 시도해주세요")
	case apperrors.Is(err, apperrors.Timeout):
		return httputil.NewServiceUnavailableError("요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요")
	default:
		return httputil.NewInternalServerError("요청을 처리할 수 없습니다. 잠시 후 다시 시도해주세요")
	}
}

package webhook

import (
	"fmt"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
)

// newErrHTMLResponse JSON 응답을 기대한 요청에 HTML이 반환된 경우의 에러를 생성합니다.
// 엔드포인트 오류나 인증 실패로 에러 페이지가 반환되는 케이스를 감지하기 위함입니다.
func newErrHTMLResponse(url string) error {
	return apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("JSON 응답을 기대했지만 HTML이 반환되었습니다: '%s'", url))
}

// newErrBodySizeLimitExceeded 응답 본문이 허용된 최대 크기를 초과한 경우의 에러를 생성합니다.
// JSON은 부분 파싱이 불가능하므로 잘린 응답은 사용할 수 없습니다.
func newErrBodySizeLimitExceeded(url string, limit int64) error {
	return apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("응답 본문 크기가 제한(%d바이트)을 초과했습니다: '%s'", limit, url))
}

// newErrUnexpectedStatus 2xx가 아닌 HTTP 상태 코드가 반환된 경우의 에러를 생성합니다.
func newErrUnexpectedStatus(url string, statusCode int) error {
	return apperrors.New(apperrors.FetchFailed, fmt.Sprintf("HTTP 요청이 실패했습니다(상태 코드: %d): '%s'", statusCode, url))
}

// Package validation 설정 값 검증에 사용되는 공용 검사 함수를 제공합니다.
package validation

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/darkkaiser/ramprice-server/pkg/cronx"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// cronParser 초 단위 필드를 포함하는 6필드 cron 표현식 파서입니다.
var cronParser = cronx.StandardParser()

// ValidateRobfigCronExpression robfig/cron 표현식의 유효성을 검사합니다.
// 초 단위를 포함한 6필드 형식과 @daily 등의 특수 표현식을 허용합니다.
func ValidateRobfigCronExpression(spec string) error {
	if _, err := cronParser.Parse(spec); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("Cron 표현식이 유효하지 않습니다: '%s'", spec))
	}
	return nil
}

// ValidateDuration time.Duration 형식 문자열의 유효성을 검사합니다.
func ValidateDuration(s string) error {
	if _, err := time.ParseDuration(s); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("올바른 시간 형식이 아닙니다: '%s'", s))
	}
	return nil
}

// ValidateURL HTTP/HTTPS URL의 유효성을 검사합니다. 빈 문자열은 허용됩니다.
func ValidateURL(urlStr string) error {
	if urlStr == "" {
		return nil
	}

	if strings.ContainsAny(urlStr, " \t") {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("URL에 공백이 포함되어 있습니다: '%s'", urlStr))
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("URL 형식이 올바르지 않습니다: '%s'", urlStr))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("URL은 http 또는 https 스키마만 허용됩니다: '%s'", urlStr))
	}
	if u.Host == "" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("URL에 호스트가 없습니다: '%s'", urlStr))
	}
	return nil
}

// ValidateCORSOrigin CORS Origin 값의 유효성을 검사합니다.
// 와일드카드(*) 또는 '스키마://호스트[:포트]' 형식만 허용하며 경로, 쿼리, 후행 슬래시는 거부합니다.
func ValidateCORSOrigin(origin string) error {
	if origin == "*" {
		return nil
	}

	trimmed := strings.TrimSpace(origin)
	if trimmed == "" {
		return apperrors.New(apperrors.InvalidInput, "CORS Origin이 비어있습니다")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%s'", origin))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin은 http 또는 https 스키마만 허용됩니다: '%s'", origin))
	}
	if u.Host == "" || u.Path != "" || u.RawQuery != "" || strings.HasSuffix(trimmed, "/") {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin은 '스키마://호스트[:포트]' 형식이어야 합니다: '%s'", origin))
	}
	return nil
}

// ValidateFileExists 파일 존재 여부를 검사합니다.
// warnOnly가 true면 경고만 출력하고 에러는 반환하지 않습니다.
func ValidateFileExists(path string, warnOnly bool) error {
	if path == "" {
		return nil // 빈 경로는 검사하지 않음
	}

	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			errMsg := apperrors.New(apperrors.NotFound, fmt.Sprintf("파일이 존재하지 않습니다: %s", path))
			if warnOnly {
				applog.WithComponentAndFields("validation", log.Fields{
					"file_path": path,
				}).Warn(errMsg.Error())
				return nil
			}
			return errMsg
		}
		return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("파일 접근 오류: %s", path))
	}
	return nil
}

// ValidateFileExistsOrURL 값이 URL이면 URL 유효성을, 그 외에는 파일 존재 여부를 검사합니다.
func ValidateFileExistsOrURL(path string, warnOnly bool) error {
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return ValidateURL(path)
	}
	return ValidateFileExists(path, warnOnly)
}

// ValidateNoDuplicate 목록에 값이 이미 존재하는지 검사합니다.
func ValidateNoDuplicate(list []string, value, valueType string) error {
	for _, v := range list {
		if v == value {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("중복된 %s이(가) 존재합니다: '%s'", valueType, value))
		}
	}
	return nil
}

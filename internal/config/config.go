// Package config 애플리케이션 설정의 로드와 유효성 검증을 담당합니다.
//
// 설정은 다음 우선순위로 병합됩니다 (뒤로 갈수록 우선순위가 높음):
//  1. 코드에 정의된 기본값
//  2. JSON 설정 파일 (ramprice-server.json)
//  3. 환경 변수 (RAMPRICE_ 접두사)
package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "ramprice-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// ------------------------------------------------------------------------------------------------
	// 웹훅 백엔드 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultMaxRetries 웹훅 호출 실패 시 최대 재시도 횟수 기본값
	DefaultMaxRetries = 3

	// DefaultRetryDelay 재시도 사이의 대기 시간 기본값
	DefaultRetryDelay = "2s"

	// DefaultFetchTimeout 웹훅 호출 1회당 허용되는 최대 시간 기본값
	DefaultFetchTimeout = "30s"

	// DefaultReloadSettleDelay 백엔드 리로드 트리거 후 재수집 전 대기 시간 기본값
	// n8n 워크플로우가 수집 데이터를 갱신할 시간을 확보하기 위한 지연입니다.
	DefaultReloadSettleDelay = "2s"

	// DefaultListenPort API 서버의 기본 포트
	DefaultListenPort = 8088

	// DefaultCacheDir 상품 캐시 파일이 저장되는 기본 디렉토리
	DefaultCacheDir = "data"
)

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"webhook.fetch_timeout":          DefaultFetchTimeout,
		"webhook.reload_settle_delay":    DefaultReloadSettleDelay,
		"webhook.http_retry.max_retries": DefaultMaxRetries,
		"webhook.http_retry.retry_delay": DefaultRetryDelay,
		"dashboard_api.ws.listen_port":   DefaultListenPort,
		"cache.dir":                      DefaultCacheDir,
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 접두사: RAMPRICE_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: RAMPRICE_WEBHOOK__BASE_URL -> webhook.base_url
	if err := k.Load(env.Provider("RAMPRICE_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "RAMPRICE_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

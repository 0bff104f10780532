// Package log 애플리케이션 전역 로깅 시스템을 제공합니다.
//
// logrus를 기반으로 컴포넌트 단위의 구조화된 로깅과
// lumberjack을 통한 로그 파일 로테이션을 지원합니다.
package log

import (
	log "github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus 로거를 반환합니다.
// Echo 등 외부 프레임워크의 로거 어댑터 구성에 사용합니다.
func StandardLogger() *Logger {
	return log.StandardLogger()
}

// SetDebugMode 디버그 모드 여부에 따라 전역 로그 레벨을 조정합니다.
func SetDebugMode(debug bool) {
	if debug {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// WithComponent 컴포넌트 이름이 포함된 로그 Entry를 반환합니다.
// 로그 조회 시 어느 서브시스템에서 발생한 로그인지 필터링할 수 있도록 합니다.
func WithComponent(component string) *Entry {
	return log.WithField("component", component)
}

// WithComponentAndFields 컴포넌트 이름과 추가 필드가 포함된 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	return log.WithField("component", component).WithFields(fields)
}

// WithFields 추가 필드가 포함된 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return log.WithFields(fields)
}

// WithError 에러 필드가 포함된 로그 Entry를 반환합니다.
func WithError(err error) *Entry {
	return log.WithError(err)
}

// Package service 애플리케이션을 구성하는 서비스들의 공통 생명주기 규약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 애플리케이션에서 실행되는 장기 실행 서비스의 생명주기 인터페이스입니다.
//
// Run은 서비스를 시작하고 즉시 반환하며, serviceStopCtx가 취소되면 서비스는
// 내부 리소스를 정리한 후 serviceStopWG.Done()을 호출해야 합니다.
// 시작에 실패한 경우에도 serviceStopWG.Done()을 호출한 후 에러를 반환해야 합니다.
type Service interface {
	Run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}

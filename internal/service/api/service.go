// Package api 대시보드 REST API 서버의 생명주기를 관리합니다.
//
// Echo 기반 HTTP/HTTPS 서버의 시작과 종료, 미들웨어 체인 설정,
// 라우팅 설정, Graceful Shutdown을 담당합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/ramprice-server/docs"
	"github.com/darkkaiser/ramprice-server/internal/config"
	"github.com/darkkaiser/ramprice-server/internal/pkg/version"
	"github.com/darkkaiser/ramprice-server/internal/service/api/constants"
	"github.com/darkkaiser/ramprice-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/ramprice-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/ramprice-server/internal/service/api/v1/handler"
	"github.com/darkkaiser/ramprice-server/internal/service/contract"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// shutdownTimeout Graceful Shutdown 시 최대 대기 시간
	shutdownTimeout = 5 * time.Second
)

// Service 대시보드 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 서비스는 고루틴으로 실행되며, serviceStopCtx를 통해 종료 신호를 받습니다.
type Service struct {
	cfg *config.AppConfig

	productService  v1handler.ProductService
	shoppingService v1handler.ShoppingService

	// notificationSender 서버의 치명적 에러 발생 시 알림 전송에 사용됩니다. nil이면 알림을 보내지 않습니다.
	notificationSender contract.NotificationSender

	// notificationHealth 헬스체크 시 알림 서비스의 상태 확인에 사용됩니다. nil일 수 있습니다.
	notificationHealth contract.NotificationHealthChecker

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(
	cfg *config.AppConfig,
	productService v1handler.ProductService,
	shoppingService v1handler.ShoppingService,
	notificationSender contract.NotificationSender,
	notificationHealth contract.NotificationHealthChecker,
	buildInfo version.Info,
) *Service {
	if cfg == nil {
		panic("AppConfig는 필수입니다")
	}
	if productService == nil {
		panic("ProductService는 필수입니다")
	}
	if shoppingService == nil {
		panic("ShoppingService는 필수입니다")
	}

	return &Service{
		cfg: cfg,

		productService:  productService,
		shoppingService: shoppingService,

		notificationSender: notificationSender,
		notificationHealth: notificationHealth,

		buildInfo: buildInfo,
	}
}

// Run API 서비스를 시작합니다.
//
// 서버 설정과 HTTP 서버 실행은 별도의 고루틴에서 수행되며, 이 함수는 즉시
// 반환됩니다. serviceStopCtx가 취소되면 Graceful Shutdown을 수행한 후
// serviceStopWG에 종료 완료를 알립니다.
func (s *Service) Run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("서비스 시작 진입: API 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn("API 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info("서비스 시작 완료: API 서비스가 정상적으로 초기화되었습니다")

	return nil
}

// runServiceLoop 서비스의 메인 실행 루프입니다.
// 서버 설정, HTTP 서버 시작, Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 모든 설정을 완료합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.notificationHealth, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.productService, s.shoppingService)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.cfg.Debug,
		AllowOrigins:   s.cfg.DashboardAPI.CORS.AllowOrigins,
		RequestTimeout: s.cfg.DashboardAPI.RequestTimeoutDuration(),
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다.
//
// 설정에 따라 TLS 활성화 여부를 결정하며, 서버가 종료되면 done 채널을 닫아
// 대기 중인 고루틴에 신호를 보냅니다. 이 함수는 서버가 종료될 때까지
// 블로킹됩니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.cfg.DashboardAPI.WS.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug("HTTP 서버를 시작합니다")

	var err error
	if s.cfg.DashboardAPI.WS.TLSServer {
		err = e.StartTLS(
			fmt.Sprintf(":%d", port),
			s.cfg.DashboardAPI.WS.TLSCertFile,
			s.cfg.DashboardAPI.WS.TLSKeyFile,
		)
	} else {
		err = e.Start(fmt.Sprintf(":%d", port))
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버 실행 중 발생한 에러를 처리합니다.
//
// http.ErrServerClosed는 Graceful Shutdown의 정상 흐름이므로 Info 로깅만
// 수행하고, 그 외의 에러는 로깅과 함께 알림을 전송합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info("HTTP 서버가 정상적으로 종료되었습니다")
		return
	}

	message := "HTTP 서버 실행 중 치명적 에러가 발생했습니다"
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.cfg.DashboardAPI.WS.ListenPort,
		"error": err,
	}).Error(message)

	if s.notificationSender != nil {
		if notifyErr := s.notificationSender.NotifyError(fmt.Sprintf("%s\r\n\r\n%s", message, err)); notifyErr != nil {
			applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
				"error": notifyErr,
			}).Warn("서버 에러 알림 전송 실패")
		}
	}
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info("종료 절차 진입: API 서비스 중지 시그널을 수신했습니다")
	case <-httpServerDone:
		// HTTP 서버가 예기치 않게 종료됨 (포트 바인딩 실패 등)
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error("HTTP 서버가 예기치 않게 종료되었습니다")

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error("HTTP 서버 Shutdown 중 에러가 발생했습니다")
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

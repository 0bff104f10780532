// Package notification 최저 시세 변동 알림을 외부 채널(텔레그램)로 발송하는 서비스입니다.
//
// 알림은 내부 대기열에 등록된 뒤 워커 고루틴이 순서대로 전송하므로,
// 호출 측은 전송 완료를 기다리지 않습니다.
package notification

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/ramprice-server/internal/config"
	"github.com/darkkaiser/ramprice-server/internal/pkg/mark"
	"github.com/darkkaiser/ramprice-server/internal/service/contract"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
)

// component Notification 서비스의 로깅용 컴포넌트 이름
const component = "notification.service"

const (
	// queueBufferSize 발송 대기열의 크기입니다.
	// Rate Limit(초당 1건)과 종료 대기 시간을 고려하여, 종료 시 유실 없이
	// 모두 처리할 수 있는 크기로 설정합니다.
	queueBufferSize = 30

	// sendTimeout 메시지 1건의 전송에 허용하는 최대 시간입니다.
	// Rate Limit 대기 시간을 포함하므로 충분히 길게 설정합니다.
	sendTimeout = 30 * time.Second

	// shutdownTimeout 서비스 종료 시 대기열에 남은 메시지 처리를 위해 대기하는 최대 시간입니다.
	shutdownTimeout = 60 * time.Second
)

// messageSender 알림 메시지를 실제 채널로 전송하는 인터페이스입니다.
type messageSender interface {
	SendMessage(ctx context.Context, text string) error
}

// Service 알림 발송 대기열을 관리하는 서비스입니다.
type Service struct {
	sender messageSender

	queue chan string

	// workerStopWG 워커 고루틴의 종료를 대기하는 WaitGroup
	workerStopWG sync.WaitGroup

	running   bool
	runningMu sync.Mutex
}

var (
	_ contract.NotificationSender        = (*Service)(nil)
	_ contract.NotificationHealthChecker = (*Service)(nil)
)

// NewService 설정에 따라 텔레그램 발송 채널에 연결된 Notification 서비스를 생성합니다.
// 텔레그램 알림이 비활성화되어 있으면 ErrTelegramDisabled를 반환합니다.
func NewService(cfg *config.AppConfig) (*Service, error) {
	if cfg == nil {
		panic("AppConfig는 필수입니다")
	}
	if !cfg.Notifier.Telegram.Enabled {
		return nil, ErrTelegramDisabled
	}

	sender, err := newTelegramSender(cfg.Notifier.Telegram.BotToken, cfg.Notifier.Telegram.ChatID)
	if err != nil {
		return nil, err
	}

	return newServiceWithSender(sender), nil
}

// newServiceWithSender 전송 채널을 직접 지정하여 서비스를 생성합니다. 테스트에서 사용합니다.
func newServiceWithSender(sender messageSender) *Service {
	return &Service{
		sender: sender,

		queue: make(chan string, queueBufferSize),
	}
}

// Run 서비스를 시작하고 발송 워커를 실행합니다.
// serviceStopCtx가 취소되면 대기열에 남은 메시지를 처리한 뒤 종료합니다.
func (s *Service) Run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Notification 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	s.workerStopWG.Add(1)
	go s.sendWorker(serviceStopCtx)

	s.running = true

	applog.WithComponent(component).Info("서비스 시작 완료: Notification 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		applog.WithComponent(component).Info("종료 절차 진입: Notification 서비스 중지 시그널을 수신했습니다")

		s.runningMu.Lock()
		s.running = false
		s.runningMu.Unlock()

		// 워커가 대기열에 남은 메시지를 처리하고 종료할 때까지 대기한다.
		s.workerStopWG.Wait()

		applog.WithComponent(component).Info("Notification 서비스 종료 완료: 모든 리소스가 정리되었습니다")
	}()

	return nil
}

// sendWorker 대기열의 메시지를 순서대로 전송하는 워커입니다.
//
// 종료 시그널을 수신하면 대기열에 이미 등록된 메시지를 shutdownTimeout
// 이내에서 모두 전송한 뒤 종료합니다.
func (s *Service) sendWorker(serviceStopCtx context.Context) {
	defer s.workerStopWG.Done()

	for {
		select {
		case message := <-s.queue:
			s.send(serviceStopCtx, message)
		case <-serviceStopCtx.Done():
			s.drainQueue()
			return
		}
	}
}

// drainQueue 종료 시점에 대기열에 남아있는 메시지를 전송합니다.
func (s *Service) drainQueue() {
	deadline := time.Now().Add(shutdownTimeout)

	for {
		select {
		case message := <-s.queue:
			if time.Now().After(deadline) {
				applog.WithComponent(component).Warn("종료 대기 시간 초과: 대기열에 남은 메시지를 버립니다")
				return
			}
			s.send(context.Background(), message)
		default:
			return
		}
	}
}

// send 메시지 1건을 전송합니다. 실패는 로그만 남깁니다.
func (s *Service) send(ctx context.Context, message string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := s.sender.SendMessage(sendCtx, message); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("알림 전송 실패: 메시지가 유실되었습니다")
	}
}

// NotifyPriceAlert 최저 시세 변동 알림을 발송 대기열에 등록합니다.
func (s *Service) NotifyPriceAlert(alert contract.PriceAlert) error {
	if err := alert.Validate(); err != nil {
		return err
	}

	return s.enqueue(formatPriceAlert(alert))
}

// NotifyMessage 일반 텍스트 알림을 발송 대기열에 등록합니다.
func (s *Service) NotifyMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return contract.ErrMessageRequired
	}

	return s.enqueue(message)
}

// NotifyError 오류 알림을 발송 대기열에 등록합니다.
func (s *Service) NotifyError(message string) error {
	if strings.TrimSpace(message) == "" {
		return contract.ErrMessageRequired
	}

	return s.enqueue(mark.Alert.String() + " " + message)
}

// Health 서비스가 정상적으로 실행 중이면 nil을 반환합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return contract.ErrServiceStopped
	}
	return nil
}

// enqueue 메시지를 발송 대기열에 등록합니다.
// 서비스가 중지되었으면 ErrServiceStopped, 대기열이 가득 찼으면 ErrQueueFull을 반환합니다.
func (s *Service) enqueue(message string) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return contract.ErrServiceStopped
	}

	select {
	case s.queue <- message:
		return nil
	default:
		applog.WithComponent(component).Warn("알림 접수 실패: 발송 대기열이 가득 찼습니다")
		return ErrQueueFull
	}
}

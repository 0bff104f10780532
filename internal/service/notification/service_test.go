package notification

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/ramprice-server/internal/config"
	"github.com/darkkaiser/ramprice-server/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeMessageSender 전송된 메시지를 기록하는 messageSender 구현체입니다.
type fakeMessageSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMessageSender) SendMessage(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeMessageSender) sentMessages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.sent...)
}

// runTestService 서비스를 시작하고 종료 함수를 반환합니다.
func runTestService(t *testing.T, s *Service) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	require.NoError(t, s.Run(ctx, &wg))

	return func() {
		cancel()
		wg.Wait()
	}
}

// TestService_NotifyMessage 일반 메시지가 발송 채널로 전달되는지 검증합니다.
func TestService_NotifyMessage(t *testing.T) {
	sender := &fakeMessageSender{}
	s := newServiceWithSender(sender)

	stop := runTestService(t, s)
	defer stop()

	require.NoError(t, s.NotifyMessage("수집 작업이 완료되었습니다"))

	require.Eventually(t, func() bool {
		return len(sender.sentMessages()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "수집 작업이 완료되었습니다", sender.sentMessages()[0])
}

// TestService_NotifyMessage_Blank 빈 메시지 요청의 거부를 검증합니다.
func TestService_NotifyMessage_Blank(t *testing.T) {
	sender := &fakeMessageSender{}
	s := newServiceWithSender(sender)

	stop := runTestService(t, s)
	defer stop()

	assert.ErrorIs(t, s.NotifyMessage("   "), contract.ErrMessageRequired)
	assert.ErrorIs(t, s.NotifyError(""), contract.ErrMessageRequired)
}

// TestService_NotifyError 오류 메시지의 경고 마크 접두어를 검증합니다.
func TestService_NotifyError(t *testing.T) {
	sender := &fakeMessageSender{}
	s := newServiceWithSender(sender)

	stop := runTestService(t, s)
	defer stop()

	require.NoError(t, s.NotifyError("스냅샷 저장에 실패했습니다"))

	require.Eventually(t, func() bool {
		return len(sender.sentMessages()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "🚨 스냅샷 저장에 실패했습니다", sender.sentMessages()[0])
}

// TestService_NotifyPriceAlert 가격 알림이 본문으로 변환되어 전송되는지 검증합니다.
func TestService_NotifyPriceAlert(t *testing.T) {
	sender := &fakeMessageSender{}
	s := newServiceWithSender(sender)

	stop := runTestService(t, s)
	defer stop()

	require.NoError(t, s.NotifyPriceAlert(contract.PriceAlert{
		Kind:         contract.PriceAlertDrop,
		ModelCode:    "CMK32GX5M2B6000C30",
		ProductName:  "CORSAIR VENGEANCE 32GB",
		PreviousBest: 1299,
		CurrentBest:  1197,
		VendorName:   "Store974",
		OccurredAt:   time.Now(),
	}))

	require.Eventually(t, func() bool {
		return len(sender.sentMessages()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Contains(t, sender.sentMessages()[0], "최저 시세 하락")
	assert.Contains(t, sender.sentMessages()[0], "1,299 QAR → 1,197 QAR (Store974)")
}

// TestService_NotifyPriceAlert_Invalid 필수 값이 누락된 알림의 거부를 검증합니다.
func TestService_NotifyPriceAlert_Invalid(t *testing.T) {
	sender := &fakeMessageSender{}
	s := newServiceWithSender(sender)

	stop := runTestService(t, s)
	defer stop()

	assert.ErrorIs(t, s.NotifyPriceAlert(contract.PriceAlert{
		Kind: contract.PriceAlertDrop,
	}), contract.ErrModelCodeRequired)

	assert.ErrorIs(t, s.NotifyPriceAlert(contract.PriceAlert{
		Kind:      "INVALID",
		ModelCode: "CMK32GX5M2B6000C30",
	}), contract.ErrUnknownAlertKind)
}

// TestService_NotifyBeforeRun 서비스 시작 전의 알림 요청 거부를 검증합니다.
func TestService_NotifyBeforeRun(t *testing.T) {
	t.Parallel()

	s := newServiceWithSender(&fakeMessageSender{})

	assert.ErrorIs(t, s.NotifyMessage("message"), contract.ErrServiceStopped)
}

// TestService_QueueFull 발송 대기열이 가득 찬 경우의 접수 거부를 검증합니다.
func TestService_QueueFull(t *testing.T) {
	t.Parallel()

	s := newServiceWithSender(&fakeMessageSender{})

	// 워커를 실행하지 않고 대기열만 가득 채운다.
	s.running = true
	for i := range queueBufferSize {
		require.NoError(t, s.NotifyMessage(fmt.Sprintf("message-%d", i)))
	}

	assert.ErrorIs(t, s.NotifyMessage("overflow"), ErrQueueFull)
}

// TestService_DrainOnShutdown 종료 시 대기열에 남은 메시지가 모두 전송되는지 검증합니다.
func TestService_DrainOnShutdown(t *testing.T) {
	sender := &fakeMessageSender{}
	s := newServiceWithSender(sender)

	stop := runTestService(t, s)

	for i := range 5 {
		require.NoError(t, s.NotifyMessage(fmt.Sprintf("message-%d", i)))
	}

	stop()

	assert.Len(t, sender.sentMessages(), 5)
	assert.ErrorIs(t, s.NotifyMessage("after stop"), contract.ErrServiceStopped)
}

// TestService_Health 서비스 실행 상태에 따른 Health 결과를 검증합니다.
func TestService_Health(t *testing.T) {
	s := newServiceWithSender(&fakeMessageSender{})

	assert.ErrorIs(t, s.Health(), contract.ErrServiceStopped)

	stop := runTestService(t, s)
	assert.NoError(t, s.Health())

	stop()
	assert.ErrorIs(t, s.Health(), contract.ErrServiceStopped)
}

// TestService_RunTwiceIsNoop 중복 시작 호출이 무시되는지 검증합니다.
func TestService_RunTwiceIsNoop(t *testing.T) {
	s := newServiceWithSender(&fakeMessageSender{})

	stop := runTestService(t, s)
	defer stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, s.Run(ctx, &wg))
	wg.Wait()
}

// TestNewService_TelegramDisabled 텔레그램 비활성화 설정의 처리를 검증합니다.
func TestNewService_TelegramDisabled(t *testing.T) {
	t.Parallel()

	cfg := &config.AppConfig{}
	cfg.Notifier.Telegram.Enabled = false

	s, err := NewService(cfg)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrTelegramDisabled)
}

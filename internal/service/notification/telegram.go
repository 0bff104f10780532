package notification

import (
	"context"
	"net/http"
	"time"
	"unicode/utf8"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	// maxMessageLength 텔레그램 메시지 1건의 최대 길이(바이트)입니다.
	maxMessageLength = 4096

	// defaultRateLimit 텔레그램 API Rate Limit (초당 허용 요청 수)
	// 공식 문서는 채팅방당 초당 1회를 권장합니다.
	defaultRateLimit = 1

	// defaultRateBurst 텔레그램 API Rate Limit 버스트 (순간 최대 허용 요청 수)
	defaultRateBurst = 5

	// defaultHTTPClientTimeout 텔레그램 API 클라이언트의 HTTP 요청 타임아웃
	defaultHTTPClientTimeout = 70 * time.Second
)

// botAPI 텔레그램 봇 API의 전송 기능 추상화입니다. 테스트에서 대체할 수 있습니다.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// telegramSender 텔레그램 채팅방으로 메시지를 전송하는 messageSender 구현체입니다.
//
// Rate Limiter로 API 호출 빈도를 제한하며, 최대 길이를 초과하는 메시지는
// 문자가 깨지지 않는 경계에서 분할하여 순서대로 전송합니다.
type telegramSender struct {
	bot    botAPI
	chatID int64

	limiter *rate.Limiter
}

var _ messageSender = (*telegramSender)(nil)

// newTelegramSender 텔레그램 봇 API에 연결된 telegramSender를 생성합니다.
func newTelegramSender(botToken string, chatID int64) (*telegramSender, error) {
	client := &http.Client{Timeout: defaultHTTPClientTimeout}

	bot, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, NewErrBotInitFailed(err)
	}

	return &telegramSender{
		bot:    bot,
		chatID: chatID,

		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateBurst),
	}, nil
}

// SendMessage 메시지를 텔레그램 채팅방으로 전송합니다.
// 최대 길이를 초과하면 여러 건으로 분할하여 전송합니다.
func (s *telegramSender) SendMessage(ctx context.Context, text string) error {
	remainder := text
	for remainder != "" {
		var chunk string
		chunk, remainder = safeSplit(remainder, maxMessageLength)

		if err := s.limiter.Wait(ctx); err != nil {
			return apperrors.Wrap(err, apperrors.Timeout, "Rate Limit 대기 중 요청이 취소되었습니다")
		}

		if _, err := s.bot.Send(tgbotapi.NewMessage(s.chatID, chunk)); err != nil {
			return apperrors.Wrap(err, apperrors.System, "텔레그램 메시지 전송에 실패했습니다")
		}
	}

	return nil
}

// safeSplit 문자열을 limit 바이트 이내의 첫번째 청크와 나머지로 분할합니다.
//
// limit 위치가 멀티바이트 문자의 중간일 수 있으므로, 뒤로 이동하며 가장
// 가까운 룬 시작 위치에서 자릅니다. limit 이전에 유효한 룬 시작점이 없는
// 극단적인 경우에만 limit에서 강제로 자릅니다.
func safeSplit(s string, limit int) (chunk, remainder string) {
	if len(s) <= limit {
		return s, ""
	}

	splitIndex := limit
	for splitIndex > 0 && !utf8.RuneStart(s[splitIndex]) {
		splitIndex--
	}

	if splitIndex == 0 {
		return s[:limit], s[limit:]
	}

	return s[:splitIndex], s[splitIndex:]
}

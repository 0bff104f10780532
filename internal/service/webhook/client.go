// Package webhook 상품 가격 데이터를 공급하는 n8n 웹훅 백엔드와의 통신을 담당합니다.
//
// 백엔드는 판매처별 수집 데이터를 JSON 배열로 반환하는 웹훅 엔드포인트들을 제공하며,
// 요청은 모델 코드를 multipart form 필드로 전달하는 POST 방식입니다.
package webhook

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/darkkaiser/ramprice-server/internal/config"
	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	"golang.org/x/net/html/charset"
)

// component 로깅용 컴포넌트 이름
const component = "webhook.client"

// 웹훅 백엔드의 엔드포인트 경로
const (
	// 판매처별 가격 데이터 엔드포인트
	EndpointAmazon   = "get-amazon-data"
	EndpointStore974 = "get-store974-data"
	EndpointGeekay   = "get-geekay-data"
	EndpointNewegg   = "get-newegg-data"

	// EndpointAllData 전체 상품 메타데이터(모델 코드, 상품명, 구매 가격, 스펙) 엔드포인트
	EndpointAllData = "get-all-data"

	// 지역별 쇼핑 검색 결과 엔드포인트
	EndpointQatarShoppingSearch = "qatar/google-search"
	EndpointUKShoppingSearch    = "uk/google-search"

	// reloadPath 백엔드 전체 데이터 리로드를 트리거하는 경로
	reloadPath = "ram-price-tracker/main/reload"
)

// ModelAll 모델 필터 없이 전체 데이터를 요청할 때 사용하는 form 필드 값입니다.
const ModelAll = "all"

const (
	// defaultMaxResponseBodySize 응답 본문의 기본 최대 크기입니다.
	// 메모리 사용량을 제어하고 비정상적인 대용량 응답으로부터 시스템을 보호합니다.
	defaultMaxResponseBodySize = 10 * 1024 * 1024 // 10MB

	// maxRetryDelayCap 지수 백오프 증가 시 재시도 대기 시간의 상한선입니다.
	maxRetryDelayCap = 30 * time.Second
)

// Client 웹훅 백엔드와 통신하는 HTTP 클라이언트입니다.
//
// 네트워크 오류와 서버 오류(5xx, 429)에 대해 지수 백오프 기반의 자동 재시도를 수행하며,
// 응답 본문은 문자 인코딩 감지를 거쳐 UTF-8로 변환됩니다.
type Client struct {
	baseURL string

	httpClient *http.Client

	maxRetries int
	retryDelay time.Duration

	// maxResponseBodySize 응답 본문의 최대 읽기 크기(바이트)입니다.
	maxResponseBodySize int64
}

// Option Client 생성 시 적용되는 선택적 설정입니다.
type Option func(*Client)

// WithHTTPClient 내부 HTTP 클라이언트를 교체합니다. (테스트용 또는 커스텀 Transport 주입용)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxResponseBodySize 응답 본문의 최대 크기를 변경합니다.
func WithMaxResponseBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxResponseBodySize = size
		}
	}
}

// NewClient 새로운 웹훅 클라이언트를 생성합니다.
func NewClient(cfg *config.WebhookConfig, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),

		httpClient: &http.Client{
			Timeout: cfg.FetchTimeoutDuration(),
		},

		maxRetries: cfg.HTTPRetry.MaxRetries,
		retryDelay: cfg.HTTPRetry.RetryDelayDuration(),

		maxResponseBodySize: defaultMaxResponseBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch 지정된 엔드포인트에서 모델 코드에 해당하는 레코드 목록을 가져옵니다.
//
// 모델 코드가 비어있으면 전체 데이터를 의미하는 "all"로 대체됩니다.
// 백엔드가 빈 본문이나 배열이 아닌 JSON을 반환하면 빈 목록을 반환합니다.
func (c *Client) Fetch(ctx context.Context, endpoint, model string) ([]Record, error) {
	if model == "" {
		model = ModelAll
	}

	// 모델 코드를 multipart form 필드로 전달한다. (백엔드 웹훅의 요청 규약)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("model", model); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "multipart form 생성에 실패했습니다")
	}
	if err := mw.Close(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "multipart form 생성에 실패했습니다")
	}

	urlStr := c.baseURL + "/" + endpoint
	body, err := c.do(ctx, http.MethodPost, urlStr, buf.Bytes(), mw.FormDataContentType(), true)
	if err != nil {
		return nil, err
	}

	records, err := ParseRecords(body)
	if err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"endpoint": endpoint,
		"model":    model,
		"records":  len(records),
	}).Debug("웹훅 데이터 수신 완료")

	return records, nil
}

// TriggerReload 백엔드에 전체 데이터 리로드를 트리거합니다.
//
// 리로드는 비동기로 수행되므로, 호출자는 설정된 대기 시간(reload_settle_delay)이
// 지난 후에 데이터를 다시 수집해야 합니다.
func (c *Client) TriggerReload(ctx context.Context) error {
	urlStr := c.baseURL + "/" + reloadPath
	if _, err := c.do(ctx, http.MethodGet, urlStr, nil, "", false); err != nil {
		return err
	}

	applog.WithComponent(component).Info("백엔드 데이터 리로드 트리거 완료")
	return nil
}

// do HTTP 요청을 수행하고 응답 본문을 반환합니다.
// 재시도 가능한 실패(네트워크 오류, 5xx, 429)에 대해 지수 백오프 재시도를 수행합니다.
func (c *Client) do(ctx context.Context, method, urlStr string, body []byte, contentType string, expectJSON bool) ([]byte, error) {
	logger := applog.WithComponentAndFields(component, applog.Fields{
		"method": method,
		"url":    urlStr,
	})

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(c.retryDelay, attempt)
			logger.WithFields(applog.Fields{
				"attempt":     attempt,
				"max_retries": c.maxRetries,
				"delay":       delay.String(),
			}).Warn("HTTP 요청 재시도 대기")

			select {
			case <-ctx.Done():
				return nil, apperrors.Wrap(ctx.Err(), apperrors.Timeout, "재시도 대기 중 요청이 취소되었습니다")
			case <-time.After(delay):
			}
		}

		data, retryable, err := c.doOnce(ctx, method, urlStr, body, contentType, expectJSON)
		if err == nil {
			return data, nil
		}

		lastErr = err
		if !retryable || ctx.Err() != nil {
			return nil, err
		}

		logger.WithError(err).WithField("attempt", attempt).Warn("HTTP 요청 실패, 재시도합니다")
	}

	return nil, lastErr
}

// doOnce 단일 HTTP 요청을 수행합니다. retryable은 실패가 재시도 가능한지의 여부입니다.
func (c *Client) doOnce(ctx context.Context, method, urlStr string, body []byte, contentType string, expectJSON bool) (data []byte, retryable bool, err error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, reqBody)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.Internal, "HTTP 요청 생성에 실패했습니다")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, apperrors.Wrap(err, apperrors.FetchFailed, "HTTP 요청 전송에 실패했습니다")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Keep-Alive 연결 재사용을 위해 남은 본문을 제한적으로 소비
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		retryable = resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, newErrUnexpectedStatus(urlStr, resp.StatusCode)
	}

	respContentType := resp.Header.Get("Content-Type")

	// JSON 응답을 기대하는 요청에 HTML이 반환되는 경우를 감지한다.
	// (잘못된 엔드포인트, 인증 실패 리다이렉트 등으로 에러 페이지가 반환되는 케이스)
	if expectJSON && strings.Contains(strings.ToLower(respContentType), "text/html") {
		return nil, false, newErrHTMLResponse(urlStr)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBodySize+1))
	if err != nil {
		return nil, true, apperrors.Wrap(err, apperrors.FetchFailed, "응답 본문 읽기에 실패했습니다")
	}
	if int64(len(raw)) > c.maxResponseBodySize {
		return nil, false, newErrBodySizeLimitExceeded(urlStr, c.maxResponseBodySize)
	}

	// 문자 인코딩 감지 및 UTF-8 변환
	// 변환에 실패하면 원본 그대로 파싱을 계속한다.
	if utf8Reader, cerr := charset.NewReader(bytes.NewReader(raw), respContentType); cerr == nil {
		if converted, rerr := io.ReadAll(utf8Reader); rerr == nil {
			raw = converted
		}
	}

	return raw, false, nil
}

// backoffDelay 재시도 횟수에 따른 지수 백오프 대기 시간을 계산합니다.
// 동시 다발적인 재시도가 몰리는 것을 방지하기 위해 무작위 지연(Jitter)을 더합니다.
func backoffDelay(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = time.Second
	}

	delay := base << (attempt - 1)
	if delay > maxRetryDelayCap {
		delay = maxRetryDelayCap
	}

	jitter := time.Duration(rand.Int64N(int64(delay)/2 + 1))
	return delay + jitter
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/darkkaiser/ramprice-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rateLimitTestRequest 지정한 IP에서 요청 하나를 실행하고 결과를 반환합니다.
func rateLimitTestRequest(t *testing.T, h echo.HandlerFunc, ip string) (error, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return h(c), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRateLimiting(t *testing.T) {
	t.Run("버스트 한도 내의 요청은 허용", func(t *testing.T) {
		h := RateLimiting(1, 3)(okHandler)

		for i := 0; i < 3; i++ {
			err, rec := rateLimitTestRequest(t, h, "10.0.0.1")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("버스트 한도 초과 시 429 반환", func(t *testing.T) {
		h := RateLimiting(1, 2)(okHandler)

		for i := 0; i < 2; i++ {
			err, _ := rateLimitTestRequest(t, h, "10.0.0.2")
			require.NoError(t, err)
		}

		err, _ := rateLimitTestRequest(t, h, "10.0.0.2")
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)

		errResp, ok := httpErr.Message.(response.ErrorResponse)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, errResp.ResultCode)
	})

	t.Run("제한 초과 시 Retry-After 헤더 설정", func(t *testing.T) {
		h := RateLimiting(1, 1)(okHandler)

		err, _ := rateLimitTestRequest(t, h, "10.0.0.3")
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.3")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.Error(t, h(c))
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("IP별로 독립적인 제한 적용", func(t *testing.T) {
		h := RateLimiting(1, 1)(okHandler)

		err, _ := rateLimitTestRequest(t, h, "10.0.1.1")
		require.NoError(t, err)

		// 첫 번째 IP는 한도 소진
		err, _ = rateLimitTestRequest(t, h, "10.0.1.1")
		require.Error(t, err)

		// 다른 IP는 영향을 받지 않는다.
		err, rec := rateLimitTestRequest(t, h, "10.0.1.2")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("잘못된 설정값은 panic 발생", func(t *testing.T) {
		assert.Panics(t, func() { RateLimiting(0, 10) })
		assert.Panics(t, func() { RateLimiting(10, 0) })
		assert.Panics(t, func() { RateLimiting(-1, -1) })
	})
}

// TestIPRateLimiter_ConcurrentAccess 동시 접근 시에도 IP별 Limiter가 안전하게
// 생성되고 재사용되는지 검증합니다.
func TestIPRateLimiter_ConcurrentAccess(t *testing.T) {
	limiter := newIPRateLimiter(100, 100)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.getLimiter("10.0.2.1")
		}()
	}
	wg.Wait()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.Len(t, limiter.limiters, 1, "같은 IP는 하나의 Limiter만 생성되어야 합니다")
}

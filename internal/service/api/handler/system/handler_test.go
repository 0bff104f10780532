package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/darkkaiser/ramprice-server/internal/pkg/version"
	"github.com/darkkaiser/ramprice-server/internal/service/api/constants"
	"github.com/darkkaiser/ramprice-server/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHealthChecker NotificationHealthChecker의 테스트용 구현체입니다.
type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) Health() error {
	return f.err
}

func testBuildInfo() version.Info {
	return version.Info{
		Version:   "1.2.3",
		Commit:    "abc1234",
		BuildDate: "2026-09-01T00:00:00Z",
		GoVersion: runtime.Version(),
	}
}

func createTestContext(t *testing.T, target string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, c
}

func TestHealthCheckHandler(t *testing.T) {
	tests := []struct {
		name               string
		healthChecker      *fakeHealthChecker
		expectedStatus     string
		expectedDepStatus  string
		expectedDepMessage string
	}{
		{
			name:               "알림 서비스 정상이면 healthy",
			healthChecker:      &fakeHealthChecker{},
			expectedStatus:     constants.HealthStatusHealthy,
			expectedDepStatus:  constants.HealthStatusHealthy,
			expectedDepMessage: "정상 작동 중",
		},
		{
			name:               "알림 서비스 중지 상태면 unhealthy",
			healthChecker:      &fakeHealthChecker{err: errors.New("알림 서비스가 중지되었습니다")},
			expectedStatus:     constants.HealthStatusUnhealthy,
			expectedDepStatus:  constants.HealthStatusUnhealthy,
			expectedDepMessage: "알림 서비스가 중지되었습니다",
		},
		{
			name:               "알림이 비활성화된 구성에서는 healthy 유지",
			healthChecker:      nil,
			expectedStatus:     constants.HealthStatusHealthy,
			expectedDepStatus:  constants.HealthStatusHealthy,
			expectedDepMessage: "알림 서비스 비활성화됨",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var handler *Handler
			if tt.healthChecker != nil {
				handler = NewHandler(tt.healthChecker, testBuildInfo())
			} else {
				handler = NewHandler(nil, testBuildInfo())
			}

			rec, c := createTestContext(t, "/health")

			require.NoError(t, handler.HealthCheckHandler(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.expectedStatus, resp.Status)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))

			dep, ok := resp.Dependencies[constants.DependencyNotificationService]
			require.True(t, ok, "알림 서비스 의존성 상태가 포함되어야 합니다")
			assert.Equal(t, tt.expectedDepStatus, dep.Status)
			assert.Equal(t, tt.expectedDepMessage, dep.Message)
		})
	}
}

func TestVersionHandler(t *testing.T) {
	handler := NewHandler(&fakeHealthChecker{}, testBuildInfo())

	rec, c := createTestContext(t, "/version")

	require.NoError(t, handler.VersionHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "abc1234", resp.Commit)
	assert.Equal(t, "2026-09-01T00:00:00Z", resp.BuildDate)
	assert.Equal(t, runtime.Version(), resp.GoVersion)
}

// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/ramprice-server/internal/pkg/version"
	"github.com/darkkaiser/ramprice-server/internal/service/api/constants"
	"github.com/darkkaiser/ramprice-server/internal/service/api/model/system"
	"github.com/darkkaiser/ramprice-server/internal/service/contract"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	// notificationHealth 알림 서비스의 상태를 확인합니다. 알림이 비활성화된 경우 nil일 수 있습니다.
	notificationHealth contract.NotificationHealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(notificationHealth contract.NotificationHealthChecker, buildInfo version.Info) *Handler {
	return &Handler{
		notificationHealth: notificationHealth,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성의 상태를 확인합니다.
// @Description 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 외부 의존성별 상태 (notification_service 등)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug("헬스체크 요청 수신")

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	deps := make(map[string]system.DependencyStatus)

	// Notification 서비스 상태 확인
	// 알림이 비활성화된 구성에서는 전체 상태에 영향을 주지 않는다.
	if h.notificationHealth != nil {
		if err := h.notificationHealth.Health(); err != nil {
			deps[constants.DependencyNotificationService] = system.DependencyStatus{
				Status:  constants.HealthStatusUnhealthy,
				Message: err.Error(),
			}
		} else {
			deps[constants.DependencyNotificationService] = system.DependencyStatus{
				Status:  constants.HealthStatusHealthy,
				Message: "정상 작동 중",
			}
		}
	} else {
		deps[constants.DependencyNotificationService] = system.DependencyStatus{
			Status:  constants.HealthStatusHealthy,
			Message: "알림 서비스 비활성화됨",
		}
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug("버전 정보 요청 수신")

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: runtime.Version(),
	})
}

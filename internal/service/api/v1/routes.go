// Package v1 Dashboard API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리하며,
// 제품 가격 조회와 수집 제어를 위한 RESTful API를 제공합니다.
//
// 주요 엔드포인트:
//   - GET  /api/v1/products                              - 제품 목록 조회
//   - GET  /api/v1/products/:modelCode                   - 제품 단건 조회 (미등록 모델은 즉시 수집)
//   - POST /api/v1/products/:modelCode/refresh           - 제품 재수집
//   - PUT  /api/v1/products/:productID/vendors/:vendorID - 판매처 가격 수동 변경
//   - GET  /api/v1/products/:modelCode/shopping-results  - 지역별 쇼핑 검색 결과 조회
//   - POST /api/v1/reload                                - 백엔드 재수집 트리거
package v1

import (
	"github.com/darkkaiser/ramprice-server/internal/service/api/middleware"
	"github.com/darkkaiser/ramprice-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// /api/v1 그룹을 생성하고 제품 가격 조회와 수집 제어 엔드포인트를 등록합니다.
// 본문이 있는 엔드포인트에는 Content-Type 검증 미들웨어가 적용됩니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.GET("/products", h.ListProductsHandler)
	v1Group.GET("/products/:modelCode", h.GetProductHandler)
	v1Group.POST("/products/:modelCode/refresh", h.RefreshProductHandler)
	v1Group.GET("/products/:modelCode/shopping-results", h.ShoppingResultsHandler)

	v1Group.PUT("/products/:productID/vendors/:vendorID", h.OverrideVendorHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)

	v1Group.POST("/reload", h.ReloadHandler)
}

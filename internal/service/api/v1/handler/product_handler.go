package handler

import (
	"net/http"
	"strconv"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/darkkaiser/ramprice-server/internal/service/api/constants"
	"github.com/darkkaiser/ramprice-server/internal/service/api/httputil"
	"github.com/darkkaiser/ramprice-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/ramprice-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/ramprice-server/internal/service/product"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ListProductsHandler godoc
// @Summary 제품 목록 조회
// @Description 수집된 모든 RAM 제품의 판매처별 가격과 최저 시세를 반환합니다.
// @Description 각 제품에는 구매가 대비 절약액 정보가 포함됩니다.
// @Tags Product
// @Produce json
// @Success 200 {array} response.ProductResponse "제품 목록"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	products := h.productService.Products()

	return c.JSON(http.StatusOK, response.NewProductResponses(products))
}

// GetProductHandler godoc
// @Summary 제품 단건 조회
// @Description 모델 코드로 제품을 조회합니다.
// @Description 저장소에 없는 모델 코드인 경우 웹훅 백엔드에서 즉시 수집하여 반환합니다.
// @Tags Product
// @Produce json
// @Param modelCode path string true "제품 모델 코드" example(CMK32GX5M2B6000C30)
// @Success 200 {object} response.ProductResponse "제품 정보"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 502 {object} response.ErrorResponse "웹훅 백엔드 호출 실패"
// @Router /api/v1/products/{modelCode} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	modelCode := c.Param("modelCode")

	p, err := h.productService.Product(modelCode)
	if err != nil {
		if !apperrors.Is(err, apperrors.NotFound) {
			return toHTTPError(err)
		}

		// 저장소에 없는 모델은 즉시 수집하여 반환한다.
		p, err = h.productService.RefreshProduct(c.Request().Context(), modelCode)
		if err != nil {
			return toHTTPError(err)
		}
	}

	return c.JSON(http.StatusOK, response.NewProductResponse(p))
}

// RefreshProductHandler godoc
// @Summary 제품 재수집
// @Description 모델 하나를 웹훅 백엔드에서 다시 수집하여 최신 가격으로 갱신합니다.
// @Tags Product
// @Produce json
// @Param modelCode path string true "제품 모델 코드" example(CMK32GX5M2B6000C30)
// @Success 200 {object} response.ProductResponse "갱신된 제품 정보"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 502 {object} response.ErrorResponse "웹훅 백엔드 호출 실패"
// @Router /api/v1/products/{modelCode}/refresh [post]
func (h *Handler) RefreshProductHandler(c echo.Context) error {
	modelCode := c.Param("modelCode")

	p, err := h.productService.RefreshProduct(c.Request().Context(), modelCode)
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithField("model_code", modelCode).Info("제품 재수집 완료")

	return c.JSON(http.StatusOK, response.NewProductResponse(p))
}

// OverrideVendorHandler godoc
// @Summary 판매처 가격 수동 변경
// @Description 특정 제품의 판매처 가격과 재고 상태를 수동으로 변경합니다.
// @Description 변경 후 제품의 최저 시세가 다시 계산되며, 갱신된 제품 정보를 반환합니다.
// @Tags Product
// @Accept json
// @Produce json
// @Param productID path int true "제품 ID" example(1)
// @Param vendorID path int true "판매처 ID" example(2)
// @Param override body request.OverrideVendorRequest true "변경할 가격 정보"
// @Success 200 {object} response.ProductResponse "갱신된 제품 정보"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "제품 또는 판매처를 찾을 수 없음"
// @Router /api/v1/products/{productID}/vendors/{vendorID} [put]
func (h *Handler) OverrideVendorHandler(c echo.Context) error {
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		return httputil.NewBadRequestError("제품 ID는 정수여야 합니다")
	}
	vendorID, err := strconv.Atoi(c.Param("vendorID"))
	if err != nil {
		return httputil.NewBadRequestError("판매처 ID는 정수여야 합니다")
	}

	req := new(request.OverrideVendorRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError("요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요")
	}
	if err := validateRequest(req); err != nil {
		return httputil.NewBadRequestError(formatValidationError(err))
	}

	p, err := h.productService.OverrideVendorPrice(productID, vendorID, product.Override{
		Price:          req.Price,
		Availability:   product.Availability(req.Availability),
		ManualOverride: req.ManualOverride,
	})
	if err != nil {
		return toHTTPError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"product_id": productID,
		"vendor_id":  vendorID,
	}).Info("판매처 가격 수동 변경 완료")

	return c.JSON(http.StatusOK, response.NewProductResponse(p))
}

// ReloadHandler godoc
// @Summary 백엔드 재수집 트리거
// @Description 웹훅 백엔드의 재수집(re-scrape)을 트리거한 뒤, 전체 제품을 다시 수집합니다.
// @Tags Product
// @Produce json
// @Success 200 {object} response.SuccessResponse "성공"
// @Failure 502 {object} response.ErrorResponse "웹훅 백엔드 호출 실패"
// @Failure 503 {object} response.ErrorResponse "요청 처리 시간 초과"
// @Router /api/v1/reload [post]
func (h *Handler) ReloadHandler(c echo.Context) error {
	if err := h.productService.Reload(c.Request().Context()); err != nil {
		return toHTTPError(err)
	}

	h.log(c).Info("백엔드 재수집 및 전체 갱신 완료")

	return httputil.Success(c)
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}

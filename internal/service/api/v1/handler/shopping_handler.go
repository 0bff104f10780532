package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ShoppingResultsHandler godoc
// @Summary 지역별 쇼핑 검색 결과 조회
// @Description 모델 코드로 카타르와 영국의 쇼핑 검색 결과를 조회합니다.
// @Description 지역별로 QAR 환산 가격 기준 오름차순 상위 10건을 반환하며,
// @Description 한 지역의 수집이 실패하면 해당 지역은 빈 목록으로 반환됩니다.
// @Tags Shopping
// @Produce json
// @Param modelCode path string true "제품 모델 코드" example(CMK32GX5M2B6000C30)
// @Success 200 {object} shopping.Results "지역별 검색 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/products/{modelCode}/shopping-results [get]
func (h *Handler) ShoppingResultsHandler(c echo.Context) error {
	modelCode := c.Param("modelCode")

	results, err := h.shoppingService.FetchResults(c.Request().Context(), modelCode)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, results)
}

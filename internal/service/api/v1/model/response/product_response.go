// Package response v1 API의 응답 모델을 정의합니다.
package response

import (
	"github.com/darkkaiser/ramprice-server/internal/service/product"
)

// ProductResponse 제품 조회 응답
//
// 제품 레코드에 구매가 대비 절약액 정보를 덧붙여 반환합니다.
type ProductResponse struct {
	product.ProductRecord

	// Savings 구매가와 현재 최저 시세의 차액 정보
	Savings product.Savings `json:"savings"`
}

// NewProductResponse 제품 레코드로부터 절약액이 계산된 응답을 생성합니다.
func NewProductResponse(p product.ProductRecord) ProductResponse {
	return ProductResponse{
		ProductRecord: p,

		Savings: product.CalculateSavings(p.TotalPaidPrice, p.BestMarketPrice),
	}
}

// NewProductResponses 제품 레코드 목록을 응답 목록으로 변환합니다.
func NewProductResponses(products []product.ProductRecord) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, NewProductResponse(p))
	}
	return responses
}

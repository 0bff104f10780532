// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// HTTP 요청을 받아 검증하고, 비즈니스 로직을 호출한 후 적절한 HTTP 응답을
// 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/ramprice-server/internal/service/product"
	"github.com/darkkaiser/ramprice-server/internal/service/shopping"
)

// ProductService 제품 조회와 수집을 담당하는 서비스 인터페이스입니다.
type ProductService interface {
	// Products 저장소에 보관된 모든 제품의 목록을 반환합니다.
	Products() []product.ProductRecord

	// Product 모델 코드로 제품을 조회합니다.
	Product(modelCode string) (product.ProductRecord, error)

	// RefreshProduct 모델 하나를 웹훅 백엔드에서 다시 수집하여 저장소를 갱신합니다.
	RefreshProduct(ctx context.Context, modelCode string) (product.ProductRecord, error)

	// OverrideVendorPrice 판매처의 가격과 재고 상태를 수동으로 변경합니다.
	OverrideVendorPrice(productID, vendorID int, override product.Override) (product.ProductRecord, error)

	// Reload 백엔드 재수집을 트리거한 뒤 전체 제품을 다시 수집합니다.
	Reload(ctx context.Context) error
}

// ShoppingService 지역별 쇼핑 검색 결과 조회 서비스 인터페이스입니다.
type ShoppingService interface {
	// FetchResults 지역별 쇼핑 검색 결과를 조회하여 순위를 매깁니다.
	FetchResults(ctx context.Context, modelCode string) (shopping.Results, error)
}

// Handler v1 API 요청을 처리하고 비즈니스 로직을 연결하는 핸들러입니다.
type Handler struct {
	productService  ProductService
	shoppingService ShoppingService
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(productService ProductService, shoppingService ShoppingService) *Handler {
	if productService == nil {
		panic("ProductService는 필수입니다")
	}
	if shoppingService == nil {
		panic("ShoppingService는 필수입니다")
	}

	return &Handler{
		productService: productService,

		shoppingService: shoppingService,
	}
}

// Package product RAM 제품의 판매처별 시세를 수집하고 정규화하여 집계하는 핵심 도메인 패키지입니다.
//
// 판매처 웹훅 응답을 VendorRecord로 정규화하고, 모델별로 ProductRecord를 구성하며,
// 최저 시세 계산과 절약액 계산, 수동 가격 보정을 제공합니다.
package product

import (
	"time"
)

// Availability 판매처의 제품 판매 가능 여부입니다.
type Availability string

const (
	// AvailabilityInStock 판매중
	AvailabilityInStock Availability = "IN_STOCK"

	// AvailabilityOutOfStock 품절
	AvailabilityOutOfStock Availability = "OUT_OF_STOCK"

	// AvailabilityUnknown 판단 불가
	AvailabilityUnknown Availability = "UNKNOWN"
)

// VendorRecord 단일 판매처의 정규화된 시세 레코드입니다.
//
// Price는 표시 통화(QAR) 기준이며, 가격을 파싱할 수 없으면 nil입니다.
type VendorRecord struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Price          *float64     `json:"price"`
	Availability   Availability `json:"availability"`
	LastCheckedAt  string       `json:"last_checked_at"`
	ProductURL     string       `json:"product_url,omitempty"`
	ManualOverride bool         `json:"manual_override"`

	// 아마존 판매처에만 존재하는 부가 정보
	Rating           *float64 `json:"rating,omitempty"`
	ASIN             string   `json:"asin,omitempty"`
	OriginalPriceUSD *float64 `json:"original_price_usd,omitempty"`
}

// ProductRecord 모델 코드 하나에 대한 판매처별 시세 집계 결과입니다.
type ProductRecord struct {
	ID              int            `json:"id"`
	ModelCode       string         `json:"model_code"`
	Name            string         `json:"name"`
	TotalPaidPrice  *float64       `json:"total_paid_price"`
	BestMarketPrice *float64       `json:"best_market_price"`
	Vendors         []VendorRecord `json:"vendors"`

	// 제품 스펙(구매 이력 데이터에 없으면 빈 값)
	Capacity string `json:"capacity,omitempty"`
	Speed    string `json:"speed,omitempty"`
	Timings  string `json:"timings,omitempty"`
	Voltage  string `json:"voltage,omitempty"`
	Color    string `json:"color,omitempty"`

	LastUpdated time.Time `json:"last_updated"`
}

// Clone ProductRecord의 깊은 복사본을 반환합니다.
func (p ProductRecord) Clone() ProductRecord {
	clone := p
	clone.TotalPaidPrice = clonePtr(p.TotalPaidPrice)
	clone.BestMarketPrice = clonePtr(p.BestMarketPrice)
	clone.Vendors = make([]VendorRecord, len(p.Vendors))
	for i, v := range p.Vendors {
		clone.Vendors[i] = v.Clone()
	}
	return clone
}

// Clone VendorRecord의 깊은 복사본을 반환합니다.
func (v VendorRecord) Clone() VendorRecord {
	clone := v
	clone.Price = clonePtr(v.Price)
	clone.Rating = clonePtr(v.Rating)
	clone.OriginalPriceUSD = clonePtr(v.OriginalPriceUSD)
	return clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func ptrOf[T any](v T) *T {
	return &v
}

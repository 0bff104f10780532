// Package request v1 API의 요청 모델을 정의합니다.
package request

// OverrideVendorRequest 판매처 가격 수동 변경 요청
type OverrideVendorRequest struct {
	// Price 변경할 가격 (QAR). null이면 가격 없음으로 처리됩니다.
	Price *float64 `json:"price" validate:"omitempty,gte=0" korean:"가격" example:"1197"`

	// Availability 변경할 재고 상태
	Availability string `json:"availability" validate:"required,oneof=IN_STOCK OUT_OF_STOCK UNKNOWN" korean:"재고 상태" example:"IN_STOCK"`

	// ManualOverride 수동 변경 여부 표시
	ManualOverride bool `json:"manual_override" example:"true"`
}

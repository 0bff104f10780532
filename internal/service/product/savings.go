package product

import "math"

// Savings 구매 당시 가격과 현재 최저 시세의 차액 계산 결과입니다.
type Savings struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	IsSaving   bool    `json:"is_saving"`
}

// CalculateSavings 구매 당시 총액과 현재 최저 시세를 비교하여 절약액을 계산합니다.
//
// 두 값 중 하나라도 없거나 0이면 계산이 불가능한 것으로 보고 영(zero) 결과를 반환합니다.
// 차액의 절대값이 Amount가 되고, Percentage는 구매 총액 대비 비율을 소수점 첫째
// 자리로 반올림한 값입니다. IsSaving은 현재 시세가 구매 총액보다 낮을 때만 참입니다.
func CalculateSavings(totalPaid, bestMarket *float64) Savings {
	if totalPaid == nil || bestMarket == nil || *totalPaid == 0 || *bestMarket == 0 {
		return Savings{}
	}

	diff := *totalPaid - *bestMarket
	return Savings{
		Amount:     math.Abs(diff),
		Percentage: math.Round(math.Abs(diff / *totalPaid)*1000) / 10,
		IsSaving:   diff > 0,
	}
}

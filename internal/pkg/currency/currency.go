// Package currency 판매처별 통화를 표시 통화(QAR)로 환산하는 기능을 제공합니다.
//
// 환율은 고정 상수 테이블을 사용하며, 환산 결과는 소수점 둘째 자리로 반올림됩니다.
package currency

import "math"

// Display 모든 가격이 정규화되는 표시 통화 코드입니다.
const Display = "QAR"

// 지원하는 원본 통화 코드
const (
	USD = "USD"
	GBP = "GBP"
	THB = "THB"
)

// ratesToQAR 원본 통화별 QAR 환산 고정 환율 테이블입니다.
var ratesToQAR = map[string]float64{
	USD: 3.64,
	GBP: 4.72,
	THB: 0.11,
}

// Round2 소수점 둘째 자리로 반올림합니다.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Convert 금액을 지정된 통화 코드에서 QAR로 환산합니다.
//
// 환율 테이블에 없는 통화 코드는 이미 표시 통화인 것으로 간주하여 금액을 그대로 반환합니다.
func Convert(amount float64, code string) float64 {
	rate, ok := ratesToQAR[code]
	if !ok {
		return amount
	}
	return Round2(amount * rate)
}

// FromUSD USD 금액을 QAR로 환산합니다.
// 금액이 0이면 값 없음(ok=false)으로 취급합니다.
func FromUSD(amount float64) (converted float64, ok bool) {
	if amount == 0 {
		return 0, false
	}
	return Round2(amount * ratesToQAR[USD]), true
}

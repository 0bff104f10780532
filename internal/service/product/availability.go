package product

import "strings"

// ClassifyAvailability 판매처가 보고한 상태 문자열과 가격 문자열로부터 판매 가능 여부를 판정합니다.
//
// 판정 우선순위:
//  1. 상태와 가격이 모두 없으면 UNKNOWN
//  2. 상태 문자열에 "out of stock"이 포함되어 있으면(대소문자 무시) OUT_OF_STOCK
//  3. 가격 문자열이 있으면 IN_STOCK
//  4. 그 외에는 UNKNOWN
func ClassifyAvailability(status, pricing string) Availability {
	if status == "" && pricing == "" {
		return AvailabilityUnknown
	}
	if strings.Contains(strings.ToLower(status), "out of stock") {
		return AvailabilityOutOfStock
	}
	if pricing != "" {
		return AvailabilityInStock
	}
	return AvailabilityUnknown
}

package product

import "time"

// Override 판매처 시세 레코드에 적용할 수동 보정 값입니다.
type Override struct {
	Price          *float64
	Availability   Availability
	ManualOverride bool
}

// ApplyOverride 제품 목록의 스냅샷에 수동 가격 보정을 적용한 새 스냅샷을 반환합니다.
// 입력 스냅샷은 변경하지 않습니다.
//
// 지정한 제품과 판매처를 찾으면 가격, 판매 가능 여부, 수동 보정 플래그를
// 교체하고 확인 시각을 갱신한 뒤 제품의 최저 시세를 다시 계산합니다. 보정
// 후 판매중인 판매처가 하나도 없으면 기존 최저 시세를 유지합니다.
// 제품이나 판매처를 찾지 못하면 스냅샷을 그대로 복사하여 반환합니다(no-op).
func ApplyOverride(products []ProductRecord, productID, vendorID int, override Override, now time.Time) []ProductRecord {
	updated := make([]ProductRecord, len(products))
	for i, p := range products {
		updated[i] = p.Clone()

		if p.ID != productID {
			continue
		}

		overridden := false
		for j := range updated[i].Vendors {
			vendor := &updated[i].Vendors[j]
			if vendor.ID != vendorID {
				continue
			}
			vendor.Price = clonePtr(override.Price)
			vendor.Availability = override.Availability
			vendor.ManualOverride = override.ManualOverride
			vendor.LastCheckedAt = now.UTC().Format(time.RFC3339)
			overridden = true
			break
		}
		if !overridden {
			continue
		}

		if best := BestMarketPrice(updated[i].Vendors); best != nil {
			updated[i].BestMarketPrice = best
		}
	}
	return updated
}

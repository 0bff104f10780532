package product

import (
	"time"

	"github.com/darkkaiser/ramprice-server/internal/service/webhook"
)

// unknownProductName 구매 이력 데이터에서 제품명을 찾지 못했을 때 사용하는 대체 이름입니다.
const unknownProductName = "Unknown Product"

// Bundle 한 모델 코드에 대해 수집된 소스별 원시 레코드 묶음입니다.
//
// 소스별 수집이 실패한 경우 해당 항목은 빈 슬라이스로 두며, 집계는 남은
// 소스만으로 계속 진행됩니다.
type Bundle struct {
	Vendors map[SourceName][]webhook.Record
	Meta    []webhook.Record
}

// BuildProduct 소스별 원시 레코드 묶음을 정규화하여 모델 코드 하나의
// 집계 결과를 생성합니다.
//
// 판매처는 Sources에 정의된 순서대로 탐색하며, 유효한 레코드가 있는
// 판매처에만 1부터 순차적으로 ID가 부여됩니다.
func BuildProduct(modelCode string, bundle Bundle, now time.Time) ProductRecord {
	vendors := make([]VendorRecord, 0, len(Sources))
	for _, source := range Sources {
		vendor, found := buildVendor(source, bundle.Vendors[source.Name], modelCode, now)
		if !found {
			continue
		}
		vendor.ID = len(vendors) + 1
		vendors = append(vendors, vendor)
	}

	record := ProductRecord{
		ModelCode:       modelCode,
		Name:            unknownProductName,
		BestMarketPrice: BestMarketPrice(vendors),
		Vendors:         vendors,
		LastUpdated:     now.UTC(),
	}

	meta, found := findFirst(bundle.Meta, func(r webhook.Record) bool {
		return r.Model() == modelCode
	})
	if found {
		if name := meta.ItemName(); name != "" {
			record.Name = name
		}
		record.Capacity = meta.Capacity()
		record.Speed = meta.Speed()
		record.Timings = meta.Timings()
		record.Voltage = meta.Voltage()
		record.Color = meta.Color()

		if totalPrice, ok := meta.TotalPrice(); ok {
			record.TotalPaidPrice = ptrOf(totalPrice)
		}
	}

	// 구매 총액을 알 수 없으면 현재 최저 시세를 대신 사용한다.
	if record.TotalPaidPrice == nil {
		record.TotalPaidPrice = clonePtr(record.BestMarketPrice)
	}

	return record
}

// BestMarketPrice 판매중(IN_STOCK)이면서 가격이 있는 판매처들 중 최저 가격을
// 반환합니다. 해당하는 판매처가 하나도 없으면 nil을 반환합니다.
func BestMarketPrice(vendors []VendorRecord) *float64 {
	var best *float64
	for _, v := range vendors {
		if v.Price == nil || v.Availability != AvailabilityInStock {
			continue
		}
		if best == nil || *v.Price < *best {
			best = ptrOf(*v.Price)
		}
	}
	return best
}

package product

import (
	"time"

	"github.com/darkkaiser/ramprice-server/internal/pkg/currency"
	"github.com/darkkaiser/ramprice-server/internal/service/webhook"
)

// SourceName 판매처 데이터 소스 이름입니다.
type SourceName string

const (
	SourceAmazon   SourceName = "Amazon"
	SourceStore974 SourceName = "Store974"
	SourceGeekay   SourceName = "Geekay"
	SourceNewegg   SourceName = "Newegg"
)

// Source 판매처 데이터 소스 하나의 정의입니다.
type Source struct {
	Name     SourceName
	Endpoint string
}

// Sources 판매처 탐색 순서입니다. 판매처 ID는 이 순서대로 부여됩니다.
var Sources = []Source{
	{Name: SourceAmazon, Endpoint: webhook.EndpointAmazon},
	{Name: SourceStore974, Endpoint: webhook.EndpointStore974},
	{Name: SourceGeekay, Endpoint: webhook.EndpointGeekay},
	{Name: SourceNewegg, Endpoint: webhook.EndpointNewegg},
}

// buildVendor 소스의 원시 레코드 목록에서 모델 코드와 일치하는 첫번째 유효
// 레코드를 찾아 정규화된 VendorRecord를 생성합니다. 유효한 레코드가 하나도
// 없으면 해당 판매처는 집계 대상에서 제외됩니다(found=false).
//
// 아마존은 가격 문자열이 있는 레코드만 유효하며, 그 외 판매처는 가격이나
// 상태 중 하나라도 있으면 유효합니다.
func buildVendor(source Source, records []webhook.Record, modelCode string, now time.Time) (vendor VendorRecord, found bool) {
	if source.Name == SourceAmazon {
		rec, ok := findFirst(records, func(r webhook.Record) bool {
			return r.Model() == modelCode && r.Pricing() != ""
		})
		if !ok {
			return VendorRecord{}, false
		}
		return buildAmazonVendor(rec, now), true
	}

	rec, ok := findFirst(records, func(r webhook.Record) bool {
		return r.Model() == modelCode && (r.Pricing() != "" || r.Status() != "")
	})
	if !ok {
		return VendorRecord{}, false
	}

	vendor = VendorRecord{
		Name:         string(source.Name),
		Availability: ClassifyAvailability(rec.Status(), rec.Pricing()),
	}
	if price, parsed := ParsePrice(rec.Pricing()); parsed {
		vendor.Price = ptrOf(price)
	}
	applyRecordCommon(&vendor, rec, now)

	return vendor, true
}

// buildAmazonVendor 아마존 레코드를 정규화합니다. 가격은 USD로 보고되므로
// 표시 통화로 환산하며, 환산 전 원가는 OriginalPriceUSD에 보존합니다.
func buildAmazonVendor(rec webhook.Record, now time.Time) VendorRecord {
	vendor := VendorRecord{
		Name:         string(SourceAmazon),
		Availability: AvailabilityOutOfStock,
	}

	priceUSD, parsed := ParsePrice(rec.Pricing())
	if parsed {
		vendor.OriginalPriceUSD = ptrOf(priceUSD)
	}
	if converted, ok := currency.FromUSD(priceUSD); ok {
		vendor.Price = ptrOf(converted)
		vendor.Availability = AvailabilityInStock
	}

	applyRecordCommon(&vendor, rec, now)

	if rating, ok := rec.Rating(); ok {
		vendor.Rating = ptrOf(rating)
	}
	vendor.ASIN = rec.ASIN()

	return vendor
}

func applyRecordCommon(vendor *VendorRecord, rec webhook.Record, now time.Time) {
	vendor.LastCheckedAt = rec.CreatedAt()
	if vendor.LastCheckedAt == "" {
		vendor.LastCheckedAt = now.UTC().Format(time.RFC3339)
	}
	vendor.ProductURL = rec.URL()
}

func findFirst(records []webhook.Record, match func(webhook.Record) bool) (webhook.Record, bool) {
	for _, r := range records {
		if match(r) {
			return r, true
		}
	}
	return webhook.Record{}, false
}

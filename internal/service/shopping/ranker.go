// Package shopping Google Shopping 검색 결과를 지역별로 수집하여 표시 통화로
// 환산하고 가격순으로 순위를 매기는 기능을 제공합니다.
package shopping

import (
	"sort"

	"github.com/darkkaiser/ramprice-server/internal/pkg/currency"
	"github.com/darkkaiser/ramprice-server/internal/service/webhook"
)

// maxResults 지역별로 반환하는 검색 결과의 최대 개수입니다.
const maxResults = 10

// Region 검색 결과의 지역 구분입니다.
type Region string

const (
	RegionQatar Region = "Qatar"
	RegionUK    Region = "UK"
)

// Result 표시 통화로 환산된 검색 결과 하나입니다.
// 환산 전 가격과 통화는 추적을 위해 함께 보존됩니다.
type Result struct {
	ID            string  `json:"id"`
	Source        string  `json:"source"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Currency      string  `json:"currency"`
	Stock         string  `json:"stock"`
	URL           string  `json:"url"`
	Location      string  `json:"location"`
	CreatedAt     string  `json:"created_at"`
}

// Rank 검색 결과 원시 레코드를 표시 통화로 환산한 뒤 가격 오름차순으로
// 정렬하여 상위 결과만 반환합니다.
//
// 가격이 없거나 환산 결과가 0 이하인 레코드는 제외됩니다. 같은 가격의
// 레코드는 입력 순서를 유지합니다(안정 정렬).
func Rank(records []webhook.Record, region Region) []Result {
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		original, ok := rec.Price()
		if !ok {
			continue
		}

		converted := currency.Convert(original, rec.Currency())
		if converted <= 0 {
			continue
		}

		results = append(results, Result{
			ID:            rec.ID(),
			Source:        rec.Source(),
			Price:         converted,
			OriginalPrice: original,
			Currency:      rec.Currency(),
			Stock:         rec.Stock(),
			URL:           rec.URL(),
			Location:      string(region),
			CreatedAt:     rec.CreatedAt(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

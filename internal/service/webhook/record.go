package webhook

import (
	"bytes"
	"strconv"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// Record 웹훅 백엔드가 반환하는 JSON 배열의 원소 하나를 나타냅니다.
//
// 백엔드는 스프레드시트 기반의 느슨한 타입 데이터를 반환하므로,
// 동일한 필드가 행에 따라 문자열 또는 숫자로 내려올 수 있습니다.
// Record는 gjson을 통해 이러한 타입 불일치를 흡수합니다.
type Record struct {
	result gjson.Result
}

// ParseRecords 웹훅 응답 본문을 Record 목록으로 파싱합니다.
//
// 빈 본문과 배열이 아닌 JSON은 데이터 없음으로 간주하여 빈 목록을 반환합니다.
// 본문이 유효한 JSON이 아닌 경우에만 에러를 반환합니다.
func ParseRecords(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if !gjson.ValidBytes(trimmed) {
		preview := trimmed
		if len(preview) > 200 {
			preview = preview[:200]
		}
		return nil, apperrors.Newf(apperrors.ParsingFailed, "웹훅 응답이 유효한 JSON이 아닙니다: %q", string(preview))
	}

	parsed := gjson.ParseBytes(trimmed)
	if !parsed.IsArray() {
		return nil, nil
	}

	elements := parsed.Array()
	records := make([]Record, 0, len(elements))
	for _, e := range elements {
		records = append(records, Record{result: e})
	}
	return records, nil
}

// Str 지정된 필드의 문자열 값을 반환합니다. 필드가 없으면 빈 문자열을 반환합니다.
func (r Record) Str(key string) string {
	return r.result.Get(key).String()
}

// Exists 지정된 필드의 존재 여부를 반환합니다.
func (r Record) Exists(key string) bool {
	return r.result.Get(key).Exists()
}

// Raw 레코드의 원본 JSON 문자열을 반환합니다. (디버깅/로깅용)
func (r Record) Raw() string {
	return r.result.Raw
}

// -----------------------------------------------------------------------------
// 판매처 가격 레코드 필드
// -----------------------------------------------------------------------------

// Model 레코드가 속한 상품의 모델 코드를 반환합니다.
func (r Record) Model() string {
	return r.Str("model")
}

// Pricing 가격 필드를 문자열로 정규화하여 반환합니다.
//
// 백엔드는 가격을 문자열("QAR 1,299") 또는 숫자(1299)로 내려보내며,
// 값이 없거나 숫자 0인 경우는 가격 없음으로 취급하여 빈 문자열을 반환합니다.
func (r Record) Pricing() string {
	v := r.result.Get("pricing")
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		if v.Num == 0 {
			return ""
		}
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Status 재고 상태 필드를 반환합니다. (예: "In Stock", "Out of Stock")
func (r Record) Status() string {
	return r.Str("status")
}

// CreatedAt 레코드의 수집 시각 문자열을 반환합니다.
func (r Record) CreatedAt() string {
	return r.Str("created_at")
}

// URL 상품 페이지 URL을 반환합니다.
func (r Record) URL() string {
	return r.Str("url")
}

// Rating 평균 평점을 반환합니다. 값이 없거나 0이면 ok가 false입니다.
func (r Record) Rating() (rating float64, ok bool) {
	v := r.result.Get("avg_rating")
	if !v.Exists() || v.Float() == 0 {
		return 0, false
	}
	return v.Float(), true
}

// ASIN Amazon 상품 식별자를 반환합니다.
func (r Record) ASIN() string {
	return r.Str("asin")
}

// -----------------------------------------------------------------------------
// 상품 메타데이터 레코드 필드 (get-all-data)
// -----------------------------------------------------------------------------

// ItemName 상품의 표시 이름을 반환합니다.
func (r Record) ItemName() string {
	return r.Str("item_name")
}

// TotalPrice 구매 당시 지불한 총 금액을 반환합니다. 값이 없거나 0이면 ok가 false입니다.
func (r Record) TotalPrice() (price float64, ok bool) {
	v := r.result.Get("total_price")
	if !v.Exists() || v.Float() == 0 {
		return 0, false
	}
	return v.Float(), true
}

// Capacity 메모리 용량 스펙 문자열을 반환합니다.
func (r Record) Capacity() string {
	return r.Str("capacity")
}

// Speed 메모리 동작 속도 스펙 문자열을 반환합니다.
func (r Record) Speed() string {
	return r.Str("speed")
}

// Timings 메모리 타이밍 스펙 문자열을 반환합니다.
func (r Record) Timings() string {
	return r.Str("timings")
}

// Voltage 동작 전압 스펙 문자열을 반환합니다.
func (r Record) Voltage() string {
	return r.Str("voltage")
}

// Color 상품 색상을 반환합니다.
func (r Record) Color() string {
	return r.Str("color")
}

// -----------------------------------------------------------------------------
// 쇼핑 검색 결과 레코드 필드 (google-search)
// -----------------------------------------------------------------------------

// ID 검색 결과의 식별자를 문자열로 반환합니다.
func (r Record) ID() string {
	return r.Str("id")
}

// Source 검색 결과를 제공한 쇼핑몰 이름을 반환합니다.
func (r Record) Source() string {
	return r.Str("source")
}

// Price 검색 결과의 가격을 반환합니다. 필드가 없으면 ok가 false입니다.
func (r Record) Price() (price float64, ok bool) {
	v := r.result.Get("price")
	if !v.Exists() {
		return 0, false
	}
	return v.Float(), true
}

// Currency 가격의 통화 코드를 반환합니다. (예: "QAR", "USD", "GBP")
func (r Record) Currency() string {
	return r.Str("currency")
}

// Stock 재고 상태 문자열을 반환합니다.
func (r Record) Stock() string {
	return r.Str("stock")
}

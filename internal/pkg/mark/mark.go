// Package mark 애플리케이션 전반에서 사용되는 이모지 상수를 중앙 관리하는 패키지입니다.
package mark

import (
	"fmt"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
)

// Mark 이모지 상수를 위한 타입입니다.
type Mark string

const (
	// 신규
	New Mark = "🆕"

	// 변경
	Modified Mark = "🔁"

	// 품절/종료
	Unavailable Mark = "🚫"

	// 최저가
	BestPrice Mark = "🔥"

	// 가격 하락
	PriceDrop Mark = "📉"

	// 가격 상승
	PriceRise Mark = "📈"

	// 긴급/오류
	Alert Mark = "🚨"
)

// all 정의된 모든 마크의 목록입니다. 새로운 마크 추가 시 여기에 등록해야 합니다.
var all = []Mark{New, Modified, Unavailable, BestPrice, PriceDrop, PriceRise, Alert}

// Values 정의된 모든 마크의 복사본 슬라이스를 반환합니다.
func Values() []Mark {
	values := make([]Mark, len(all))
	copy(values, all)
	return values
}

// Parse 문자열을 Mark로 파싱합니다. 정의되지 않은 값이면 에러를 반환합니다.
func Parse(s string) (Mark, error) {
	m := Mark(s)
	if !m.IsValid() {
		return "", apperrors.New(apperrors.InvalidInput, fmt.Sprintf("정의되지 않은 마크입니다: %q", s))
	}
	return m, nil
}

// IsValid 정의된 마크인지의 여부를 반환합니다.
func (m Mark) IsValid() bool {
	for _, v := range all {
		if v == m {
			return true
		}
	}
	return false
}

// WithSpace 마크(이모지) 앞에 구분용 공백을 추가하여 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}

// String 마크의 순수 이모지 값을 문자열로 반환합니다.
func (m Mark) String() string {
	return string(m)
}

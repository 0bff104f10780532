package product

import (
	"strconv"
	"strings"
)

// ParsePrice 통화 기호, 천 단위 구분자 등이 섞인 가격 문자열에서 숫자 값을 추출합니다.
//
// 숫자와 소수점 이외의 문자를 모두 제거한 뒤, 남은 문자열의 가장 긴 유효한
// 접두어를 숫자로 해석합니다. ("1,999.50 USD" -> 1999.5, "$1.2.3" -> 1.2)
// 유효한 숫자를 찾지 못하면 값 없음(ok=false)을 반환합니다.
func ParsePrice(pricing string) (price float64, ok bool) {
	var sb strings.Builder
	for _, r := range pricing {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}

	numeric := sb.String()
	if numeric == "" {
		return 0, false
	}

	// 두번째 소수점이 나오기 전까지를 유효한 접두어로 취급한다.
	end, dotSeen, digitSeen := 0, false, false
	for i, r := range numeric {
		if r == '.' {
			if dotSeen {
				break
			}
			dotSeen = true
		} else {
			digitSeen = true
		}
		end = i + 1
	}
	if !digitSeen {
		return 0, false
	}

	prefix := strings.TrimSuffix(numeric[:end], ".")
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

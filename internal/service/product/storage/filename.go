package storage

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// filenameReplacer 파일명 생성 시 파일 시스템에서 문제를 일으킬 수 있는 특수문자를 안전한 문자로 치환합니다.
//
// 경로 구분자와 ".."은 경로 이탈(Path Traversal)을 막기 위해, 나머지는 Windows
// 예약 문자와의 호환성을 위해 치환합니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// generateFilename 모델 코드로부터 시스템에서 안전하게 사용할 수 있는 고유한 스냅샷 파일명을 생성합니다.
//
// 사람이 읽기 쉽도록 모델 코드를 Kebab-Case로 정제한 이름을 사용하고,
// 정제 과정에서 서로 다른 모델 코드가 같은 이름이 되거나 대소문자를 구분하지
// 않는 파일 시스템에서 충돌하는 것을 막기 위해 원본 모델 코드의 64비트
// 해시값을 덧붙입니다.
//
// 생성 패턴: "product-{정제된모델코드}-{16자리해시}.json"
func generateFilename(modelCode string) string {
	name := sanitizeName(modelCode)
	name = truncateByBytes(name, 80)

	hasher := fnv.New64a()
	_, _ = fmt.Fprintf(hasher, "%d:%s", len(modelCode), modelCode)

	return fmt.Sprintf("product-%s-%016x.json", name, hasher.Sum64())
}

// sanitizeName 파일명으로 안전하게 사용할 수 있도록 문자열을 정제합니다.
func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	// Kebab 변환 후에도 남아있을 수 있는 제어 문자를 안전한 문자로 치환합니다.
	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes 문자열을 UTF-8 바이트 길이 기준으로 안전하게 자릅니다.
//
// 파일 시스템은 문자 개수가 아닌 바이트 길이로 파일명 제한을 적용하므로,
// Rune 단위로 순회하며 마지막 문자를 온전히 포함할 수 있는 지점까지만 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	var totalBytes int
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])

		if totalBytes+size > limit {
			return s[:totalBytes]
		}

		totalBytes += size
		i += size
	}

	return s[:totalBytes]
}

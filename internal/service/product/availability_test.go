package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   string
		pricing  string
		expected Availability
	}{
		{
			name:     "상태와 가격이 모두 없으면 UNKNOWN",
			status:   "",
			pricing:  "",
			expected: AvailabilityUnknown,
		},
		{
			name:     "품절 상태는 가격이 있어도 OUT_OF_STOCK",
			status:   "Out of Stock",
			pricing:  "$50",
			expected: AvailabilityOutOfStock,
		},
		{
			name:     "품절 판정은 대소문자를 무시",
			status:   "OUT OF STOCK",
			pricing:  "",
			expected: AvailabilityOutOfStock,
		},
		{
			name:     "문장 중간의 품절 문구도 감지",
			status:   "Currently out of stock - check back soon",
			pricing:  "",
			expected: AvailabilityOutOfStock,
		},
		{
			name:     "가격이 있으면 IN_STOCK",
			status:   "",
			pricing:  "QAR 1,299",
			expected: AvailabilityInStock,
		},
		{
			name:     "판매중 상태와 가격이 함께 있으면 IN_STOCK",
			status:   "In Stock",
			pricing:  "650",
			expected: AvailabilityInStock,
		},
		{
			name:     "상태만 있고 품절 문구가 아니면 UNKNOWN",
			status:   "In Stock",
			pricing:  "",
			expected: AvailabilityUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ClassifyAvailability(tt.status, tt.pricing))
		})
	}
}

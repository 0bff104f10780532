package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSavings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		totalPaid  *float64
		bestMarket *float64
		expected   Savings
	}{
		{
			name:       "시세가 구매가보다 낮으면 절약",
			totalPaid:  ptrOf(1999.0),
			bestMarket: ptrOf(1197.0),
			expected:   Savings{Amount: 802, Percentage: 40.1, IsSaving: true},
		},
		{
			name:       "시세가 구매가보다 높으면 손해",
			totalPaid:  ptrOf(650.0),
			bestMarket: ptrOf(699.0),
			expected:   Savings{Amount: 49, Percentage: 7.5, IsSaving: false},
		},
		{
			name:       "구매가가 0이면 계산 불가",
			totalPaid:  ptrOf(0.0),
			bestMarket: ptrOf(100.0),
			expected:   Savings{},
		},
		{
			name:       "시세가 0이면 계산 불가",
			totalPaid:  ptrOf(100.0),
			bestMarket: ptrOf(0.0),
			expected:   Savings{},
		},
		{
			name:       "구매가가 없으면 계산 불가",
			totalPaid:  nil,
			bestMarket: ptrOf(100.0),
			expected:   Savings{},
		},
		{
			name:       "시세가 없으면 계산 불가",
			totalPaid:  ptrOf(100.0),
			bestMarket: nil,
			expected:   Savings{},
		},
		{
			name:       "같은 가격이면 절약 아님",
			totalPaid:  ptrOf(500.0),
			bestMarket: ptrOf(500.0),
			expected:   Savings{Amount: 0, Percentage: 0, IsSaving: false},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			savings := CalculateSavings(tt.totalPaid, tt.bestMarket)
			assert.InDelta(t, tt.expected.Amount, savings.Amount, 0.0001)
			assert.InDelta(t, tt.expected.Percentage, savings.Percentage, 0.0001)
			assert.Equal(t, tt.expected.IsSaving, savings.IsSaving)
		})
	}
}

package shopping

import (
	"fmt"
	"testing"

	"github.com/darkkaiser/ramprice-server/internal/service/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseRecords(t *testing.T, body string) []webhook.Record {
	t.Helper()

	records, err := webhook.ParseRecords([]byte(body))
	require.NoError(t, err)

	return records
}

func TestRank(t *testing.T) {
	t.Parallel()

	t.Run("통화 환산 후 가격 오름차순 정렬", func(t *testing.T) {
		t.Parallel()

		records := mustParseRecords(t, `[
			{"id": 1, "source": "uk-shop", "price": 100, "currency": "GBP", "stock": "In Stock", "url": "https://uk.example.com"},
			{"id": 2, "source": "qa-shop", "price": 50, "currency": "QAR"},
			{"id": 3, "source": "bad-shop", "price": -5, "currency": "QAR"}
		]`)

		results := Rank(records, RegionQatar)

		require.Len(t, results, 2)
		assert.InDelta(t, 50, results[0].Price, 0.001)
		assert.InDelta(t, 472.00, results[1].Price, 0.001)

		// 환산 전 가격과 통화가 보존된다.
		assert.InDelta(t, 100, results[1].OriginalPrice, 0.001)
		assert.Equal(t, "GBP", results[1].Currency)
		assert.Equal(t, "uk-shop", results[1].Source)
		assert.Equal(t, "Qatar", results[1].Location)
	})

	t.Run("USD와 THB 환산", func(t *testing.T) {
		t.Parallel()

		records := mustParseRecords(t, `[
			{"id": "a", "source": "us-shop", "price": 100, "currency": "USD"},
			{"id": "b", "source": "th-shop", "price": 1000, "currency": "THB"}
		]`)

		results := Rank(records, RegionUK)

		require.Len(t, results, 2)
		assert.InDelta(t, 110, results[0].Price, 0.001)
		assert.InDelta(t, 364, results[1].Price, 0.001)
		assert.Equal(t, "UK", results[0].Location)
	})

	t.Run("가격이 없거나 0이면 제외", func(t *testing.T) {
		t.Parallel()

		records := mustParseRecords(t, `[
			{"id": 1, "source": "no-price", "currency": "QAR"},
			{"id": 2, "source": "zero-price", "price": 0, "currency": "USD"},
			{"id": 3, "source": "valid", "price": 75, "currency": "QAR"}
		]`)

		results := Rank(records, RegionQatar)

		require.Len(t, results, 1)
		assert.Equal(t, "valid", results[0].Source)
	})

	t.Run("미지원 통화는 환산 없이 그대로 사용", func(t *testing.T) {
		t.Parallel()

		records := mustParseRecords(t, `[
			{"id": 1, "source": "eu-shop", "price": 99.5, "currency": "EUR"}
		]`)

		results := Rank(records, RegionQatar)

		require.Len(t, results, 1)
		assert.InDelta(t, 99.5, results[0].Price, 0.001)
	})

	t.Run("상위 10개만 반환", func(t *testing.T) {
		t.Parallel()

		body := "["
		for i := range 15 {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"id": %d, "source": "shop-%d", "price": %d, "currency": "QAR"}`, i, i, 1000-i*10)
		}
		body += "]"

		results := Rank(mustParseRecords(t, body), RegionQatar)

		require.Len(t, results, 10)
		// 가장 싼 결과부터 반환된다.
		assert.InDelta(t, 860, results[0].Price, 0.001)
	})

	t.Run("같은 가격은 입력 순서 유지", func(t *testing.T) {
		t.Parallel()

		records := mustParseRecords(t, `[
			{"id": 1, "source": "first", "price": 100, "currency": "QAR"},
			{"id": 2, "source": "second", "price": 100, "currency": "QAR"}
		]`)

		results := Rank(records, RegionQatar)

		require.Len(t, results, 2)
		assert.Equal(t, "first", results[0].Source)
		assert.Equal(t, "second", results[1].Source)
	})

	t.Run("빈 입력", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Rank(nil, RegionQatar))
	})
}

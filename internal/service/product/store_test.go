package product

import (
	"testing"
	"time"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ListReturnsCopies(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ReplaceAll(overrideFixture())

	listed := store.List()
	require.Len(t, listed, 2)

	// 반환된 복사본을 수정해도 저장소 상태에 영향을 주지 않는다.
	*listed[0].Vendors[0].Price = 1
	listed[0].Name = "mutated"

	again := store.List()
	assert.InDelta(t, 1201.16, *again[0].Vendors[0].Price, 0.001)
	assert.Equal(t, "Corsair Vengeance 32GB", again[0].Name)
}

func TestStore_GetByModelCode(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ReplaceAll(overrideFixture())

	t.Run("존재하는 모델", func(t *testing.T) {
		t.Parallel()

		record, err := store.GetByModelCode("F5-6000J3038F16G")
		require.NoError(t, err)
		assert.Equal(t, 2, record.ID)
	})

	t.Run("존재하지 않는 모델", func(t *testing.T) {
		t.Parallel()

		_, err := store.GetByModelCode("NO-SUCH-MODEL")
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
	})
}

func TestStore_GetByID(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ReplaceAll(overrideFixture())

	record, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "CMK32GX5M2B6000C30", record.ModelCode)

	_, err = store.GetByID(999)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestStore_UpsertByModelCode(t *testing.T) {
	t.Parallel()

	t.Run("기존 제품은 ID를 유지하며 교체", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		store.ReplaceAll(overrideFixture())

		updated := store.UpsertByModelCode(ProductRecord{
			ModelCode: "F5-6000J3038F16G",
			Name:      "refreshed",
		})
		assert.Equal(t, 2, updated.ID)

		record, err := store.GetByModelCode("F5-6000J3038F16G")
		require.NoError(t, err)
		assert.Equal(t, "refreshed", record.Name)
		assert.Len(t, store.List(), 2)
	})

	t.Run("새 제품은 새 ID를 부여받아 추가", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		store.ReplaceAll(overrideFixture())

		added := store.UpsertByModelCode(ProductRecord{
			ModelCode: "KF560C36-16",
			Name:      "Kingston Fury",
		})
		assert.Equal(t, 3, added.ID)
		assert.Len(t, store.List(), 3)
	})
}

func TestStore_ApplyOverride(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

	t.Run("보정 적용 후 보정된 제품 반환", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		store.ReplaceAll(overrideFixture())

		record, err := store.ApplyOverride(1, 2, Override{
			Price:          ptrOf(1100.0),
			Availability:   AvailabilityInStock,
			ManualOverride: true,
		}, now)
		require.NoError(t, err)

		require.NotNil(t, record.BestMarketPrice)
		assert.InDelta(t, 1100, *record.BestMarketPrice, 0.001)

		// 저장소 상태에도 반영되어 있어야 한다.
		stored, err := store.GetByID(1)
		require.NoError(t, err)
		assert.True(t, stored.Vendors[1].ManualOverride)
	})

	t.Run("존재하지 않는 제품이면 NotFound", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		store.ReplaceAll(overrideFixture())

		_, err := store.ApplyOverride(999, 1, Override{Availability: AvailabilityInStock}, now)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
	})

	t.Run("존재하지 않는 판매처면 NotFound이고 상태 불변", func(t *testing.T) {
		t.Parallel()

		store := NewStore()
		fixture := overrideFixture()
		store.ReplaceAll(fixture)

		_, err := store.ApplyOverride(1, 999, Override{Availability: AvailabilityInStock}, now)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
		assert.Equal(t, fixture, store.List())
	})
}

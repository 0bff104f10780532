package product

import (
	"sync"
	"time"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
)

// Store 집계된 제품 목록의 메모리 스냅샷 저장소입니다.
//
// 모든 읽기는 깊은 복사본을 반환하므로 호출자가 반환값을 수정해도 저장소
// 상태에 영향을 주지 않습니다. 쓰기는 스냅샷 전체를 원자적으로 교체합니다.
type Store struct {
	mu       sync.RWMutex
	products []ProductRecord
}

// NewStore 비어있는 Store를 생성합니다.
func NewStore() *Store {
	return &Store{}
}

// List 전체 제품 목록의 복사본을 반환합니다.
func (s *Store) List() []ProductRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProducts(s.products)
}

// GetByModelCode 모델 코드로 제품을 조회합니다.
func (s *Store) GetByModelCode(modelCode string) (ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ModelCode == modelCode {
			return p.Clone(), nil
		}
	}
	return ProductRecord{}, apperrors.Newf(apperrors.NotFound, "제품을 찾을 수 없습니다(모델코드: %s)", modelCode)
}

// GetByID 제품 ID로 제품을 조회합니다.
func (s *Store) GetByID(productID int) (ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == productID {
			return p.Clone(), nil
		}
	}
	return ProductRecord{}, apperrors.Newf(apperrors.NotFound, "제품을 찾을 수 없습니다(ID: %d)", productID)
}

// ReplaceAll 전체 제품 목록을 새 스냅샷으로 교체합니다.
func (s *Store) ReplaceAll(products []ProductRecord) {
	snapshot := cloneProducts(products)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = snapshot
}

// UpsertByModelCode 모델 코드가 일치하는 제품을 교체합니다. 기존 제품이 있으면
// 그 ID를 유지하고, 없으면 목록 끝에 새 ID를 부여하여 추가합니다.
func (s *Store) UpsertByModelCode(record ProductRecord) ProductRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ModelCode == record.ModelCode {
			record.ID = p.ID
			s.products[i] = record.Clone()
			return record
		}
	}

	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	record.ID = maxID + 1
	s.products = append(s.products, record.Clone())

	return record
}

// ApplyOverride 수동 가격 보정을 스냅샷에 원자적으로 적용하고, 보정된 제품을
// 반환합니다. 제품이나 판매처를 찾지 못하면 NotFound 오류를 반환하며 저장소
// 상태는 변경되지 않습니다.
func (s *Store) ApplyOverride(productID, vendorID int, override Override, now time.Time) (ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.findVendorLocked(productID, vendorID); err != nil {
		return ProductRecord{}, err
	}

	s.products = ApplyOverride(s.products, productID, vendorID, override, now)

	for _, p := range s.products {
		if p.ID == productID {
			return p.Clone(), nil
		}
	}
	return ProductRecord{}, apperrors.Newf(apperrors.NotFound, "제품을 찾을 수 없습니다(ID: %d)", productID)
}

func (s *Store) findVendorLocked(productID, vendorID int) error {
	for _, p := range s.products {
		if p.ID != productID {
			continue
		}
		for _, v := range p.Vendors {
			if v.ID == vendorID {
				return nil
			}
		}
		return apperrors.Newf(apperrors.NotFound, "판매처를 찾을 수 없습니다(제품 ID: %d, 판매처 ID: %d)", productID, vendorID)
	}
	return apperrors.Newf(apperrors.NotFound, "제품을 찾을 수 없습니다(ID: %d)", productID)
}

func cloneProducts(products []ProductRecord) []ProductRecord {
	cloned := make([]ProductRecord, len(products))
	for i, p := range products {
		cloned[i] = p.Clone()
	}
	return cloned
}

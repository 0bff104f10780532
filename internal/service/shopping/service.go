package shopping

import (
	"context"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/darkkaiser/ramprice-server/internal/service/webhook"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
)

// component Shopping 서비스의 로깅용 컴포넌트 이름
const component = "shopping.service"

// Fetcher 웹훅 서버로부터 검색 결과 원시 레코드를 수집하는 인터페이스입니다.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint, model string) ([]webhook.Record, error)
}

// Results 지역별로 순위가 매겨진 검색 결과 묶음입니다.
type Results struct {
	Qatar []Result `json:"qatar"`
	UK    []Result `json:"uk"`
}

// Service 모델 코드 하나에 대한 Google Shopping 검색 결과를 지역별로 수집하는 서비스입니다.
type Service struct {
	fetcher Fetcher
}

// NewService 새로운 Shopping 서비스 인스턴스를 생성합니다.
func NewService(fetcher Fetcher) *Service {
	if fetcher == nil {
		panic("Fetcher는 필수입니다")
	}

	return &Service{
		fetcher: fetcher,
	}
}

// FetchResults 카타르와 영국 검색 엔드포인트를 병렬로 호출하여 지역별 순위
// 결과를 반환합니다.
//
// 개별 지역의 수집 실패는 경고 로그만 남기고 빈 결과로 취급하여, 남은
// 지역의 결과는 정상적으로 반환됩니다.
func (s *Service) FetchResults(ctx context.Context, modelCode string) (Results, error) {
	if strings.TrimSpace(modelCode) == "" {
		return Results{}, apperrors.New(apperrors.InvalidInput, "모델 코드는 비워둘 수 없습니다")
	}

	var (
		wg           sync.WaitGroup
		qatarRecords []webhook.Record
		ukRecords    []webhook.Record
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		qatarRecords = s.fetchRecords(ctx, webhook.EndpointQatarShoppingSearch, modelCode)
	}()
	go func() {
		defer wg.Done()
		ukRecords = s.fetchRecords(ctx, webhook.EndpointUKShoppingSearch, modelCode)
	}()
	wg.Wait()

	return Results{
		Qatar: Rank(qatarRecords, RegionQatar),
		UK:    Rank(ukRecords, RegionUK),
	}, nil
}

// fetchRecords 엔드포인트 하나를 호출합니다. 수집 실패는 빈 결과로 취급합니다(fail-soft).
func (s *Service) fetchRecords(ctx context.Context, endpoint, modelCode string) []webhook.Record {
	records, err := s.fetcher.Fetch(ctx, endpoint, modelCode)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"endpoint":   endpoint,
			"model_code": modelCode,
			"error":      err,
		}).Warn("검색 결과 수집 실패: 해당 지역은 빈 결과로 처리됩니다")

		return nil
	}

	return records
}

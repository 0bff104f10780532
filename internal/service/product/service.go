package product

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/ramprice-server/internal/config"
	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
	"github.com/darkkaiser/ramprice-server/internal/service/contract"
	"github.com/darkkaiser/ramprice-server/internal/service/product/storage"
	"github.com/darkkaiser/ramprice-server/internal/service/webhook"
	"github.com/darkkaiser/ramprice-server/pkg/cronx"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Product 서비스의 로깅용 컴포넌트 이름
const component = "product.service"

// maxConcurrentModelFetches 전체 수집 시 동시에 처리할 모델 수의 상한입니다.
// 웹훅 서버에 과도한 부하를 주지 않도록 제한합니다.
const maxConcurrentModelFetches = 4

// refreshTimeout 전체 수집 작업 1회의 최대 허용 시간입니다.
const refreshTimeout = 10 * time.Minute

// Fetcher 웹훅 서버로부터 원시 레코드를 수집하는 인터페이스입니다.
// 테스트에서 webhook.Client를 대체할 수 있도록 분리되어 있습니다.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint, model string) ([]webhook.Record, error)
	TriggerReload(ctx context.Context) error
}

var _ Fetcher = (*webhook.Client)(nil)

// Service 판매처 시세를 주기적으로 수집하여 집계 스냅샷을 관리하는 서비스입니다.
//
// 수집 결과는 메모리 저장소(Store)에 보관되며, 파일 스냅샷 저장소에 함께
// 기록되어 서버 재시작 시 마지막 수집 결과가 복원됩니다.
type Service struct {
	cfg *config.AppConfig

	fetcher   Fetcher
	store     *Store
	snapshots storage.SnapshotStore

	// notificationSender 최저 시세 변동 알림 전송을 담당하는 인터페이스입니다. nil이면 알림을 보내지 않습니다.
	notificationSender contract.NotificationSender

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Product 서비스 인스턴스를 생성합니다.
func NewService(cfg *config.AppConfig, fetcher Fetcher, snapshots storage.SnapshotStore, notificationSender contract.NotificationSender) *Service {
	if cfg == nil {
		panic("AppConfig는 필수입니다")
	}
	if fetcher == nil {
		panic("Fetcher는 필수입니다")
	}

	return &Service{
		cfg: cfg,

		fetcher:   fetcher,
		store:     NewStore(),
		snapshots: snapshots,

		notificationSender: notificationSender,
	}
}

// Store 수집 결과가 보관되는 메모리 저장소를 반환합니다.
func (s *Service) Store() *Store {
	return s.store
}

// Products 저장소에 보관된 모든 제품의 목록을 반환합니다.
func (s *Service) Products() []ProductRecord {
	return s.store.List()
}

// Product 모델 코드로 제품을 조회합니다.
func (s *Service) Product(modelCode string) (ProductRecord, error) {
	return s.store.GetByModelCode(modelCode)
}

// Run 서비스를 시작합니다.
//
// 파일 스냅샷에서 마지막 수집 결과를 복원한 뒤 초기 수집을 백그라운드로
// 수행하고, 설정에 따라 주기 수집 스케줄을 등록합니다. serviceStopCtx가
// 취소되면 스케줄러를 중지하고 serviceStopWG에 종료 완료를 알립니다.
func (s *Service) Run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Product 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Product 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. 파일 스냅샷에서 마지막 수집 결과 복원
	s.restoreSnapshots()

	// 2. 주기 수집 스케줄 등록
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다음 수집에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 수집이 끝나지 않았으면 다음 수집을 건너뜀
	if s.cfg.Scheduler.Runnable {
		s.cron = cron.New(
			cron.WithParser(cronx.StandardParser()),
			cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.WithChain(
				cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
				cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
			),
		)

		// 수집의 생명주기를 서비스 종료 시그널과 분리한다. Graceful Shutdown 시
		// cron.Stop()이 실행 중인 수집의 완료를 대기하므로, 수집 도중 컨텍스트
		// 취소로 인한 강제 중단을 방지한다.
		_, err := s.cron.AddFunc(s.cfg.Scheduler.TimeSpec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()

			if err := s.RefreshAll(ctx); err != nil {
				s.logAndNotifyError("주기 수집 실패: 시세 수집 처리 중 오류가 발생했습니다", err)
			}
		})
		if err != nil {
			s.cron = nil
			serviceStopWG.Done()
			return apperrors.Wrap(err, apperrors.System, "주기 수집 스케줄 등록에 실패했습니다")
		}

		s.cron.Start()
	}

	s.running = true

	// 3. 초기 수집 (백그라운드)
	// 서버 시작을 블로킹하지 않도록 비동기로 수행하며, 실패하더라도 복원된
	// 스냅샷으로 서비스는 계속 동작한다.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := s.RefreshAll(ctx); err != nil {
			s.logAndNotifyError("초기 수집 실패: 시세 수집 처리 중 오류가 발생했습니다", err)
		}
	}()

	applog.WithComponentAndFields(component, applog.Fields{
		"scheduler_runnable": s.cfg.Scheduler.Runnable,
		"time_spec":          s.cfg.Scheduler.TimeSpec,
	}).Info("서비스 시작 완료: Product 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기 (고루틴)
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 서비스를 안전하게 중지합니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Product 서비스 중지 시그널을 수신했습니다")

	// Cron 엔진 중지 및 실행 중인 수집 완료 대기
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Product 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// FetchProduct 모델 코드 하나에 대해 모든 판매처 엔드포인트를 병렬로 수집하고
// 집계 결과를 생성합니다.
//
// 개별 판매처 수집 실패는 경고 로그만 남기고 빈 결과로 취급하여, 남은
// 판매처만으로 집계를 계속 진행합니다.
func (s *Service) FetchProduct(ctx context.Context, modelCode string) (ProductRecord, error) {
	if strings.TrimSpace(modelCode) == "" {
		return ProductRecord{}, apperrors.New(apperrors.InvalidInput, "모델 코드는 비워둘 수 없습니다")
	}

	bundle := s.fetchBundle(ctx, modelCode)
	return BuildProduct(modelCode, bundle, time.Now()), nil
}

// fetchBundle 판매처 엔드포인트와 구매 이력 엔드포인트를 병렬로 호출하여
// 모델 하나에 대한 원시 레코드 묶음을 수집합니다.
func (s *Service) fetchBundle(ctx context.Context, modelCode string) Bundle {
	bundle := Bundle{
		Vendors: make(map[SourceName][]webhook.Record, len(Sources)),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, source := range Sources {
		// 클로저 캡처 문제 방지를 위해 로컬 변수에 재할당
		source := source

		wg.Add(1)
		go func() {
			defer wg.Done()

			records := s.fetchRecords(ctx, source.Endpoint, modelCode)

			mu.Lock()
			bundle.Vendors[source.Name] = records
			mu.Unlock()
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		records := s.fetchRecords(ctx, webhook.EndpointAllData, modelCode)

		mu.Lock()
		bundle.Meta = records
		mu.Unlock()
	}()

	wg.Wait()

	return bundle
}

// fetchRecords 엔드포인트 하나를 호출합니다. 수집 실패는 빈 결과로 취급합니다(fail-soft).
func (s *Service) fetchRecords(ctx context.Context, endpoint, modelCode string) []webhook.Record {
	records, err := s.fetcher.Fetch(ctx, endpoint, modelCode)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"endpoint":   endpoint,
			"model_code": modelCode,
			"error":      err,
		}).Warn("판매처 수집 실패: 해당 소스는 이번 집계에서 제외됩니다")

		return nil
	}

	return records
}

// RefreshAll 구매 이력 목록에서 전체 모델 코드를 추출한 뒤 모델별 시세를
// 수집하여 메모리 저장소를 새 스냅샷으로 교체합니다.
//
// 구매 이력 목록 수집에 실패하면 기존 스냅샷을 유지한 채 에러를 반환합니다.
func (s *Service) RefreshAll(ctx context.Context) error {
	allData, err := s.fetcher.Fetch(ctx, webhook.EndpointAllData, "")
	if err != nil {
		return apperrors.Wrap(err, apperrors.FetchFailed, "구매 이력 목록 수집에 실패했습니다")
	}

	modelCodes := uniqueModelCodes(allData)
	if len(modelCodes) == 0 {
		applog.WithComponent(component).Warn("전체 수집 중단: 구매 이력 목록에서 모델 코드를 찾지 못했습니다")
		return nil
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"model_count": len(modelCodes),
	}).Info("전체 수집 시작: 모델별 시세 수집을 진행합니다")

	products := s.fetchProducts(ctx, modelCodes)

	previous := s.store.List()
	s.store.ReplaceAll(products)
	s.persistSnapshots(products)
	s.notifyBestPriceChanges(previous, products)

	applog.WithComponentAndFields(component, applog.Fields{
		"product_count": len(products),
	}).Info("전체 수집 완료: 스냅샷이 갱신되었습니다")

	return nil
}

// fetchProducts 모델별 시세를 제한된 동시성으로 수집합니다.
// 제품 ID는 모델 코드가 구매 이력 목록에 처음 등장한 순서대로 부여됩니다.
func (s *Service) fetchProducts(ctx context.Context, modelCodes []string) []ProductRecord {
	products := make([]ProductRecord, len(modelCodes))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentModelFetches)

	for i, modelCode := range modelCodes {
		i, modelCode := i, modelCode

		wg.Add(1)
		go func() {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			bundle := s.fetchBundle(ctx, modelCode)
			products[i] = BuildProduct(modelCode, bundle, time.Now())
			products[i].ID = i + 1
		}()
	}
	wg.Wait()

	return products
}

// RefreshProduct 모델 하나의 시세를 다시 수집하여 저장소에 반영합니다.
// 저장소에 같은 모델이 이미 있으면 기존 제품 ID를 유지합니다.
func (s *Service) RefreshProduct(ctx context.Context, modelCode string) (ProductRecord, error) {
	record, err := s.FetchProduct(ctx, modelCode)
	if err != nil {
		return ProductRecord{}, err
	}

	record = s.store.UpsertByModelCode(record)
	s.persistSnapshots([]ProductRecord{record})

	return record, nil
}

// OverrideVendorPrice 수동 가격 보정을 저장소 스냅샷에 적용하고 보정된 제품을 반환합니다.
func (s *Service) OverrideVendorPrice(productID, vendorID int, override Override) (ProductRecord, error) {
	record, err := s.store.ApplyOverride(productID, vendorID, override, time.Now())
	if err != nil {
		return ProductRecord{}, err
	}

	s.persistSnapshots([]ProductRecord{record})

	return record, nil
}

// Reload 웹훅 서버에 원본 데이터 갱신을 요청한 뒤, 갱신이 반영될 시간을
// 기다렸다가 전체 시세를 다시 수집합니다.
func (s *Service) Reload(ctx context.Context) error {
	if err := s.fetcher.TriggerReload(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.FetchFailed, "원본 데이터 갱신 요청에 실패했습니다")
	}

	// 웹훅 서버가 원본 데이터를 다시 생성할 시간을 준다.
	select {
	case <-ctx.Done():
		return apperrors.Wrap(ctx.Err(), apperrors.Timeout, "갱신 대기 중 요청이 취소되었습니다")
	case <-time.After(s.cfg.Webhook.ReloadSettleDelayDuration()):
	}

	return s.RefreshAll(ctx)
}

// restoreSnapshots 파일 스냅샷 저장소에서 마지막 수집 결과를 읽어 메모리
// 저장소를 복원합니다. 개별 스냅샷의 역직렬화 실패는 건너뜁니다.
func (s *Service) restoreSnapshots() {
	if s.snapshots == nil {
		return
	}

	rawSnapshots, err := s.snapshots.LoadAll()
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("스냅샷 복원 실패: 빈 상태로 서비스를 시작합니다")

		return
	}

	var products []ProductRecord
	for _, raw := range rawSnapshots {
		var record ProductRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Warn("스냅샷 역직렬화 실패: 해당 스냅샷은 복원에서 제외됩니다")

			continue
		}
		products = append(products, record)
	}

	if len(products) == 0 {
		return
	}

	// 복원된 제품에 ID가 없거나 중복되었을 수 있으므로 다시 부여한다.
	for i := range products {
		products[i].ID = i + 1
	}
	s.store.ReplaceAll(products)

	applog.WithComponentAndFields(component, applog.Fields{
		"product_count": len(products),
	}).Info("스냅샷 복원 완료: 마지막 수집 결과로 서비스를 시작합니다")
}

// persistSnapshots 제품 스냅샷을 파일 저장소에 기록합니다. 실패는 경고 로그만 남깁니다.
func (s *Service) persistSnapshots(products []ProductRecord) {
	if s.snapshots == nil {
		return
	}

	for _, p := range products {
		if err := s.snapshots.Save(p.ModelCode, p); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"model_code": p.ModelCode,
				"error":      err,
			}).Warn("스냅샷 저장 실패: 메모리 저장소는 정상적으로 갱신되었습니다")
		}
	}
}

// notifyBestPriceChanges 이전 스냅샷과 새 스냅샷의 최저 시세를 비교하여
// 변동이 있는 모델에 대한 알림을 발송합니다.
func (s *Service) notifyBestPriceChanges(previous, current []ProductRecord) {
	if s.notificationSender == nil {
		return
	}

	previousByModel := make(map[string]ProductRecord, len(previous))
	for _, p := range previous {
		previousByModel[p.ModelCode] = p
	}

	now := time.Now()
	for _, cur := range current {
		prev, ok := previousByModel[cur.ModelCode]
		if !ok || prev.BestMarketPrice == nil {
			continue
		}

		alert := contract.PriceAlert{
			ModelCode:    cur.ModelCode,
			ProductName:  cur.Name,
			PreviousBest: *prev.BestMarketPrice,
			VendorName:   bestPriceVendorName(cur.Vendors),
			OccurredAt:   now,
		}

		switch {
		case cur.BestMarketPrice == nil:
			alert.Kind = contract.PriceAlertUnavailable
		case *cur.BestMarketPrice < *prev.BestMarketPrice:
			alert.Kind = contract.PriceAlertDrop
			alert.CurrentBest = *cur.BestMarketPrice
		case *cur.BestMarketPrice > *prev.BestMarketPrice:
			alert.Kind = contract.PriceAlertRise
			alert.CurrentBest = *cur.BestMarketPrice
		default:
			continue
		}

		if err := s.notificationSender.NotifyPriceAlert(alert); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"model_code": cur.ModelCode,
				"error":      err,
			}).Warn("가격 변동 알림 발송 실패")
		}
	}
}

// logAndNotifyError 수집 중 발생한 오류를 로깅하고 관리자에게 알림을 전송합니다.
func (s *Service) logAndNotifyError(message string, err error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"error": err,
	}).Error(message)

	if s.notificationSender == nil {
		return
	}
	if notifyErr := s.notificationSender.NotifyError(message + ": " + err.Error()); notifyErr != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": notifyErr,
		}).Warn("오류 알림 발송 실패")
	}
}

// bestPriceVendorName 판매중인 판매처들 중 최저 가격을 제시한 판매처 이름을 반환합니다.
func bestPriceVendorName(vendors []VendorRecord) string {
	best := BestMarketPrice(vendors)
	if best == nil {
		return ""
	}
	for _, v := range vendors {
		if v.Price != nil && v.Availability == AvailabilityInStock && *v.Price == *best {
			return v.Name
		}
	}
	return ""
}

// uniqueModelCodes 구매 이력 목록에서 공백이 아닌 모델 코드를 등장 순서대로 중복 없이 추출합니다.
func uniqueModelCodes(records []webhook.Record) []string {
	seen := make(map[string]struct{}, len(records))
	var codes []string
	for _, r := range records {
		model := r.Model()
		if strings.TrimSpace(model) == "" {
			continue
		}
		if _, ok := seen[model]; ok {
			continue
		}
		seen[model] = struct{}{}
		codes = append(codes, model)
	}
	return codes
}

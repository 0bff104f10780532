package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/darkkaiser/ramprice-server/internal/config"
	"github.com/darkkaiser/ramprice-server/internal/pkg/version"
	"github.com/darkkaiser/ramprice-server/internal/service"
	"github.com/darkkaiser/ramprice-server/internal/service/api"
	"github.com/darkkaiser/ramprice-server/internal/service/contract"
	"github.com/darkkaiser/ramprice-server/internal/service/notification"
	"github.com/darkkaiser/ramprice-server/internal/service/product"
	"github.com/darkkaiser/ramprice-server/internal/service/product/storage"
	"github.com/darkkaiser/ramprice-server/internal/service/shopping"
	"github.com/darkkaiser/ramprice-server/internal/service/webhook"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title RAM Price Dashboard API
// @version 1.0
// @description RAM 제품의 판매처별 가격을 수집/비교하는 대시보드 API 서버입니다.
// @description
// @description n8n 웹훅 백엔드에서 판매처별(Amazon, Store974, Geekay, Newegg) 가격 데이터를
// @description 수집하고, QAR 기준으로 정규화하여 제품별 최저 시세를 제공합니다.
// @description
// @description ## 주요 기능
// @description - 제품별 판매처 가격 비교 및 최저 시세 계산
// @description - 판매처 가격 수동 변경 (manual override)
// @description - 지역별(카타르/영국) 쇼핑 검색 결과 순위
// @description - 주기적 가격 수집 및 최저 시세 변동 텔레그램 알림

// @contact.name DarkKaiser
// @contact.url https://www.darkkaiser.com

// @BasePath /

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	Version   = "dev"     // 애플리케이션 버전
	Commit    = "unknown" // Git 커밋 해시
	BuildDate = "unknown" // 빌드 날짜
)

const (
	banner = `
  ____                        ____   _                ____
 |  _ \  __ _  _ __ ___      |  _ \ (_)  ___  ___    / ___|   ___  _ __ __   __  ___  _ __
 | |_) |/ _' || '_ ' _ \     | |_) || | / __|/ _ \   \___ \  / _ \| '__|\ \ / / / _ \| '__|
 |  _ <| (_| || | | | | |    |  __/ | || (__|  __/    ___) ||  __/| |    \ V / |  __/| |
 |_| \_\\__,_||_| |_| |_|    |_|    |_| \___|\___|   |____/  \___||_|     \_/   \___||_|
                                                                        %s
                                                               developed by DarkKaiser
---------------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	cfg, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if cfg.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	logCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(cfg.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, Version)

	// 빌드 정보 설정 (전역 싱글톤 등록)
	buildInfo := version.Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	version.Set(buildInfo)

	env := "production"
	if cfg.Debug {
		env = "development"
	}
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     env,
	}).Info("서버 초기화 시작")

	// 권장 설정 위반 사항을 경고로 출력한다.
	for _, warning := range cfg.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	snapshotStore, err := storage.NewFileSnapshotStore(cfg.Cache.Dir)
	if err != nil {
		log.Fatalf("스냅샷 저장소 초기화 실패: %v", err)
	}

	webhookClient := webhook.NewClient(&cfg.Webhook)

	var (
		notificationSender contract.NotificationSender
		notificationHealth contract.NotificationHealthChecker
		services           []service.Service
	)

	notificationService, err := notification.NewService(cfg)
	switch {
	case err == nil:
		notificationSender = notificationService
		notificationHealth = notificationService
		services = append(services, notificationService)
	case errors.Is(err, notification.ErrTelegramDisabled):
		applog.WithComponent("main").Info("텔레그램 알림이 비활성화되어 있어 알림 서비스 없이 구동합니다")
	default:
		log.Fatalf("알림 서비스 초기화 실패: %v", err)
	}

	productService := product.NewService(cfg, webhookClient, snapshotStore, notificationSender)
	shoppingService := shopping.NewService(webhookClient)
	apiService := api.NewService(cfg, productService, shoppingService, notificationSender, notificationHealth, buildInfo)

	services = append(services, productService, apiService)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Run(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}

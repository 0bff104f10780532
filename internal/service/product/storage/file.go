// Package storage 집계된 제품 스냅샷을 파일 시스템에 보관하는 저장소를 제공합니다.
//
// 스냅샷은 모델 코드별 JSON 파일로 저장되며, 서버 재시작 시 마지막 수집 결과를
// 복원하는 데 사용됩니다.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/darkkaiser/ramprice-server/pkg/concurrency"
	applog "github.com/darkkaiser/ramprice-server/pkg/log"
)

// component 스냅샷 저장소의 로깅용 컴포넌트 이름
const component = "product.storage"

// defaultDataDirectory 스냅샷을 저장할 기본 디렉토리 이름입니다.
const defaultDataDirectory = "data"

// tempFilePattern 파일 저장 시 사용되는 임시 파일의 이름 패턴입니다.
const tempFilePattern = "product-snapshot-*.tmp"

// snapshotFilePattern 저장된 스냅샷 파일의 이름 패턴입니다.
const snapshotFilePattern = "product-*.json"

// fileSnapshotStore 파일 시스템을 기반으로 제품 스냅샷을 저장하는 저장소 구현체입니다.
//
// [파일 구조]
//   - product-{모델코드}-{해시}.json: 모델 하나의 집계 결과가 JSON 형식으로 저장됩니다.
//   - product-snapshot-*.tmp: 파일 저장 중 생성되는 임시 파일입니다.
type fileSnapshotStore struct {
	baseDir string

	// locks 동일한 파일에 대한 동시 쓰기를 방지하기 위한 파일별 뮤텍스입니다.
	locks *concurrency.KeyedMutex[string]
}

var _ SnapshotStore = (*fileSnapshotStore)(nil)

// NewFileSnapshotStore 파일 시스템 기반의 제품 스냅샷 저장소를 생성합니다.
//
// 초기화 과정에서 저장 디렉토리를 생성하고, 이전 실행에서 남은 임시 파일을
// 백그라운드에서 정리합니다. dir이 빈 문자열이면 기본 디렉토리("data")를 사용합니다.
func NewFileSnapshotStore(dir string) (SnapshotStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrDirectoryAccessFailed(err, dir)
	}

	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &fileSnapshotStore{
		baseDir: absDir,

		locks: concurrency.NewKeyedMutex[string](),
	}

	// 서버 시작 속도에 영향을 주지 않도록 비동기로 수행한다.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"baseDir": s.baseDir,
					"panic":   r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		s.cleanupStaleTempFiles()
	}()

	return s, nil
}

// cleanupStaleTempFiles 비정상 종료로 인해 남겨진 오래된 임시 파일을 정리합니다.
func (s *fileSnapshotStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	// 최근 1시간 이내에 수정된 임시 파일은 다른 고루틴이 사용 중일 수 있으므로 건너뛴다.
	threshold := time.Now().Add(-1 * time.Hour)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		matched, _ := filepath.Match(tempFilePattern, name)
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, name)
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}

// Load 모델 코드에 해당하는 스냅샷 파일을 읽어 v에 역직렬화합니다.
//
// 쓰기 중인 파일을 읽는 것을 방지하기 위해 읽기에도 파일별 락을 적용하며,
// 락 보유 시간을 줄이기 위해 JSON 역직렬화는 락 해제 후 수행합니다.
func (s *fileSnapshotStore) Load(modelCode string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrLoadRequiresPointer
	}

	filename, err := s.resolveSafePath(modelCode)
	if err != nil {
		return err
	}

	var data []byte
	err = s.locks.WithLock(strings.ToLower(filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(filename)
		if readErr != nil {
			if os.IsNotExist(readErr) {
				return ErrSnapshotNotFound
			}

			return NewErrSnapshotReadFailed(readErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return NewErrJSONUnmarshalFailed(err)
	}

	return nil
}

// Save 스냅샷을 모델 코드에 해당하는 파일에 저장합니다.
//
// 저장 중 시스템 장애가 발생해도 데이터 무결성이 유지되도록
// "임시 파일 쓰기 -> 디스크 동기화 -> 원자적 이름 변경" 방식을 사용합니다.
func (s *fileSnapshotStore) Save(modelCode string, v any) error {
	filename, err := s.resolveSafePath(modelCode)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return NewErrJSONMarshalFailed(err)
	}

	// 대소문자를 구분하지 않는 파일 시스템을 위해 락 키는 소문자로 정규화한다.
	return s.locks.WithLock(strings.ToLower(filename), func() error {
		return s.writeAtomic(filename, data)
	})
}

// LoadAll 저장된 모든 스냅샷 파일을 읽어 원시 JSON 목록으로 반환합니다.
//
// 개별 파일 읽기 실패는 경고 로그만 남기고 건너뛰어, 일부 파일이 손상되어도
// 나머지 스냅샷 복원은 계속 진행됩니다.
func (s *fileSnapshotStore) LoadAll() ([][]byte, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, NewErrSnapshotReadFailed(err)
	}

	var snapshots [][]byte
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, _ := filepath.Match(snapshotFilePattern, entry.Name())
		if !matched {
			continue
		}

		fullPath := filepath.Join(s.baseDir, entry.Name())

		var data []byte
		err := s.locks.WithLock(strings.ToLower(fullPath), func() error {
			var readErr error
			data, readErr = os.ReadFile(fullPath)
			return readErr
		})
		if err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("스냅샷 파일 읽기 실패: 해당 파일은 복원에서 제외됩니다")

			continue
		}

		snapshots = append(snapshots, data)
	}

	return snapshots, nil
}

// resolveSafePath 모델 코드를 사용하여 안전하게 검증된 파일 경로를 생성합니다.
//
// 생성된 경로가 기본 디렉토리를 벗어나지 않는지 검증하여
// Path Traversal 공격을 방어합니다.
func (s *fileSnapshotStore) resolveSafePath(modelCode string) (string, error) {
	filename := generateFilename(modelCode)

	fullPath := filepath.Join(s.baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil {
		return "", NewErrAtomicWriteFailed(err, "파일 경로 해석")
	}
	if strings.HasPrefix(rel, "..") {
		applog.WithComponentAndFields(component, applog.Fields{
			"model_code": modelCode,
			"filename":   filename,
			"base_dir":   s.baseDir,
			"path":       cleanPath,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 데이터를 파일에 원자적으로 저장합니다.
func (s *fileSnapshotStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewErrAtomicWriteFailed(err, "저장 디렉토리 생성")
	}

	// 같은 디렉토리 내에 생성해야 rename이 원자적으로 동작한다.
	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return NewErrAtomicWriteFailed(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 한다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return NewErrAtomicWriteFailed(err, "파일 쓰기")
	}

	// 운영체제 버퍼 캐시에만 있는 상태에서 전원이 차단되는 것을 방지한다.
	if err := tmpFile.Sync(); err != nil {
		return NewErrAtomicWriteFailed(err, "디스크 동기화")
	}

	// Windows에서는 파일이 열려 있으면 rename이 실패한다.
	if err := tmpFile.Close(); err != nil {
		return NewErrAtomicWriteFailed(err, "파일 닫기")
	}

	if err := s.renameWithRetry(tmpPath, filename); err != nil {
		return NewErrAtomicWriteFailed(err, "파일 이름 변경")
	}

	// 파일명 변경 사항을 디스크에 기록하기 위해 부모 디렉토리를 fsync한다.
	// 실패해도 치명적이지 않으므로 에러는 무시한다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 파일 이름 변경을 재시도 로직과 함께 수행합니다.
//
// Windows 개발 환경에서는 백신이나 인덱서가 파일을 일시적으로 잠글 수 있으므로
// 짧은 대기 후 재시도하여 일시적인 잠금 문제를 우회합니다.
func (s *fileSnapshotStore) renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}

	return lastErr
}

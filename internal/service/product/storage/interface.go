package storage

// SnapshotStore 집계된 제품 스냅샷을 모델 코드별 파일로 저장하고 불러오는 저장소 인터페이스입니다.
type SnapshotStore interface {
	// Load 모델 코드에 해당하는 스냅샷 파일을 읽어 v에 역직렬화합니다.
	// 스냅샷이 존재하지 않으면 ErrSnapshotNotFound를 반환합니다.
	Load(modelCode string, v any) error

	// Save 스냅샷을 모델 코드에 해당하는 파일에 원자적으로 저장합니다.
	Save(modelCode string, v any) error

	// LoadAll 저장된 모든 스냅샷 파일을 읽어 모델별 원시 JSON으로 반환합니다.
	// 서버 시작 시 메모리 저장소를 워밍업하는 데 사용됩니다.
	LoadAll() ([][]byte, error)
}

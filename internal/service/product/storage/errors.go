package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/ramprice-server/internal/pkg/errors"
)

var (
	// ErrSnapshotNotFound 요청한 모델 코드의 스냅샷 파일이 존재하지 않을 때 반환하는 에러입니다.
	ErrSnapshotNotFound = apperrors.New(apperrors.NotFound, "저장된 제품 스냅샷이 없습니다")

	// ErrPathTraversalDetected 파일 경로 생성 시 Path Traversal(경로 이탈) 시도가 감지되었을 때 반환하는 에러입니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrLoadRequiresPointer Load 함수 호출 시 대상 객체가 올바른 포인터 타입이 아닐 때 반환하는 에러입니다.
	ErrLoadRequiresPointer = apperrors.New(apperrors.Internal, "내부 시스템 오류: 데이터 로드 대상 객체가 올바른 포인터 타입이 아닙니다")
)

// NewErrDirectoryAccessFailed 저장소 초기화 시 디렉토리 생성 또는 접근 권한 확인에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

// NewErrSnapshotReadFailed 스냅샷 파일을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrSnapshotReadFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "스냅샷 조회 실패: 저장된 스냅샷 파일 읽기 처리 중 오류가 발생했습니다")
}

// NewErrJSONMarshalFailed 스냅샷 데이터를 JSON으로 직렬화하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrJSONMarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "데이터 처리 실패: 스냅샷 직렬화(JSON Marshal) 중 오류가 발생했습니다")
}

// NewErrJSONUnmarshalFailed 스냅샷 데이터를 JSON에서 역직렬화하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrJSONUnmarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "데이터 처리 실패: 스냅샷 역직렬화(JSON Unmarshal) 중 오류가 발생했습니다")
}

// NewErrAtomicWriteFailed 스냅샷 파일의 원자적 쓰기 과정에서 실패했을 때 반환하는 에러를 생성합니다.
func NewErrAtomicWriteFailed(err error, step string) error {
	return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("스냅샷 저장 실패: %s 중 오류가 발생했습니다", step))
}

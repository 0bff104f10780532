package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNew_And_Is 에러 생성 및 타입 검사 로직을 검증합니다.
func TestNew_And_Is(t *testing.T) {
	t.Parallel()

	err := New(NotFound, "상품을 찾을 수 없습니다")

	assert.EqualError(t, err, "상품을 찾을 수 없습니다")
	assert.True(t, Is(err, NotFound))
	assert.False(t, Is(err, Internal))
	assert.Equal(t, NotFound, GetType(err))
}

// TestWrap_Chain 에러 래핑과 체인 탐색을 검증합니다.
func TestWrap_Chain(t *testing.T) {
	t.Parallel()

	rootErr := stderrors.New("connection refused")
	wrapped := Wrap(rootErr, FetchFailed, "웹훅 호출 실패")

	assert.EqualError(t, wrapped, "웹훅 호출 실패: connection refused")
	assert.True(t, Is(wrapped, FetchFailed))
	assert.Equal(t, rootErr, RootCause(wrapped))
	assert.True(t, stderrors.Is(wrapped, rootErr))
}

// TestWrap_NilError nil 에러 래핑 시 nil을 반환하는지 검증합니다.
func TestWrap_NilError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Wrap(nil, Internal, "무시되어야 함"))
}

// TestGetType_NonAppError AppError가 아닌 에러의 타입 조회를 검증합니다.
func TestGetType_NonAppError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, GetType(fmt.Errorf("plain error")))
	assert.Equal(t, Unknown, GetType(nil))
}

// TestErrorType_String 에러 타입의 문자열 변환을 검증합니다.
func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType ErrorType
		want    string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{FetchFailed, "FetchFailed"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{ErrorType(999), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.errType.String())
	}
}

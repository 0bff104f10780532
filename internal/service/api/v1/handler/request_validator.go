package handler

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// validate 전역 validator 인스턴스입니다.
	validate *validator.Validate

	// validateOnce validator 초기화가 정확히 한 번만 실행되도록 보장합니다.
	validateOnce sync.Once
)

// getValidator 초기화된 validator 인스턴스를 반환합니다.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// korean tag를 필드명으로 사용하도록 설정
		// validator가 에러 메시지를 생성할 때 korean tag 값을 필드명으로 사용합니다.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if koreanName := fld.Tag.Get("korean"); koreanName != "" {
				return koreanName
			}
			return fld.Name
		})
	})

	return validate
}

// validateRequest 구조체의 validation tag를 기반으로 검증을 수행합니다.
func validateRequest(req any) error {
	return getValidator().Struct(req)
}

// formatValidationError validator 에러를 사용자 친화적인 한글 메시지로 변환합니다.
// 여러 검증 에러가 있을 경우 첫 번째 에러만 반환합니다.
func formatValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s은(는) 필수 항목입니다", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s의 값이 허용되지 않습니다 (허용: %s)", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s은(는) %s 이상이어야 합니다", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s의 값이 유효하지 않습니다", fe.Field())
	}
}

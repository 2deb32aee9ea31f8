// Package validator はリクエストDTOのvalidateタグを検証する。
package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"storefront/internal/usecase"
)

// echo.Validatorとして登録する
type RequestValidator struct {
	v *playground.Validate
}

func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// エラーメッセージにはjsonのキー名を使う
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	return &RequestValidator{v: v}
}

// Validate は最初に失敗した項目を400のHTTPErrorにして返す
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return usecase.NewHTTPError(http.StatusBadRequest, message(fieldErrs[0]))
}

func message(fe playground.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s required", field)
	case "email":
		return "invalid email format"
	case "max":
		return fmt.Sprintf("%s too long", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s too short", field)
		}
		return fmt.Sprintf("invalid %s", field)
	default:
		return fmt.Sprintf("invalid %s", field)
	}
}

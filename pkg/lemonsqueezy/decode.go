package lemonsqueezy

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}

			return name
		})
	})

	return validate
}

type dataValidator interface {
	validate(v *validator.Validate) error
}

// Decode converts a response body into T.
//
// The body is first decoded as T. If that fails it is decoded as an error
// document and a *ResponseError is returned. If that fails too, the result
// is an *UnknownError carrying the body text. The status code is never
// consulted.
func Decode[T any](body []byte) (T, error) {
	var result T

	decodeErr := decodeStrict(body, &result)
	if decodeErr == nil {
		return result, nil
	}

	var zero T

	errResp, err := ParseResponseError(body)
	if err == nil {
		return zero, errResp
	}

	return zero, NewUnknownError(body, decodeErr)
}

func decodeStrict(body []byte, v any) error {
	err := json.Unmarshal(body, v)
	if err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if dv, ok := v.(dataValidator); ok {
		return dv.validate(getValidator())
	}

	return nil
}

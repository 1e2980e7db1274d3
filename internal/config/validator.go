package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/moviecard/internal/assets"
	"github.com/alexisbeaulieu97/moviecard/internal/moviecard"
	carderrors "github.com/alexisbeaulieu97/moviecard/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator, reporting fields by their yaml names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("resource_id", func(fl validator.FieldLevel) bool {
			return assets.Exists(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateMovie checks the structural fields of a movie record.
// Rating is intentionally left unchecked: out-of-range values are displayed as given.
func ValidateMovie(movie *moviecard.MovieCardData) error {
	if movie == nil {
		return carderrors.NewValidationError("movie", "movie record is nil", nil)
	}

	if err := validatorInstance().Struct(movie); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return carderrors.NewValidationError("movie", err.Error(), err)
	}

	fe := ves[0]
	field := fe.Field()

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "resource_id":
		msg = fmt.Sprintf("unknown image resource %q (available: %s)", fe.Value(), strings.Join(assets.IDs(), ", "))
	default:
		msg = fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}

	return carderrors.NewValidationError(field, msg, err)
}

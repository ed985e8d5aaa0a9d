package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/itsSauraj/recipe-api/internal/common/errors"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct runs tag validation on a request DTO and converts failures into the
// shared validation domain error so handlers map them uniformly.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field())+" failed "+fe.Tag())
		}
		return commonerrors.ErrValidation.WithCause(errors.New(strings.Join(fields, "; ")))
	}

	return commonerrors.ErrValidation.WithCause(err)
}

// Var validates a single value against a tag expression, e.g. "uuid4".
func Var(value any, tag string) error {
	if err := v.Var(value, tag); err != nil {
		return commonerrors.ErrValidation.WithCause(err)
	}
	return nil
}

package color

import (
	"fmt"

	appErrors "emissor/internal/errors"
)

func validationError(format string, args ...any) error {
	return appErrors.New(appErrors.CodeValidation, fmt.Sprintf(format, args...), nil)
}

func typeMismatchError(v any) error {
	return appErrors.New(appErrors.CodeTypeMismatch, fmt.Sprintf("unsupported color input of type %T", v), nil)
}

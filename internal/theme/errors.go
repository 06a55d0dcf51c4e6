package theme

import (
	"fmt"

	appErrors "emissor/internal/errors"
)

func validationError(format string, args ...any) error {
	return appErrors.New(appErrors.CodeValidation, fmt.Sprintf(format, args...), nil)
}

func notFoundError(format string, args ...any) error {
	return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf(format, args...), nil)
}

package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
)

// validate caches struct metadata, so one instance is shared.
var validate = validator.New()

// Validate checks v against its validate tags. The returned error wraps
// ErrInvalidArgument.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", pkgerrors.ErrInvalidArgument, err)
	}
	return nil
}

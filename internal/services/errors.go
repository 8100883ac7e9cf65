package services

import (
	"errors"

	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
)

func isNotFound(err error) bool { return errors.Is(err, pkgerrors.ErrNotFound) }

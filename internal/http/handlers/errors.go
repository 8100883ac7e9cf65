package handlers

import (
	"errors"

	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
)

// notFoundOr picks the client message for a by-id lookup failure.
func notFoundOr(err error, notFound, fallback string) string {
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return notFound
	}
	return fallback
}

func createUserMessage(err error) string {
	switch {
	case errors.Is(err, pkgerrors.ErrConflict):
		return "Username already exists"
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		return "Invalid user data"
	default:
		return "Failed to create user"
	}
}

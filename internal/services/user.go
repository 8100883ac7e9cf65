package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// bcrypt rejects passwords longer than 72 bytes.
const maxPasswordBytes = 72

type UserService interface {
	// Create fails with ErrConflict when the username is taken.
	Create(ctx context.Context, in types.InsertUser) (types.User, error)
	Get(ctx context.Context, id uuid.UUID) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	// Authenticate returns ErrNotFound for an unknown user or a wrong password.
	Authenticate(ctx context.Context, username, password string) (types.User, error)
}

type userService struct {
	log   *logger.Logger
	users repos.UserRepo
	cost  int

	// createMu makes the uniqueness check and the insert one step.
	createMu sync.Mutex
}

func NewUserService(log *logger.Logger, users repos.UserRepo) UserService {
	return &userService{
		log:   log.With("service", "UserService"),
		users: users,
		cost:  bcrypt.DefaultCost,
	}
}

func (s *userService) Create(ctx context.Context, in types.InsertUser) (types.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := Validate(in); err != nil {
		return types.User{}, err
	}
	if len(in.Password) > maxPasswordBytes {
		return types.User{}, fmt.Errorf("password is %d bytes, limit %d: %w", len(in.Password), maxPasswordBytes, pkgerrors.ErrInvalidArgument)
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	if _, err := s.GetByUsername(ctx, in.Username); err == nil {
		return types.User{}, fmt.Errorf("username %q: %w", in.Username, pkgerrors.ErrConflict)
	} else if !isNotFound(err) {
		return types.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return types.User{}, fmt.Errorf("hash password: %w: %w", err, pkgerrors.ErrInvalidArgument)
	}
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}
	in.Password = string(hash)

	u, err := s.users.Insert(ctx, types.User{InsertUser: in})
	if err != nil {
		s.log.Error("insert user failed", "error", err)
		return types.User{}, err
	}
	s.log.Info("user created", "user_id", u.ID)
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (types.User, error) {
	u, ok, err := s.users.GetByID(ctx, id)
	if err != nil {
		return types.User{}, err
	}
	if !ok {
		return types.User{}, fmt.Errorf("user %s: %w", id, pkgerrors.ErrNotFound)
	}
	return u, nil
}

// GetByUsername is an exact, case-sensitive match.
func (s *userService) GetByUsername(ctx context.Context, username string) (types.User, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return types.User{}, err
	}
	for _, u := range all {
		if u.Username == username {
			return u, nil
		}
	}
	return types.User{}, fmt.Errorf("user %q: %w", username, pkgerrors.ErrNotFound)
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	u, err := s.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return types.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return types.User{}, fmt.Errorf("user %q: %w", username, pkgerrors.ErrNotFound)
	}
	return u, nil
}

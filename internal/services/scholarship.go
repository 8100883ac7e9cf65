package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/store"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type ScholarshipFilter struct {
	Category       string
	EducationLevel string
	// State also admits scholarships with no state restriction.
	State string
}

type ScholarshipService interface {
	// List never returns inactive scholarships.
	List(ctx context.Context, f ScholarshipFilter) ([]types.Scholarship, error)
	// Get returns the scholarship whether or not it is active.
	Get(ctx context.Context, id uuid.UUID) (types.Scholarship, error)
	Create(ctx context.Context, in types.InsertScholarship) (types.Scholarship, error)
}

type scholarshipService struct {
	log          *logger.Logger
	scholarships repos.ScholarshipRepo
}

func NewScholarshipService(log *logger.Logger, scholarships repos.ScholarshipRepo) ScholarshipService {
	return &scholarshipService{
		log:          log.With("service", "ScholarshipService"),
		scholarships: scholarships,
	}
}

func (s *scholarshipService) List(ctx context.Context, f ScholarshipFilter) ([]types.Scholarship, error) {
	all, err := s.scholarships.All(ctx)
	if err != nil {
		return nil, err
	}
	return store.Filter(all, func(sc types.Scholarship) bool {
		if !sc.IsActive {
			return false
		}
		if !matches(f.Category, sc.Category) || !matches(f.EducationLevel, sc.EducationLevel) {
			return false
		}
		if blank(f.State) || sc.NationallyApplicable() {
			return true
		}
		return matches(f.State, *sc.State)
	}), nil
}

func (s *scholarshipService) Get(ctx context.Context, id uuid.UUID) (types.Scholarship, error) {
	sc, ok, err := s.scholarships.GetByID(ctx, id)
	if err != nil {
		return types.Scholarship{}, err
	}
	if !ok {
		return types.Scholarship{}, fmt.Errorf("scholarship %s: %w", id, pkgerrors.ErrNotFound)
	}
	return sc, nil
}

func (s *scholarshipService) Create(ctx context.Context, in types.InsertScholarship) (types.Scholarship, error) {
	if err := Validate(in); err != nil {
		return types.Scholarship{}, err
	}
	sc, err := s.scholarships.Insert(ctx, types.Scholarship{InsertScholarship: in})
	if err != nil {
		s.log.Error("insert scholarship failed", "error", err)
		return types.Scholarship{}, err
	}
	return sc, nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/store"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type CollegeFilter struct {
	State    string
	District string
	// Course is a substring match over the encoded course list, so it also
	// hits durations and partial names.
	Course string
}

type CollegeService interface {
	List(ctx context.Context, f CollegeFilter) ([]types.College, error)
	Get(ctx context.Context, id uuid.UUID) (types.College, error)
	Create(ctx context.Context, in types.InsertCollege) (types.College, error)
}

type collegeService struct {
	log      *logger.Logger
	colleges repos.CollegeRepo
}

func NewCollegeService(log *logger.Logger, colleges repos.CollegeRepo) CollegeService {
	return &collegeService{
		log:      log.With("service", "CollegeService"),
		colleges: colleges,
	}
}

func (s *collegeService) List(ctx context.Context, f CollegeFilter) ([]types.College, error) {
	all, err := s.colleges.All(ctx)
	if err != nil {
		return nil, err
	}
	course := strings.ToLower(strings.TrimSpace(f.Course))
	return store.Filter(all, func(c types.College) bool {
		if !matches(f.State, c.State) || !matches(f.District, c.District) {
			return false
		}
		if course == "" {
			return true
		}
		return strings.Contains(strings.ToLower(encodeCourses(c.Courses)), course)
	}), nil
}

func encodeCourses(courses []types.CollegeCourse) string {
	b, err := json.Marshal(courses)
	if err != nil {
		return ""
	}
	return string(b)
}

func (s *collegeService) Get(ctx context.Context, id uuid.UUID) (types.College, error) {
	c, ok, err := s.colleges.GetByID(ctx, id)
	if err != nil {
		return types.College{}, err
	}
	if !ok {
		return types.College{}, fmt.Errorf("college %s: %w", id, pkgerrors.ErrNotFound)
	}
	return c, nil
}

func (s *collegeService) Create(ctx context.Context, in types.InsertCollege) (types.College, error) {
	if err := Validate(in); err != nil {
		return types.College{}, err
	}
	c, err := s.colleges.Insert(ctx, types.College{InsertCollege: in})
	if err != nil {
		s.log.Error("insert college failed", "error", err)
		return types.College{}, err
	}
	return c, nil
}

package services

import (
	"context"
	"time"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/store"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type AssessmentService interface {
	Create(ctx context.Context, in types.InsertAssessment) (types.Assessment, error)
	// ListByUser matches userID exactly. Assessments without a user never match.
	ListByUser(ctx context.Context, userID string) ([]types.Assessment, error)
}

type assessmentService struct {
	log         *logger.Logger
	assessments repos.AssessmentRepo
	now         func() time.Time
}

type AssessmentOption func(*assessmentService)

// WithClock overrides the source of CompletedAt.
func WithClock(now func() time.Time) AssessmentOption {
	return func(s *assessmentService) { s.now = now }
}

func NewAssessmentService(log *logger.Logger, assessments repos.AssessmentRepo, opts ...AssessmentOption) AssessmentService {
	s := &assessmentService{
		log:         log.With("service", "AssessmentService"),
		assessments: assessments,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *assessmentService) Create(ctx context.Context, in types.InsertAssessment) (types.Assessment, error) {
	if err := Validate(in); err != nil {
		return types.Assessment{}, err
	}
	a, err := s.assessments.Insert(ctx, types.Assessment{
		InsertAssessment: in,
		CompletedAt:      s.now().UTC(),
	})
	if err != nil {
		s.log.Error("insert assessment failed", "error", err)
		return types.Assessment{}, err
	}
	s.log.Debug("assessment stored", "assessment_id", a.ID, "category", a.Category)
	return a, nil
}

func (s *assessmentService) ListByUser(ctx context.Context, userID string) ([]types.Assessment, error) {
	all, err := s.assessments.All(ctx)
	if err != nil {
		return nil, err
	}
	return store.Filter(all, func(a types.Assessment) bool { return a.OwnedBy(userID) }), nil
}

package services

import (
	"context"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/store"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type StudyMaterialFilter struct {
	Stream  string
	Subject string
	Type    string
}

type StudyMaterialService interface {
	List(ctx context.Context, f StudyMaterialFilter) ([]types.StudyMaterial, error)
	Create(ctx context.Context, in types.InsertStudyMaterial) (types.StudyMaterial, error)
}

type studyMaterialService struct {
	log       *logger.Logger
	materials repos.StudyMaterialRepo
}

func NewStudyMaterialService(log *logger.Logger, materials repos.StudyMaterialRepo) StudyMaterialService {
	return &studyMaterialService{
		log:       log.With("service", "StudyMaterialService"),
		materials: materials,
	}
}

func (s *studyMaterialService) List(ctx context.Context, f StudyMaterialFilter) ([]types.StudyMaterial, error) {
	all, err := s.materials.All(ctx)
	if err != nil {
		return nil, err
	}
	return store.Filter(all, func(m types.StudyMaterial) bool {
		return matches(f.Stream, m.Stream) &&
			matches(f.Subject, m.Subject) &&
			matches(f.Type, m.Type)
	}), nil
}

func (s *studyMaterialService) Create(ctx context.Context, in types.InsertStudyMaterial) (types.StudyMaterial, error) {
	if err := Validate(in); err != nil {
		return types.StudyMaterial{}, err
	}
	m, err := s.materials.Insert(ctx, types.StudyMaterial{InsertStudyMaterial: in})
	if err != nil {
		s.log.Error("insert study material failed", "error", err)
		return types.StudyMaterial{}, err
	}
	return m, nil
}

package services

import (
	"context"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/store"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type CareerPathFilter struct {
	Stream string
}

type CareerPathService interface {
	List(ctx context.Context, f CareerPathFilter) ([]types.CareerPath, error)
	Create(ctx context.Context, in types.InsertCareerPath) (types.CareerPath, error)
}

type careerPathService struct {
	log   *logger.Logger
	paths repos.CareerPathRepo
}

func NewCareerPathService(log *logger.Logger, paths repos.CareerPathRepo) CareerPathService {
	return &careerPathService{
		log:   log.With("service", "CareerPathService"),
		paths: paths,
	}
}

func (s *careerPathService) List(ctx context.Context, f CareerPathFilter) ([]types.CareerPath, error) {
	all, err := s.paths.All(ctx)
	if err != nil {
		return nil, err
	}
	return store.Filter(all, func(p types.CareerPath) bool { return matches(f.Stream, p.Stream) }), nil
}

func (s *careerPathService) Create(ctx context.Context, in types.InsertCareerPath) (types.CareerPath, error) {
	if err := Validate(in); err != nil {
		return types.CareerPath{}, err
	}
	p, err := s.paths.Insert(ctx, types.CareerPath{InsertCareerPath: in})
	if err != nil {
		s.log.Error("insert career path failed", "error", err)
		return types.CareerPath{}, err
	}
	return p, nil
}

package services

import (
	"context"
	"sort"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/store"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type QuestionFilter struct {
	Category string
}

type QuestionService interface {
	// List returns questions ordered by Order; ties keep insertion order.
	List(ctx context.Context, f QuestionFilter) ([]types.Question, error)
	Create(ctx context.Context, in types.InsertQuestion) (types.Question, error)
}

type questionService struct {
	log       *logger.Logger
	questions repos.QuestionRepo
}

func NewQuestionService(log *logger.Logger, questions repos.QuestionRepo) QuestionService {
	return &questionService{
		log:       log.With("service", "QuestionService"),
		questions: questions,
	}
}

func (s *questionService) List(ctx context.Context, f QuestionFilter) ([]types.Question, error) {
	all, err := s.questions.All(ctx)
	if err != nil {
		return nil, err
	}
	out := store.Filter(all, func(q types.Question) bool {
		return matches(f.Category, q.Category)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *questionService) Create(ctx context.Context, in types.InsertQuestion) (types.Question, error) {
	if err := Validate(in); err != nil {
		return types.Question{}, err
	}
	q, err := s.questions.Insert(ctx, types.Question{InsertQuestion: in})
	if err != nil {
		s.log.Error("insert question failed", "error", err)
		return types.Question{}, err
	}
	return q, nil
}

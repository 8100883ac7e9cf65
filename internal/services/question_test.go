package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
)

func TestQuestionListSortsByOrderStably(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	testutil.SeedQuestion(t, ctx, r, "math", "third", 3)
	testutil.SeedQuestion(t, ctx, r, "logical", "first", 1)
	testutil.SeedQuestion(t, ctx, r, "math", "second-a", 2)
	testutil.SeedQuestion(t, ctx, r, "verbal", "second-b", 2)

	svc := NewQuestionService(testutil.Logger(t), r.Questions)
	got, err := svc.List(ctx, QuestionFilter{})
	require.NoError(t, err)

	var texts []string
	for _, q := range got {
		texts = append(texts, q.Question)
	}
	assert.Equal(t, []string{"first", "second-a", "second-b", "third"}, texts)
}

func TestQuestionListFiltersCategoryCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	testutil.SeedQuestion(t, ctx, r, "math", "m1", 2)
	testutil.SeedQuestion(t, ctx, r, "logical", "l1", 1)
	testutil.SeedQuestion(t, ctx, r, "math", "m0", 1)

	svc := NewQuestionService(testutil.Logger(t), r.Questions)
	got, err := svc.List(ctx, QuestionFilter{Category: "MATH"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m0", got[0].Question)
	assert.Equal(t, "m1", got[1].Question)

	none, err := svc.List(ctx, QuestionFilter{Category: "interest"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestQuestionCreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	svc := NewQuestionService(testutil.Logger(t), r.Questions)

	_, err := svc.Create(ctx, types.InsertQuestion{Category: "math"})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidArgument)

	n, err := r.Questions.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

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

func TestStudyMaterialListFilters(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	testutil.SeedStudyMaterial(t, ctx, r, "Physics", "science", "physics", "pdf")
	testutil.SeedStudyMaterial(t, ctx, r, "Physics Lectures", "science", "physics", "video")
	testutil.SeedStudyMaterial(t, ctx, r, "History", "arts", "history", "pdf")

	svc := NewStudyMaterialService(testutil.Logger(t), r.StudyMaterials)

	got, err := svc.List(ctx, StudyMaterialFilter{Stream: "Science", Type: "PDF"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Physics", got[0].Title)

	got, err = svc.List(ctx, StudyMaterialFilter{Subject: "physics"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.List(ctx, StudyMaterialFilter{Stream: "commerce"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStudyMaterialCreateAcceptsBlankStrings(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	svc := NewStudyMaterialService(testutil.Logger(t), r.StudyMaterials)

	m, err := svc.Create(ctx, types.InsertStudyMaterial{Title: "no stream"})
	require.NoError(t, err)
	assert.Empty(t, m.Stream)

	list, err := svc.List(ctx, StudyMaterialFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
}

func TestCareerPathListFiltersStream(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	testutil.SeedCareerPath(t, ctx, r, "science", "B.Tech CSE")
	testutil.SeedCareerPath(t, ctx, r, "commerce", "B.Com")
	testutil.SeedCareerPath(t, ctx, r, "science", "B.Sc Maths")

	svc := NewCareerPathService(testutil.Logger(t), r.CareerPaths)

	got, err := svc.List(ctx, CareerPathFilter{Stream: "SCIENCE"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B.Tech CSE", got[0].Course)
	assert.Equal(t, "B.Sc Maths", got[1].Course)

	all, err := svc.List(ctx, CareerPathFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCareerPathCreateRequiresListColumns(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	svc := NewCareerPathService(testutil.Logger(t), r.CareerPaths)

	_, err := svc.Create(ctx, types.InsertCareerPath{Stream: "arts", Course: "B.A History"})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidArgument)

	p, err := svc.Create(ctx, types.InsertCareerPath{
		Careers:             []string{},
		Skills:              []string{},
		FutureOpportunities: []string{},
	})
	require.NoError(t, err)
	assert.Empty(t, p.Stream)

	n, err := r.CareerPaths.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

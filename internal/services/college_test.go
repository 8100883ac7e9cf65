package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
)

func names(cs []types.College) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestCollegeListFilters(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	testutil.SeedCollege(t, ctx, r, "Anna", "Tamil Nadu", "Chennai", "B.Tech Computer Science", "B.Sc Physics")
	testutil.SeedCollege(t, ctx, r, "PSG", "Tamil Nadu", "Coimbatore", "B.Com")
	testutil.SeedCollege(t, ctx, r, "COEP", "Maharashtra", "Pune", "B.Tech Mechanical")

	svc := NewCollegeService(testutil.Logger(t), r.Colleges)

	cases := []struct {
		name   string
		filter CollegeFilter
		want   []string
	}{
		{"no filter", CollegeFilter{}, []string{"Anna", "PSG", "COEP"}},
		{"state", CollegeFilter{State: "tamil nadu"}, []string{"Anna", "PSG"}},
		{"state and district", CollegeFilter{State: "Tamil Nadu", District: "COIMBATORE"}, []string{"PSG"}},
		{"course substring", CollegeFilter{Course: "b.tech"}, []string{"Anna", "COEP"}},
		{"course matches encoded duration", CollegeFilter{Course: "3 years"}, []string{"Anna", "PSG", "COEP"}},
		{"blank filters ignored", CollegeFilter{State: "  ", Course: ""}, []string{"Anna", "PSG", "COEP"}},
		{"no match", CollegeFilter{State: "Maharashtra", Course: "B.Com"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func TestCollegeGet(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	seeded := testutil.SeedCollege(t, ctx, r, "Anna", "Tamil Nadu", "Chennai", "B.E")
	svc := NewCollegeService(testutil.Logger(t), r.Colleges)

	got, err := svc.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded, got)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestCollegeCreateValidates(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	svc := NewCollegeService(testutil.Logger(t), r.Colleges)

	_, err := svc.Create(ctx, types.InsertCollege{Name: "Half"})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidArgument)

	c, err := svc.Create(ctx, types.InsertCollege{
		Name:     "Full",
		Location: "Madurai, Tamil Nadu",
		State:    "Tamil Nadu",
		District: "Madurai",
		Type:     "Government",
		Courses:  []types.CollegeCourse{},
		Cutoffs:  map[string]string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Full", c.Name)

	blank, err := svc.Create(ctx, types.InsertCollege{
		Courses: []types.CollegeCourse{{}},
		Cutoffs: map[string]string{},
		Seats:   -1,
	})
	require.NoError(t, err)
	assert.Empty(t, blank.Name)
	assert.Equal(t, -1, blank.Seats)
}

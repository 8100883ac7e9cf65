package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerpath-backend/internal/domain"
)

func scholarshipNames(ss []types.Scholarship) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Name)
	}
	return out
}

func TestScholarshipListExcludesInactiveAndAdmitsNational(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	testutil.SeedScholarship(t, ctx, r, "TN Merit", "merit", "Tamil Nadu", true)
	testutil.SeedScholarship(t, ctx, r, "National Merit", "merit", "", true)
	testutil.SeedScholarship(t, ctx, r, "Closed", "merit", "Tamil Nadu", false)
	testutil.SeedScholarship(t, ctx, r, "Kerala Income", "income", "Kerala", true)

	svc := NewScholarshipService(testutil.Logger(t), r.Scholarships)

	all, err := svc.List(ctx, ScholarshipFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"TN Merit", "National Merit", "Kerala Income"}, scholarshipNames(all))

	tn, err := svc.List(ctx, ScholarshipFilter{State: "tamil nadu"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TN Merit", "National Merit"}, scholarshipNames(tn))

	mh, err := svc.List(ctx, ScholarshipFilter{State: "Maharashtra"})
	require.NoError(t, err)
	assert.Equal(t, []string{"National Merit"}, scholarshipNames(mh))

	income, err := svc.List(ctx, ScholarshipFilter{Category: "Income", EducationLevel: "UNDERGRADUATE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Kerala Income"}, scholarshipNames(income))
}

func TestScholarshipGetReturnsInactive(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	closed := testutil.SeedScholarship(t, ctx, r, "Closed", "merit", "", false)

	svc := NewScholarshipService(testutil.Logger(t), r.Scholarships)
	got, err := svc.Get(ctx, closed.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestInsertScholarshipDefaultsActive(t *testing.T) {
	var in types.InsertScholarship
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","category":"merit"}`), &in))
	assert.True(t, in.IsActive)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","isActive":false}`), &in))
	assert.False(t, in.IsActive)

	var s types.Scholarship
	require.NoError(t, json.Unmarshal([]byte(`{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","name":"y"}`), &s))
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", s.ID.String())
	assert.Equal(t, "y", s.Name)
	assert.True(t, s.IsActive)
}

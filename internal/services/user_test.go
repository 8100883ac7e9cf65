package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/careerpath-backend/internal/domain"
	pkgerrors "github.com/yungbote/careerpath-backend/internal/pkg/errors"
)

func TestUserCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	svc := NewUserService(testutil.Logger(t), r.Users)

	u, err := svc.Create(ctx, types.InsertUser{Username: " priya ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "priya", u.Username)

	byID, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, byID)

	byName, err := svc.GetByUsername(ctx, "priya")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = svc.GetByUsername(ctx, "PRIYA")
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestUserPasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	svc := NewUserService(testutil.Logger(t), r.Users)

	u, err := svc.Create(ctx, types.InsertUser{Username: "meena", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.Password)

	got, err := svc.Authenticate(ctx, "meena", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(ctx, "meena", "wrong")
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)

	_, err = svc.Create(ctx, types.InsertUser{Username: "long", Password: strings.Repeat("x", 73)})
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidArgument)
}

func TestUserCreateRejectsDuplicateAndInvalid(t *testing.T) {
	ctx := context.Background()
	r := repos.NewMemory(testutil.Logger(t))
	svc := NewUserService(testutil.Logger(t), r.Users)

	_, err := svc.Create(ctx, types.InsertUser{Username: "arun", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, types.InsertUser{Username: "arun", Password: "other"})
	assert.ErrorIs(t, err, pkgerrors.ErrConflict)

	// 40 runes but 80 bytes.
	_, err = svc.Create(ctx, types.InsertUser{Username: "accent", Password: strings.Repeat("é", 40)})
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidArgument)

	n, err := r.Users.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestServicesOverGormStore(t *testing.T) {
	ctx := context.Background()
	r := repos.NewGorm(testutil.DB(t), testutil.Logger(t))
	testutil.SeedScholarship(t, ctx, r, "TN", "merit", "Tamil Nadu", true)
	testutil.SeedScholarship(t, ctx, r, "Closed", "merit", "Tamil Nadu", false)

	svc := NewScholarshipService(testutil.Logger(t), r.Scholarships)
	got, err := svc.List(ctx, ScholarshipFilter{State: "Tamil Nadu"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TN", got[0].Name)
	require.NotNil(t, got[0].State)
	assert.Equal(t, "Tamil Nadu", *got[0].State)
}

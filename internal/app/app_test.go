package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
)

func testConfig(driver string) Config {
	cfg := Config{
		Store:   StoreConfig{Driver: driver},
		Seed:    SeedConfig{DataDir: "../seed/testdata"},
		Metrics: MetricsConfig{Enabled: true},
	}
	applyDefaults(&cfg)
	return cfg
}

func TestNewSeedsBeforeServing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, driver := range []string{StoreMemory, StoreSQLite} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(driver)
			if driver == StoreSQLite {
				cfg.Store.DSN = "file:app_" + t.Name()[len("TestNewSeedsBeforeServing/"):] + "?mode=memory&cache=shared"
			}
			a, err := New(ctx, testutil.Logger(t), cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = a.Close(ctx) })

			assert.Empty(t, a.SeedReport.Failed())

			n, err := a.Repos.Colleges.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, n)

			rec := httptest.NewRecorder()
			a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/questions?category=verbal", nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Book : Author :: Song : ?")

			rec = httptest.NewRecorder()
			a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `careerpath_seed_records_total{source="colleges"} 3`)
		})
	}
}

func TestNewWithMissingDataDirStillServes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := testConfig(StoreMemory)
	cfg.Seed.DataDir = t.TempDir()

	a, err := New(ctx, testutil.Logger(t), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })

	assert.Len(t, a.SeedReport.Failed(), 3)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/colleges", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/study-materials", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Commerce Practical Guide")
}

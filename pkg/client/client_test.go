package client_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norce-drilling/wellbore-api/internal/config"
	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	repo "github.com/norce-drilling/wellbore-api/internal/infrastructure/repository/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver"
	"github.com/norce-drilling/wellbore-api/pkg/client"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))
	tracker := usage.NewTracker(nil, usage.WithClock(clock))

	cfg := &config.Config{ServiceName: "wellbore-api", Environment: "test", APIBasePath: client.DefaultBasePath}
	svc := wellbore.NewService(repo.NewInMemoryRepository(), zerolog.Nop())
	srv := httptest.NewServer(httpserver.New(cfg, zerolog.Nop(), svc, tracker).Handler())
	t.Cleanup(srv.Close)

	return client.New(srv.URL+client.DefaultBasePath, client.WithTimeout(5*time.Second))
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	name := "Ullrigg test bore"
	wb := wellbore.WellBore{
		MetaInfo:      &wellbore.MetaInfo{ID: uuid.New()},
		Name:          &name,
		SidetrackType: wellbore.SidetrackTechnical,
	}
	require.NoError(t, c.Create(ctx, wb))

	ids, err := c.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{wb.ID()}, ids)

	got, err := c.Get(ctx, wb.ID())
	require.NoError(t, err)
	assert.Equal(t, wellbore.SidetrackTechnical, got.SidetrackType)

	renamed := "renamed"
	wb.Name = &renamed
	require.NoError(t, c.Update(ctx, wb))

	all, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "renamed", *all[0].Name)

	infos, err := c.ListMetaInfo(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	require.NoError(t, c.Delete(ctx, wb.ID()))
	_, err = c.Get(ctx, wb.ID())
	assert.True(t, client.IsNotFound(err))

	snap, err := c.UsageStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.History(usage.MetricGetWellBoreByIDPerDay).Total())
	assert.Equal(t, uint64(1), snap.History(usage.MetricPostWellBorePerDay).Total())
}

func TestClient_ConflictError(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	wb := wellbore.WellBore{MetaInfo: &wellbore.MetaInfo{ID: uuid.New()}}

	require.NoError(t, c.Create(ctx, wb))
	err := c.Create(ctx, wb)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "conflict_error", apiErr.Type)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.False(t, client.IsNotFound(err))
}

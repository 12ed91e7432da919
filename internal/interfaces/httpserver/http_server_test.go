package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norce-drilling/wellbore-api/internal/config"
	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	repo "github.com/norce-drilling/wellbore-api/internal/infrastructure/repository/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/usagestore"
	"github.com/norce-drilling/wellbore-api/internal/utils/platformerrors"
)

const basePath = "/WellBore/api"

type testServer struct {
	handler http.Handler
	tracker *usage.Tracker
	fs      afero.Fs
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home", 0o755))

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))

	tracker := usage.NewTracker(usagestore.NewFileStore(fs, "/home/history.json"), usage.WithClock(clock))
	cfg := &config.Config{
		ServiceName:     "wellbore-api",
		Environment:     "test",
		HTTPPort:        8080,
		APIBasePath:     basePath,
		ShutdownTimeout: time.Second,
	}
	svc := wellbore.NewService(repo.NewInMemoryRepository(), zerolog.Nop())
	server := New(cfg, zerolog.Nop(), svc, tracker)

	return &testServer{handler: server.Handler(), tracker: tracker, fs: fs}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, basePath+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) total(m usage.Metric) uint64 {
	return s.tracker.Snapshot().History(m).Total()
}

func newWellBore() wellbore.WellBore {
	name := "Well A - main bore"
	return wellbore.WellBore{
		MetaInfo: &wellbore.MetaInfo{ID: uuid.New()},
		Name:     &name,
	}
}

func TestWellBoreRoutes_CRUD(t *testing.T) {
	s := newTestServer(t)
	wb := newWellBore()
	id := wb.ID().String()

	w := s.do(t, http.MethodPost, "/WellBore", wb)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/WellBore", wb)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/WellBore", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ids []uuid.UUID
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ids))
	assert.Equal(t, []uuid.UUID{wb.ID()}, ids)

	w = s.do(t, http.MethodGet, "/WellBore/MetaInfo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var infos []wellbore.MetaInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, wb.ID(), infos[0].ID)

	w = s.do(t, http.MethodGet, "/WellBore/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got wellbore.WellBore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *wb.Name, *got.Name)

	renamed := "renamed"
	wb.Name = &renamed
	w = s.do(t, http.MethodPut, "/WellBore/"+id, wb)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/WellBore/HeavyData", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []wellbore.WellBore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "renamed", *all[0].Name)

	w = s.do(t, http.MethodDelete, "/WellBore/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/WellBore/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWellBoreRoutes_ClientErrors(t *testing.T) {
	s := newTestServer(t)
	stored := newWellBore()
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/WellBore", stored).Code)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"get malformed id", http.MethodGet, "/WellBore/not-a-uuid", nil, http.StatusBadRequest},
		{"get nil id", http.MethodGet, "/WellBore/" + uuid.Nil.String(), nil, http.StatusBadRequest},
		{"get unknown id", http.MethodGet, "/WellBore/" + uuid.NewString(), nil, http.StatusNotFound},
		{"post without meta info", http.MethodPost, "/WellBore", map[string]any{"name": "x"}, http.StatusBadRequest},
		{"post with nil id", http.MethodPost, "/WellBore", map[string]any{"metaInfo": map[string]any{"id": uuid.Nil}}, http.StatusBadRequest},
		{"put id mismatch", http.MethodPut, "/WellBore/" + stored.ID().String(), newWellBore(), http.StatusBadRequest},
		{"put empty body", http.MethodPut, "/WellBore/" + uuid.NewString(), nil, http.StatusBadRequest},
		{"delete unknown", http.MethodDelete, "/WellBore/" + uuid.NewString(), nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)

			var resp platformerrors.HTTPErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.NotEmpty(t, resp.Error.Message)
			assert.NotEmpty(t, resp.Error.RequestID)
		})
	}

	t.Run("put missing wellbore", func(t *testing.T) {
		other := newWellBore()
		w := s.do(t, http.MethodPut, "/WellBore/"+other.ID().String(), other)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWellBoreRoutes_EachRouteCountsOneMetric(t *testing.T) {
	id := "/" + uuid.NewString()
	tests := []struct {
		method string
		path   string
		metric usage.Metric
	}{
		{http.MethodGet, "", usage.MetricGetAllWellBoreIDPerDay},
		{http.MethodGet, "/MetaInfo", usage.MetricGetAllWellBoreMetaInfoPerDay},
		{http.MethodGet, id, usage.MetricGetWellBoreByIDPerDay},
		{http.MethodGet, "/HeavyData", usage.MetricGetAllWellBorePerDay},
		{http.MethodPost, "", usage.MetricPostWellBorePerDay},
		{http.MethodPut, id, usage.MetricPutWellBoreByIDPerDay},
		{http.MethodDelete, id, usage.MetricDeleteWellBoreByIDPerDay},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			s := newTestServer(t)
			// Failing calls are counted too.
			s.do(t, tt.method, "/WellBore"+tt.path, nil)

			for _, m := range usage.Metrics {
				want := uint64(0)
				if m == tt.metric {
					want = 1
				}
				assert.Equal(t, want, s.total(m), m)
			}
		})
	}
}

func TestUsageStatisticsRoute(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 3; i++ {
		s.do(t, http.MethodPost, "/WellBore", newWellBore())
	}

	w := s.do(t, http.MethodGet, "/WellBoreUsageStatistics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snap usage.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	post := snap.History(usage.MetricPostWellBorePerDay)
	require.Len(t, post.Data, 1)
	assert.Equal(t, uint64(3), post.Data[0].Count)
	assert.Empty(t, snap.History(usage.MetricGetAllWellBoreIDPerDay).Data)

	// The first increment wrote the snapshot file.
	exists, err := afero.Exists(s.fs, "/home/history.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCoreRoutes(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/healthz", "/readyz", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			s.handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, basePath+"/WellBore", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

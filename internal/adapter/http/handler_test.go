package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-judge/internal/adapter/memory"
	"mesa-judge/internal/adapter/usecase"
	"mesa-judge/internal/core/anomaly"
	"mesa-judge/internal/core/domain"
	"mesa-judge/internal/core/judgment"
	"mesa-judge/internal/core/override"
	"mesa-judge/internal/core/port"
	"mesa-judge/internal/core/port/mocks"
	"mesa-judge/internal/metrics"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func history(profits ...float64) []domain.DailyRecord {
	out := make([]domain.DailyRecord, len(profits))
	for i, p := range profits {
		out[i] = domain.NewDailyRecord(now.AddDate(0, 0, i-len(profits)+1), 10000, 10000+p, 5, 20)
	}
	return out
}

func newServer(t *testing.T) (*httptest.Server, *mocks.MockRecordSource) {
	t.Helper()
	source := mocks.NewMockRecordSource(t)
	engine, err := judgment.NewEngine(domain.DefaultJudgmentConfig(), nil)
	require.NoError(t, err)
	detector, err := anomaly.NewDetector(domain.DefaultAnomalyConfig())
	require.NoError(t, err)
	store := override.NewStore(memory.NewOverrideRepository(), time.UTC, override.WithClock(clock))
	reg := metrics.NewRegistry()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewJudgmentUseCase(source, engine, detector, store, logger, usecase.Options{Now: clock, Metrics: reg})
	srv := httptest.NewServer(NewHandler(svc, logger, reg.Handler(), []string{"https://ops.example.com"}).Router())
	t.Cleanup(srv.Close)
	return srv, source
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRunJudgments(t *testing.T) {
	srv, source := newServer(t)
	source.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return([]domain.Campaign{
		{Key: "c1", DisplayName: "Spring_Re", Records: history(-100, -100, -100)},
		{Key: "c2", DisplayName: "Brand", Records: history(3000, 3000)},
	}, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/judgments", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body reportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.RunID)
	assert.Equal(t, domain.Summary{Stop: 1, Continue: 1, Total: 2}, body.Summary)
	require.Len(t, body.Results, 2)
	assert.Equal(t, "STOP", body.Results[0].Classification)
	assert.True(t, body.Results[0].IsCreativeRefreshed)
	assert.Contains(t, body.Results[0].ReasonText, "3 consecutive loss days")
	assert.Equal(t, "CONTINUE", body.Results[1].Classification)
}

func TestRunJudgments_SourceError(t *testing.T) {
	srv, source := newServer(t)
	source.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/judgments", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestJudgeBatch(t *testing.T) {
	srv, _ := newServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/judgments", `{"campaigns":[
		{"key":"c1","display_name":"Launch_Re","records":[
			{"date":"2024-05-08","spend":100,"revenue":50},
			{"date":"2024-05-09","spend":100,"revenue":50},
			{"date":"2024-05-10","spend":100,"revenue":50}]},
		{"key":"c2"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body reportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, "STOP", body.Results[0].Classification)
	assert.Equal(t, "CHECK", body.Results[1].Classification)
	assert.Equal(t, []string{"no rule matched"}, body.Results[1].ReasonText)
}

func TestJudgeBatch_BadRequests(t *testing.T) {
	srv, _ := newServer(t)
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"campaigns":`},
		{name: "missing campaigns", body: `{}`},
		{name: "missing key", body: `{"campaigns":[{"display_name":"x"}]}`},
		{name: "bad date", body: `{"campaigns":[{"key":"c1","records":[{"date":"10/05/2024"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, srv.URL+"/api/v1/judgments", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestOverrides(t *testing.T) {
	srv, source := newServer(t)
	loser := &domain.Campaign{Key: "c1", DisplayName: "Spring_Re", Records: history(-100, -100, -100)}
	source.EXPECT().GetCampaign(mock.Anything, "c1", mock.Anything).Return(loser, nil)
	source.EXPECT().GetCampaign(mock.Anything, "nope", mock.Anything).Return(nil, port.ErrCampaignNotFound)

	resp := do(t, http.MethodPut, srv.URL+"/api/v1/overrides/c1", `{"classification":"continue","memo":"client asked"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var o overrideResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	assert.Equal(t, "STOP", o.OriginalClassification)
	assert.Equal(t, "CONTINUE", o.NewClassification)
	assert.Equal(t, "client asked", o.Memo)
	assert.True(t, o.ExpiresAt.Equal(time.Date(2024, 5, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)))

	// Same as computed clears it.
	resp = do(t, http.MethodPut, srv.URL+"/api/v1/overrides/c1", `{"classification":"STOP"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodPut, srv.URL+"/api/v1/overrides/c1", `{"classification":"PAUSE"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPut, srv.URL+"/api/v1/overrides/c1", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPut, srv.URL+"/api/v1/overrides/nope", `{"classification":"CHECK"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, srv.URL+"/api/v1/overrides/c1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestAnomaliesAndMetrics(t *testing.T) {
	srv, source := newServer(t)
	source.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return([]domain.Campaign{
		{Key: "crash", Records: history(1000, 1000, 1000, -5000)},
	}, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/anomalies", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var findings []anomalyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&findings))
	require.NotEmpty(t, findings)
	assert.Equal(t, "crash", findings[0].CampaignKey)
	assert.Equal(t, "profit", findings[0].Metric)
	assert.Equal(t, "critical", findings[0].Severity)
	assert.Equal(t, "drop", findings[0].Kind)

	resp = do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `anomaly_findings_total{metric="profit",severity="critical"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/overrides/c1", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://ops.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "https://ops.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRunJudgments_SourceUnavailable(t *testing.T) {
	srv, source := newServer(t)
	source.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, port.ErrSourceUnavailable)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/judgments", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

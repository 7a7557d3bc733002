package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/fixtures"
	"australia-analytics/internal/storage"
	"australia-analytics/internal/storage/memory"
	"australia-analytics/internal/storage/resilient"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeBreaker string

func (b fakeBreaker) State() string { return string(b) }

// unavailablePopulation fails every read the way an open breaker does.
type unavailablePopulation struct{ storage.PopulationStore }

func (unavailablePopulation) GetFromYear(context.Context, int) ([]*domain.PopulationRecord, error) {
	return nil, fmt.Errorf("population.GetFromYear: %w", resilient.ErrUnavailable)
}

func (unavailablePopulation) GetAll(context.Context) ([]*domain.PopulationRecord, error) {
	return nil, fmt.Errorf("population.GetAll: %w", resilient.ErrUnavailable)
}

func fixtureStores(t *testing.T) (*memory.PopulationStore, *memory.ElectionStore) {
	t.Helper()
	population := memory.NewPopulationStore()
	elections := memory.NewElectionStore()
	if err := fixtures.Load(context.Background(), population, elections); err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	return population, elections
}

func newTestServer(t *testing.T, population storage.PopulationStore, elections storage.ElectionStore, info Info) *httptest.Server {
	t.Helper()

	divisions, err := fixtures.Divisions()
	if err != nil {
		t.Fatalf("divisions: %v", err)
	}
	svc := NewService(population, elections, divisions, DefaultOptions(), quietLogger)
	h, err := NewHandler(svc, info, quietLogger)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	ts := httptest.NewServer(h.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	population, elections := fixtureStores(t)
	return newTestServer(t, population, elections, Info{Version: "test", Warehouse: "memory"})
}

func mustGetJSON[T any](t *testing.T, client *http.Client, url string, out *T) *http.Response {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	return resp
}

func mustGetBody(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

type figureJSON struct {
	Data []struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"data"`
	Layout map[string]any `json:"layout"`
}

func (f figureJSON) names() []string {
	var names []string
	for _, d := range f.Data {
		if d.Name != "" {
			names = append(names, d.Name)
		}
	}
	return names
}

func TestForecast(t *testing.T) {
	ts := newFixtureServer(t)

	var fig figureJSON
	resp := mustGetJSON(t, ts.Client(), ts.URL+"/api/immigration/forecast", &fig)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	want := "Births,Births Trend,Deaths,Deaths Trend,Births Forecast,Births 95% CI,Deaths Forecast,Deaths 95% CI"
	if got := strings.Join(fig.names(), ","); got != want {
		t.Fatalf("traces=%q want=%q", got, want)
	}
}

func TestForecast_InsufficientDataOmitsForecast(t *testing.T) {
	population := memory.NewPopulationStore()
	err := population.InsertBulk(context.Background(), []*domain.PopulationRecord{
		{Year: 2024, Births: 292318, Deaths: 183000, NetMigration: 380000, Total: 27427983},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	ts := newTestServer(t, population, memory.NewElectionStore(), Info{})

	var fig figureJSON
	resp := mustGetJSON(t, ts.Client(), ts.URL+"/api/immigration/forecast", &fig)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	if got := strings.Join(fig.names(), ","); got != "Births,Deaths" {
		t.Fatalf("traces=%q want only observed series", got)
	}
}

func TestImmigrationCharts(t *testing.T) {
	ts := newFixtureServer(t)

	for _, path := range []string{
		"/api/immigration/policy",
		"/api/immigration/net-migration",
		"/api/immigration/population",
		"/api/election/first-preferences",
		"/api/election/seats",
	} {
		t.Run(path, func(t *testing.T) {
			var fig figureJSON
			resp := mustGetJSON(t, ts.Client(), ts.URL+path, &fig)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
			}
			if len(fig.Data) == 0 {
				t.Fatal("expected traces")
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Fatalf("content-type=%q", ct)
			}
		})
	}
}

func TestStates(t *testing.T) {
	ts := newFixtureServer(t)

	var body struct {
		States []string `json:"states"`
	}
	resp := mustGetJSON(t, ts.Client(), ts.URL+"/api/election/states", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	if got := strings.Join(body.States, ","); got != "ACT,NSW,NT,QLD,SA,TAS,VIC,WA" {
		t.Fatalf("states=%q", got)
	}
}

func TestMap(t *testing.T) {
	ts := newFixtureServer(t)

	var fig figureJSON
	resp := mustGetJSON(t, ts.Client(), ts.URL+"/api/election/map?state=vic", &fig)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	for _, d := range fig.Data {
		if d.Type != "choroplethmap" {
			t.Fatalf("trace type=%q want choroplethmap", d.Type)
		}
	}
	title, _ := fig.Layout["title"].(map[string]any)
	if title["text"] != "Australian Federal Election 2025 - VIC" {
		t.Fatalf("title=%v", title["text"])
	}
}

func TestMap_InvalidState(t *testing.T) {
	ts := newFixtureServer(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{name: "missing state", query: "", status: http.StatusBadRequest},
		{name: "unknown state", query: "?state=ZZ", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			resp := mustGetJSON(t, ts.Client(), ts.URL+"/api/election/map"+tt.query, &body)

			if resp.StatusCode != tt.status {
				t.Fatalf("status=%d want=%d", resp.StatusCode, tt.status)
			}
			if _, ok := body["error"]; !ok {
				t.Fatalf("expected error field, got %v", body)
			}
		})
	}
}

func TestWarehouseUnavailable(t *testing.T) {
	_, elections := fixtureStores(t)
	ts := newTestServer(t, unavailablePopulation{}, elections, Info{})

	var body map[string]string
	resp := mustGetJSON(t, ts.Client(), ts.URL+"/api/immigration/net-migration", &body)

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusServiceUnavailable)
	}
	if !strings.Contains(body["error"], "unavailable") {
		t.Fatalf("error=%q", body["error"])
	}

	page, _ := mustGetBody(t, ts.Client(), ts.URL+"/immigration")
	if page.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("page status=%d want=%d", page.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestPages(t *testing.T) {
	ts := newFixtureServer(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"Welcome to the Australian Data Analytics dashboard.", "cdn.plot.ly"}},
		{"/services", []string{"Data Engineering"}},
		{"/immigration", []string{"The Demographic Crossover", "Since 2012, births have changed by about", `drawFigure("forecast"`}},
		{"/election", []string{`<option value="ACT">ACT</option>`, "The ALP won 94 of 150 seats", "clearing the 75 needed"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := mustGetBody(t, ts.Client(), ts.URL+tt.path)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Fatalf("content-type=%q", ct)
			}
			for _, w := range tt.want {
				if !strings.Contains(body, w) {
					t.Errorf("body missing %q", w)
				}
			}
		})
	}
}

func TestReport(t *testing.T) {
	ts := newFixtureServer(t)

	resp, body := mustGetBody(t, ts.Client(), ts.URL+"/report")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	if !strings.HasPrefix(body, "# Australian Population Report") {
		t.Fatalf("unexpected report: %.60q", body)
	}

	resp, body = mustGetBody(t, ts.Client(), ts.URL+"/report/forecast.csv")
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content-type=%q", ct)
	}
	// Header plus one row per forecast year.
	if lines := strings.Count(body, "\n"); lines != 25 {
		t.Fatalf("lines=%d want=25", lines)
	}
}

func TestHealth(t *testing.T) {
	ts := newFixtureServer(t)

	resp, body := mustGetBody(t, ts.Client(), ts.URL+"/health")
	if resp.StatusCode != http.StatusOK || body != "ok" {
		t.Fatalf("status=%d body=%q", resp.StatusCode, body)
	}
}

func TestStatus(t *testing.T) {
	population, elections := fixtureStores(t)
	svc := NewService(population, elections, nil, DefaultOptions(), quietLogger)
	h, err := NewHandler(svc, Info{Version: "v1.2.3", Warehouse: "clickhouse", Breaker: fakeBreaker("open")}, quietLogger)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	start := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	now := start
	h.WithClock(func() time.Time { return now })
	now = start.Add(90 * time.Second)

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var status StatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != "degraded" || status.BreakerState != "open" {
		t.Errorf("status=%q breaker=%q want degraded/open", status.Status, status.BreakerState)
	}
	if status.Uptime != "1m30s" {
		t.Errorf("uptime=%q want 1m30s", status.Uptime)
	}
	if status.Version != "v1.2.3" || status.Warehouse != "clickhouse" {
		t.Errorf("info=%+v", status)
	}
}

func TestStatus_CountsRejectedAPIRequests(t *testing.T) {
	population, elections := fixtureStores(t)
	svc := NewService(population, elections, nil, DefaultOptions(), quietLogger)
	h, err := NewHandler(svc, Info{Version: "test", Warehouse: "memory"}, quietLogger)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	routes := h.Routes()

	for _, target := range []string{
		"/api/election/map",
		"/api/election/map?state=ZZ",
		"/api/election/map?state=vic",
	} {
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var status StatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.APIRequests != 3 {
		t.Errorf("api_requests=%d want 3", status.APIRequests)
	}
	if status.BreakerState != "" || status.Status != "running" {
		t.Errorf("status=%q breaker=%q want running with no breaker", status.Status, status.BreakerState)
	}
}

func TestMetrics(t *testing.T) {
	ts := newFixtureServer(t)

	_, _ = mustGetBody(t, ts.Client(), ts.URL+"/api/election/seats")
	resp, body := mustGetBody(t, ts.Client(), ts.URL+"/metrics")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(body, `australia_analytics_http_requests_total{code="200",route="/api/election/seats"}`) {
		t.Fatal("expected request counter for the seats route")
	}
}

func TestRouting_UnknownAPIRoute(t *testing.T) {
	ts := newFixtureServer(t)

	var body map[string]string
	resp := mustGetJSON(t, ts.Client(), ts.URL+"/api/does-not-exist", &body)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusNotFound)
	}
	if body["error"] == "" {
		t.Fatal("expected JSON error body")
	}
}

func TestRouting_WrongMethod(t *testing.T) {
	ts := newFixtureServer(t)

	resp, err := ts.Client().Post(ts.URL+"/api/election/seats", "application/json", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newFixtureServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/election/seats", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin=%q want=*", got)
	}
}

func TestThousands(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1525.4, "1,525"},
		{-3375, "-3,375"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := thousands(tt.v); got != tt.want {
			t.Errorf("thousands(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

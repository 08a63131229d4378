package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/config"
	"telegram-cocktail-bot/internal/usecase"
)

type fakeStatsUC struct {
	stats  *usecase.Stats
	err    error
	window time.Duration
}

func (f *fakeStatsUC) GetCounts(ctx context.Context, window time.Duration) (*usecase.Stats, error) {
	f.window = window
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func newTestServer(stats *fakeStatsUC) *Server {
	logger := zerolog.Nop()
	cfg := &config.AdminConfig{
		APIKey:        "test-key",
		SessionSecret: "test-secret",
		SessionTTL:    30 * time.Minute,
	}
	return NewServer(stats, cfg, false, &logger)
}

func TestStatsRequiresAuth(t *testing.T) {
	srv := httptest.NewServer(newTestServer(&fakeStatsUC{}).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", resp.StatusCode)
	}
}

func TestStatsWithBearerAPIKey(t *testing.T) {
	stats := &fakeStatsUC{stats: &usecase.Stats{
		TotalUsers: 2,
		Events:     9,
		ByCommand:  map[string]int{"command_random": 9},
	}}
	srv := httptest.NewServer(newTestServer(stats).Router())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/stats?hours=24", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}

	var body statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.TotalUsers != 2 || body.Events != 9 || body.WindowHours != 24 {
		t.Errorf("unexpected body %+v", body)
	}
	if stats.window != 24*time.Hour {
		t.Errorf("usecase saw window %v, want 24h", stats.window)
	}
}

func TestStatsRejectsBadHours(t *testing.T) {
	srv := httptest.NewServer(newTestServer(&fakeStatsUC{}).Router())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/stats?hours=-3", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", resp.StatusCode)
	}
}

func TestLoginMintsUsableSession(t *testing.T) {
	stats := &fakeStatsUC{stats: &usecase.Stats{}}
	srv := httptest.NewServer(newTestServer(stats).Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/login", "application/json", strings.NewReader(`{"api_key":"test-key"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Errorf("stats with session token: status %d, want 200", resp2.StatusCode)
	}
}

func TestLoginRejectsWrongKey(t *testing.T) {
	srv := httptest.NewServer(newTestServer(&fakeStatsUC{}).Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/login", "application/json", strings.NewReader(`{"api_key":"nope"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(newTestServer(&fakeStatsUC{}).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want 200", resp.StatusCode)
	}
}

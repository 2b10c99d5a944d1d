package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"termflip/engine"
	"termflip/types"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"trace", slog.Level(-8)},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelError},
	}
	for _, tt := range tests {
		if got := logLevel(tt.input); got != tt.want {
			t.Errorf("logLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := engine.NewMetrics(reg)

	board, err := engine.NewBoard(8, 8)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	g := engine.NewGame(board, engine.WithMetrics(m))
	if !g.PlayMovement(g.PlayerMovement(types.Loc(4, 2))) {
		t.Fatal("e3 should be legal")
	}

	rec := httptest.NewRecorder()
	metricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`termflip_moves_total{player="Black"} 1`, "termflip_flips_total 1"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q:\n%s", want, body)
		}
	}
}

package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/botprofile/personaicons/internal/platform/telemetry/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func scrape(t *testing.T) string {
	t.Helper()
	recorder := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(recorder.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	return string(body)
}

func TestRecordLookup(t *testing.T) {
	tests := []struct {
		name   string
		set    string
		result metrics.Result
		want   string
	}{
		{name: "hit", set: "archetypes", result: metrics.ResultHit, want: `persona_icons_lookups_total{result="hit",set="archetypes"}`},
		{name: "miss", set: "green_ember", result: metrics.ResultMiss, want: `persona_icons_lookups_total{result="miss",set="green_ember"}`},
		{name: "empty set", set: "", result: metrics.ResultUnknownSet, want: `persona_icons_lookups_total{result="unknown_set",set="unknown"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics.RecordLookup(tt.set, tt.result)
			if body := scrape(t); !strings.Contains(body, tt.want) {
				t.Fatalf("expected %s in metrics output", tt.want)
			}
		})
	}
}

func TestRecordDefaultPick(t *testing.T) {
	metrics.RecordDefaultPick("meta")
	if body := scrape(t); !strings.Contains(body, `persona_icons_default_picks_total{set="meta"}`) {
		t.Fatal("expected default pick counter in metrics output")
	}
}

func TestRecordExportedFile(t *testing.T) {
	metrics.RecordExportedFile(metrics.ExportKindCatalog)
	if body := scrape(t); !strings.Contains(body, `persona_icons_exported_files_total{kind="catalog"}`) {
		t.Fatal("expected export counter in metrics output")
	}
}

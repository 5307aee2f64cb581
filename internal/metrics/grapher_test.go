package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStatus(t *testing.T) {
	if Status(nil) != "ok" {
		t.Errorf("Status(nil) = %q, want ok", Status(nil))
	}
	if Status(errors.New("boom")) != "error" {
		t.Errorf("Status(err) = %q, want error", Status(errors.New("boom")))
	}
}

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues("test_fields", "error"))
	ObserveQuery("test_fields", time.Now(), errors.New("no such table"))
	after := testutil.ToFloat64(QueriesTotal.WithLabelValues("test_fields", "error"))
	if after != before+1 {
		t.Errorf("queries_total = %f, want %f", after, before+1)
	}
}

func TestRegisterRunMetrics_Idempotent(t *testing.T) {
	RegisterRunMetrics()
	RegisterRunMetrics()
}

func TestWriteTextfile(t *testing.T) {
	RegisterRunMetrics()
	RendersTotal.WithLabelValues("ok").Inc()

	path := filepath.Join(t.TempDir(), "bentographer.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "bentographer_chart_renders_total") {
		t.Errorf("textfile missing renders counter:\n%s", data)
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	if err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

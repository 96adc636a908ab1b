package spawnjoin_test

import (
	"context"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ddromanidis/spawnjoin"
)

func TestMetricsCountSpawns(t *testing.T) {
	m := spawnjoin.NewMetrics(prometheus.NewRegistry(), "test")
	l := spawnjoin.NewLauncher(io.Discard, spawnjoin.WithMetrics(m))

	if _, err := l.Launch(context.Background(),
		spawnjoin.NewPayload("Thread 1"),
		spawnjoin.NewPayload("Thread 2"),
	); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	if got := testutil.ToFloat64(m.Spawned); got != 2 {
		t.Errorf("spawned = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SpawnFailures); got != 0 {
		t.Errorf("spawn failures = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.ActiveWorkers); got != 0 {
		t.Errorf("active workers after Launch = %v, want 0", got)
	}
}

func TestMetricsCountFailures(t *testing.T) {
	m := spawnjoin.NewMetrics(prometheus.NewRegistry(), "test")
	l := spawnjoin.NewLauncher(io.Discard, spawnjoin.WithMetrics(m), spawnjoin.WithLimit(0))

	if _, err := l.Launch(context.Background(), spawnjoin.NewPayload("Thread 1")); err == nil {
		t.Fatal("Launch succeeded with a zero limit")
	}

	if got := testutil.ToFloat64(m.SpawnFailures); got != 1 {
		t.Errorf("spawn failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Spawned); got != 0 {
		t.Errorf("spawned = %v, want 0", got)
	}
}

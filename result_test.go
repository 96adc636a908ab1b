package spawnjoin_test

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/ddromanidis/spawnjoin"
)

func TestResultOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want spawnjoin.StartupResult
	}{
		{name: "nil", err: nil, want: spawnjoin.StartupOK},
		{name: "spawn error", err: &spawnjoin.SpawnError{Result: 42}, want: 42},
		{name: "other error", err: errors.New("x"), want: spawnjoin.StartupExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spawnjoin.ResultOf(tt.err); got != tt.want {
				t.Errorf("ResultOf(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestStartupExhaustedIsEAGAIN(t *testing.T) {
	if got, want := int(spawnjoin.StartupExhausted), int(syscall.EAGAIN); got != want {
		t.Errorf("StartupExhausted = %d, want %d", got, want)
	}
}

func TestReportWriteTo(t *testing.T) {
	r := spawnjoin.Report{
		{Label: "Thread 1", Result: spawnjoin.StartupOK},
		{Label: "Thread 2", Result: -3},
	}

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	want := "Thread 1 returns: 0\nThread 2 returns: -3\n"
	if buf.String() != want {
		t.Errorf("WriteTo wrote %q, want %q", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo returned %d, want %d", n, len(want))
	}
}

func TestSpawnErrorMessage(t *testing.T) {
	err := &spawnjoin.SpawnError{Payload: spawnjoin.NewPayload("Thread 2"), Result: spawnjoin.StartupExhausted}

	if !errors.Is(err, spawnjoin.ErrSpawn) {
		t.Error("SpawnError does not match ErrSpawn")
	}
	if got := err.Error(); !strings.Contains(got, `"Thread 2"`) {
		t.Errorf("Error() = %q, want payload quoted", got)
	}
}

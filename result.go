package spawnjoin

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// StartupResult is the status of a spawn attempt, following the thread
// library convention: 0 on success, an errno value otherwise.
type StartupResult int

const (
	StartupOK        StartupResult = 0
	StartupExhausted StartupResult = StartupResult(syscall.EAGAIN)
)

// ResultOf maps a Spawn error to its StartupResult.
func ResultOf(err error) StartupResult {
	if err == nil {
		return StartupOK
	}
	var se *SpawnError
	if errors.As(err, &se) {
		return se.Result
	}
	return StartupExhausted
}

// Outcome is the start-up status of one worker of a launch.
type Outcome struct {
	Label  string
	Result StartupResult
}

// Report lists the outcomes of a launch in spawn order.
type Report []Outcome

var _ io.WriterTo = Report(nil)

// WriteTo writes one "<label> returns: <code>" line per outcome.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, o := range r {
		n, err := fmt.Fprintf(w, "%s returns: %d\n", o.Label, int(o.Result))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// OK reports whether every worker of the launch was spawned.
func (r Report) OK() bool {
	for _, o := range r {
		if o.Result != StartupOK {
			return false
		}
	}
	return true
}

package spawnjoin

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Payload is the immutable message a worker is created with. The zero value
// is an empty message.
type Payload struct {
	msg string
}

func NewPayload(msg string) Payload {
	return Payload{msg: msg}
}

func (p Payload) String() string {
	return p.msg
}

// Body builds the Runnable a worker executes for its payload.
type Body func(p Payload, out io.Writer) Runnable

// Announce is the default worker body: it writes the payload followed by a
// space and a newline, then returns.
func Announce(p Payload, out io.Writer) Runnable {
	return F(func(context.Context) error {
		if _, err := fmt.Fprintf(out, "%s \n", p.msg); err != nil {
			return fmt.Errorf("announce %q: %w", p.msg, err)
		}
		return nil
	})
}

// lockedWriter serialises writes from concurrent workers so that lines are
// never interleaved mid-write.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(b []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(b)
}

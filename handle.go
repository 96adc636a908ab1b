package spawnjoin

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle refers to one spawned worker. It is produced only by a successful
// Spawn and may be awaited once.
type Handle struct {
	id      uuid.UUID
	payload Payload

	done    chan struct{}
	err     error // written before done is closed
	awaited atomic.Bool
}

func newHandle(p Payload) *Handle {
	return &Handle{
		id:      uuid.New(),
		payload: p,
		done:    make(chan struct{}),
	}
}

func (h *Handle) ID() uuid.UUID {
	return h.id
}

func (h *Handle) Payload() Payload {
	return h.payload
}

// Done is closed once the worker has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

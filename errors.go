package spawnjoin

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawn is matched by every *SpawnError.
	ErrSpawn = errors.New("cannot allocate worker")

	ErrNilHandle      = errors.New("nil handle")
	ErrAlreadyAwaited = errors.New("handle already awaited")
)

// SpawnError reports that no worker could be created for Payload. No handle
// exists for it and it must not be awaited.
type SpawnError struct {
	Payload Payload
	Result  StartupResult
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %q: %v (code %d)", e.Payload.msg, ErrSpawn, int(e.Result))
}

func (e *SpawnError) Unwrap() error {
	return ErrSpawn
}

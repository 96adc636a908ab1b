package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ddromanidis/spawnjoin"
)

func main() {
	lg := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	reg := prometheus.NewRegistry()

	chain := spawnjoin.NewChain().
		Recover().
		Logged().
		WithLogger(lg)

	l := spawnjoin.NewLauncher(os.Stdout,
		spawnjoin.WithChain(chain),
		spawnjoin.WithLogger(lg),
		spawnjoin.WithLimit(2),
		spawnjoin.WithMetrics(spawnjoin.NewMetrics(reg, "example")),
		spawnjoin.WithWorker(flaky),
	)

	report, err := l.Launch(context.Background(),
		spawnjoin.NewPayload("alpha"),
		spawnjoin.NewPayload("beta"),
		spawnjoin.NewPayload("gamma"),
	)
	if _, werr := report.WriteTo(os.Stdout); werr != nil {
		log.Println(werr)
	}
	if errors.Is(err, spawnjoin.ErrSpawn) {
		log.Println("limit reached:", err)
	} else if err != nil {
		log.Println(err)
	}
}

// flaky announces its payload but panics most of the time; the chain's
// Recover turns the panic into an error returned by Await.
func flaky(p spawnjoin.Payload, out io.Writer) spawnjoin.Runnable {
	announce := spawnjoin.Announce(p, out)
	return spawnjoin.F(func(ctx context.Context) error {
		if rand.Int31n(10) < 8 {
			panic("test panic")
		}
		return announce.Run(ctx)
	})
}

package health

import (
	"context"
	"runtime"
	"runtime/debug"
	"slices"
	"time"

	"github.com/go-faster/errors"
)

// Pinger is a dependency that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck wraps p.Ping, naming the dependency in the error.
func PingCheck(name string, p Pinger) CheckFunc {
	return func(ctx context.Context) error {
		return errors.Wrapf(p.Ping(ctx), "ping %s", name)
	}
}

// GoroutineCountCheck fails when more than limit goroutines are running.
func GoroutineCountCheck(limit int) CheckFunc {
	return func(context.Context) error {
		if n := runtime.NumGoroutine(); n > limit {
			return errors.Errorf("goroutine count %d exceeds %d", n, limit)
		}
		return nil
	}
}

// GCMaxPauseCheck fails when a recent stop-the-world pause exceeded limit.
func GCMaxPauseCheck(limit time.Duration) CheckFunc {
	return func(context.Context) error {
		var stats debug.GCStats
		debug.ReadGCStats(&stats)
		if i := slices.IndexFunc(stats.Pause, func(p time.Duration) bool { return p > limit }); i >= 0 {
			return errors.Errorf("GC pause %s exceeds %s", stats.Pause[i], limit)
		}
		return nil
	}
}

package job_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/pkg/job"
)

func TestRunner(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	var ok, failing, panicking, disabled atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	r := job.NewRunner(l).
		Register("ok", 5*time.Millisecond, func(context.Context) error {
			ok.Add(1)
			return nil
		}).
		Register("failing", 5*time.Millisecond, func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}).
		Register("panicking", 5*time.Millisecond, func(context.Context) error {
			panicking.Add(1)
			panic("boom")
		}).
		Register("disabled", 0, func(context.Context) error {
			disabled.Add(1)
			return nil
		})

	r.Start(ctx)

	require.Eventually(t, func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	r.Wait()

	require.Zero(t, disabled.Load())
}

package animation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/goliatone/go-fitm8/pkg/animation"
	"github.com/goliatone/go-fitm8/pkg/schedule"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_StopsAfterFinalFrame(t *testing.T) {
	clock := schedule.NewManualClock(time.Unix(0, 0))
	frames := make(chan animation.Frame, 1)
	dispose := animation.Run(context.Background(), clock, 500, 400, func(f animation.Frame) {
		frames <- f
	})
	defer dispose()

	want := animation.Frames(500, 400)
	for i := range want {
		clock.Tick()
		select {
		case got := <-frames:
			require.Equal(t, want[i].Progress, got.Progress, "frame %d", i)
		case <-time.After(2 * time.Second):
			t.Fatalf("frame %d not delivered", i)
		}
	}

	require.Eventually(t, func() bool { return clock.Tickers() == 0 }, 2*time.Second, time.Millisecond)
}

func TestRun_DisposeStopsEarly(t *testing.T) {
	clock := schedule.NewManualClock(time.Unix(0, 0))
	var delivered int
	dispose := animation.Run(context.Background(), clock, 500, 400, func(animation.Frame) {
		delivered++
	})

	dispose()
	dispose()
	clock.Tick()
	require.Zero(t, delivered)
	require.Zero(t, clock.Tickers())
}

package animation

import (
	"context"
	"time"

	"github.com/goliatone/go-fitm8/pkg/schedule"
)

// FramePeriod is the frame interval, roughly one display refresh.
const FramePeriod = time.Second / 60

// Frames returns every frame from the starting progress up to completion.
func Frames(width, height float64) []Frame {
	var out []Frame
	progress := StartProgress
	for {
		frame := Layout(width, height, progress)
		out = append(out, frame)
		if frame.Done {
			return out
		}
		progress = Step(progress)
	}
}

// Run emits one frame per tick of clock until the chart is fully drawn or
// the returned disposer is called. The completed frame is always the last
// one delivered.
func Run(ctx context.Context, clock schedule.Clock, width, height float64, fn func(Frame)) schedule.Disposer {
	ctx, cancel := context.WithCancel(ctx)
	progress := StartProgress

	task := schedule.Start(ctx, clock, FramePeriod, func(time.Time) {
		frame := Layout(width, height, progress)
		progress = Step(progress)

		fn(frame)
		if frame.Done {
			cancel()
		}
	})

	return func() {
		cancel()
		task.Dispose()
	}
}

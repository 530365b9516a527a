package animation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-fitm8/pkg/animation"
)

func TestStep(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0.21},
		{0.5, 0.51},
		{0.995, 1},
		{1, 1},
		{3, 1},
	}
	for _, tc := range cases {
		if got := animation.Step(tc.in); got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Fatalf("step(%v): want %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestVisiblePoints(t *testing.T) {
	cases := map[float64]int{0: 2, 0.2: 2, 0.5: 5, 1: 11}
	for progress, want := range cases {
		if got := animation.VisiblePoints(progress); got != want {
			t.Fatalf("visible(%v): want %d, got %d", progress, want, got)
		}
	}
}

func TestLayout_FullChart(t *testing.T) {
	frame := animation.Layout(500, 400, 1)

	if !frame.Done || frame.Visible != 11 || len(frame.Markers) != 11 {
		t.Fatalf("unexpected frame summary: done=%v visible=%d markers=%d", frame.Done, frame.Visible, len(frame.Markers))
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(animation.Point{X: 40, Y: 136}, frame.Markers[0].Point, approx); diff != "" {
		t.Fatalf("first marker mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(frame.Line, "M40,136 C54,136 68,104 82,104") {
		t.Fatalf("unexpected line path %q", frame.Line)
	}
	if !strings.HasSuffix(frame.Area, "L460,360 L40,360 Z") {
		t.Fatalf("unexpected area path %q", frame.Area)
	}
	if len(frame.Horizontal) != 6 || len(frame.Vertical) != 11 {
		t.Fatalf("unexpected grid %d x %d", len(frame.Horizontal), len(frame.Vertical))
	}
	if frame.Markers[1].Color != animation.MarkerColors[1] || frame.Markers[3].Color != animation.MarkerColors[0] {
		t.Fatalf("marker colours must cycle by index")
	}
}

func TestLayout_GridSpansChartArea(t *testing.T) {
	frame := animation.Layout(500, 400, 0.2)
	top, bottom := frame.Horizontal[0], frame.Horizontal[animation.HorizontalLines-1]
	if top.From.Y != 40 || bottom.From.Y != 360 || top.To.X != 460 {
		t.Fatalf("unexpected horizontal grid %+v .. %+v", top, bottom)
	}
	left, right := frame.Vertical[0], frame.Vertical[animation.VerticalLines-1]
	if left.From.X != 40 || right.From.X != 460 || left.To.Y != 360 {
		t.Fatalf("unexpected vertical grid %+v .. %+v", left, right)
	}
}

func TestLayout_StartingFrameDrawsOneSegment(t *testing.T) {
	frame := animation.Layout(500, 400, 0.2)
	if frame.Visible != 2 || frame.Line == "" {
		t.Fatalf("starting frame must already draw a segment, got %+v", frame)
	}
	if strings.Count(frame.Line, "C") != 1 {
		t.Fatalf("expected one curve segment, got %q", frame.Line)
	}
}

func TestFrames(t *testing.T) {
	frames := animation.Frames(500, 400)
	if len(frames) < 2 {
		t.Fatalf("expected an animated sequence, got %d frames", len(frames))
	}
	if frames[0].Progress != animation.StartProgress {
		t.Fatalf("first frame must start at %v", animation.StartProgress)
	}
	last := frames[len(frames)-1]
	if !last.Done || last.Visible != len(animation.DataPoints) {
		t.Fatalf("last frame incomplete: %+v", last)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Visible < frames[i-1].Visible {
			t.Fatalf("visible points decreased at frame %d", i)
		}
		if frames[i-1].Done {
			t.Fatalf("frame %d follows a completed frame", i)
		}
	}
}

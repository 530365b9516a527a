package hero

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fitm8/pkg/animation"
	"github.com/goliatone/go-fitm8/pkg/schedule"
	"github.com/goliatone/go-fitm8/pkg/testsupport"
)

func TestStream_EmitsEveryFrameThenCloses(t *testing.T) {
	clock := schedule.NewManualClock(time.Unix(0, 0))
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "", WithClock(clock))
	require.NoError(t, err)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := server.Client().Get(server.URL + pattern + "?width=400&height=300")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	want := animation.Frames(400, 300)
	events := testsupport.NewEventReader(resp.Body)
	for i := range want {
		clock.Tick()
		event, ok := events.Next()
		require.True(t, ok, "frame %d missing", i)
		require.Equal(t, EventFrame, event.Name)

		var frame animation.Frame
		require.NoError(t, json.Unmarshal([]byte(event.Data), &frame))
		require.Equal(t, want[i].Line, frame.Line)
		require.Equal(t, want[i].Done, frame.Done)
	}

	_, ok := events.Next()
	require.False(t, ok, "stream must end after the final frame")
	require.Eventually(t, func() bool { return clock.Tickers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestStream_ClientDisconnectStopsAnimation(t *testing.T) {
	clock := schedule.NewManualClock(time.Unix(0, 0))
	server := httptest.NewServer(Handler(WithClock(clock)))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	clock.Tick()
	_, ok := testsupport.NewEventReader(resp.Body).Next()
	require.True(t, ok)

	cancel()
	require.Eventually(t, func() bool { return clock.Tickers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestStream_RejectsBadDimensions(t *testing.T) {
	for _, query := range []string{"?width=abc", "?width=10", "?height=100000", "?height=NaN"} {
		rec := testsupport.Do(t, Handler(), httptest.NewRequest(http.MethodGet, "/api/hero/stream"+query, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestStream_MethodNotAllowed(t *testing.T) {
	rec := testsupport.Do(t, Handler(), httptest.NewRequest(http.MethodPost, "/api/hero/stream", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

package testimonials

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fitm8/pkg/content"
	"github.com/goliatone/go-fitm8/pkg/schedule"
	"github.com/goliatone/go-fitm8/pkg/testsupport"
)

func TestRead_WrapsIndex(t *testing.T) {
	handler := Handler()
	n := len(content.Default().Testimonials.Items)

	rec := testsupport.Do(t, handler, httptest.NewRequest(http.MethodGet, "/api/testimonials?index=-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var slide Slide
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slide))
	require.Equal(t, n-1, slide.Index)
	require.Equal(t, n-2, slide.Prev)
	require.Equal(t, 0, slide.Next)
	require.Equal(t, n, slide.Total)
	require.Equal(t, content.Default().Testimonials.Items[n-1].Name, slide.Testimonial.Name)
}

func TestRead_NoTestimonials(t *testing.T) {
	doc := content.Default()
	doc.Testimonials.Items = nil
	rec := testsupport.Do(t, Handler(WithContent(content.NewStore(doc))), httptest.NewRequest(http.MethodGet, "/api/testimonials", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

type streamFixture struct {
	server   *httptest.Server
	clock    *schedule.ManualClock
	sessions *Sessions
	events   *testsupport.EventReader
	cancel   context.CancelFunc
}

func openStream(t *testing.T, query string) *streamFixture {
	t.Helper()
	clock := schedule.NewManualClock(time.Unix(0, 0))
	sessions := NewSessions(time.Minute)
	mux := http.NewServeMux()
	_, err := RegisterRoutes(mux, "", WithClock(clock), WithSessions(sessions), WithInterval(5*time.Second))
	require.NoError(t, err)

	server := httptest.NewServer(mux)
	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/testimonials/stream"+query, nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	fx := &streamFixture{
		server:   server,
		clock:    clock,
		sessions: sessions,
		events:   testsupport.NewEventReader(resp.Body),
		cancel:   cancel,
	}
	t.Cleanup(func() {
		cancel()
		resp.Body.Close()
		server.Close()
	})
	return fx
}

func (fx *streamFixture) next(t *testing.T, name string) Slide {
	t.Helper()
	event, ok := fx.events.Next()
	require.True(t, ok, "stream ended before %q", name)
	require.Equal(t, name, event.Name)
	var slide Slide
	require.NoError(t, json.Unmarshal([]byte(event.Data), &slide))
	return slide
}

func (fx *streamFixture) post(t *testing.T, session, action, body string) *http.Response {
	t.Helper()
	resp, err := fx.server.Client().Post(fx.server.URL+"/api/testimonials/"+session+"/"+action, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestStream_AnnouncesSessionAndAutoplays(t *testing.T) {
	fx := openStream(t, "?index=1")

	event, ok := fx.events.Next()
	require.True(t, ok)
	require.Equal(t, EventSession, event.Name)
	var opened SessionEvent
	require.NoError(t, json.Unmarshal([]byte(event.Data), &opened))
	require.NotEmpty(t, opened.Session)
	require.Equal(t, 1, opened.Index)
	require.True(t, opened.Autoplay)
	require.Equal(t, 1, fx.sessions.Len())

	fx.clock.Advance(5 * time.Second)
	require.Equal(t, 2, fx.next(t, EventSlide).Index)
}

func TestStream_ActionsDriveSession(t *testing.T) {
	fx := openStream(t, "")
	event, _ := fx.events.Next()
	var opened SessionEvent
	require.NoError(t, json.Unmarshal([]byte(event.Data), &opened))

	resp := fx.post(t, opened.Session, ActionPrev, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	last := opened.Total - 1
	require.Equal(t, last, fx.next(t, EventSlide).Index)

	resp = fx.post(t, opened.Session, ActionGoto, `{"index":0}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 0, fx.next(t, EventSlide).Index)

	resp = fx.post(t, opened.Session, ActionGoto, `{"index":99}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = fx.post(t, opened.Session, ActionHover, `{"hovered":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	hovered := fx.next(t, EventSlide)
	require.True(t, hovered.Hovered)
	require.False(t, hovered.Autoplay)

	resp = fx.post(t, opened.Session, "shuffle", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = fx.post(t, "00000000-0000-0000-0000-000000000000", ActionNext, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = fx.post(t, "not-a-session", ActionNext, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStream_CloseDisposesSession(t *testing.T) {
	fx := openStream(t, "")
	_, ok := fx.events.Next()
	require.True(t, ok)
	require.Equal(t, 2, fx.clock.Tickers())

	fx.cancel()
	require.Eventually(t, func() bool {
		return fx.sessions.Len() == 0 && fx.clock.Tickers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStream_KeepAliveIsSkippedByReaders(t *testing.T) {
	fx := openStream(t, "")
	_, ok := fx.events.Next()
	require.True(t, ok)

	fx.clock.Advance(DefaultKeepAlive)
	require.Equal(t, 1, fx.next(t, EventSlide).Index)
}

func TestSessions(t *testing.T) {
	sessions := NewSessions(0)
	_, ok := sessions.Get("nope")
	require.False(t, ok)
	require.Zero(t, sessions.Len())
}

func TestNewOptions_KeepAliveStaysBelowTTL(t *testing.T) {
	opts := NewOptions(WithSessionTTL(10*time.Second), WithKeepAlive(30*time.Second))
	require.Equal(t, 5*time.Second, opts.KeepAlive)

	opts = NewOptions(WithSessionTTL(10 * time.Second))
	require.Equal(t, 5*time.Second, opts.KeepAlive)

	opts = NewOptions(WithSessionTTL(time.Minute), WithKeepAlive(20*time.Second))
	require.Equal(t, 20*time.Second, opts.KeepAlive)

	opts = NewOptions()
	require.Equal(t, DefaultKeepAlive, opts.KeepAlive)
	require.Less(t, opts.KeepAlive, opts.SessionTTL)
}

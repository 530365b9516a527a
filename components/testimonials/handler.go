package testimonials

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
	"github.com/goliatone/go-fitm8/pkg/carousel"
	"github.com/goliatone/go-fitm8/pkg/content"
)

// Event names written to the stream.
const (
	EventSession = "session"
	EventSlide   = "slide"
)

// Navigation actions accepted on the action route.
const (
	ActionNext  = "next"
	ActionPrev  = "prev"
	ActionGoto  = "goto"
	ActionHover = "hover"
)

// Slide is the JSON view of one carousel position.
type Slide struct {
	Index       int                 `json:"index"`
	Prev        int                 `json:"prev"`
	Next        int                 `json:"next"`
	Total       int                 `json:"total"`
	Autoplay    bool                `json:"autoplay"`
	Hovered     bool                `json:"hovered"`
	Testimonial content.Testimonial `json:"testimonial"`
}

// SessionEvent opens every stream.
type SessionEvent struct {
	Session string `json:"session"`
	Slide
}

// Command is the optional body of a navigation POST.
type Command struct {
	Index   *int  `json:"index,omitempty"`
	Hovered *bool `json:"hovered,omitempty"`
}

var errNoTestimonials = httpx.StatusError{Code: http.StatusInternalServerError, Err: errors.New("testimonials: no testimonials configured")}

func newSlide(doc *content.Content, state carousel.State) Slide {
	item, index := doc.Testimonial(state.Index)
	return Slide{
		Index:       index,
		Prev:        state.Prev(),
		Next:        state.Next(),
		Total:       state.Len,
		Autoplay:    state.Autoplay,
		Hovered:     state.Hovered,
		Testimonial: item,
	}
}

func parseIndex(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// Handler serves the JSON read endpoint with default options plus overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions answers GET ?index=k with the slide at k wrapped into
// range.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodGet) {
			return
		}
		doc := opts.Content.Get()
		n := len(doc.Testimonials.Items)
		if n == 0 {
			httpx.WriteError(w, errNoTestimonials)
			return
		}
		_, index := doc.Testimonial(parseIndex(r.URL.Query().Get(opts.IndexParam)))
		httpx.WriteJSON(w, http.StatusOK, newSlide(doc, carousel.State{Index: index, Len: n}))
	})
}

// ActionHandlerWithOptions drives the session named by the "session" path
// value with the "action" path value.
func ActionHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodPost) {
			return
		}
		id := r.PathValue("session")
		c, ok := opts.Sessions.Get(id)
		if !ok {
			httpx.WriteError(w, httpx.Errorf(http.StatusNotFound, "testimonials: unknown session %q", id))
			return
		}

		var cmd Command
		if r.Body != nil {
			err := json.NewDecoder(io.LimitReader(r.Body, 4<<10)).Decode(&cmd)
			if err != nil && !errors.Is(err, io.EOF) {
				httpx.WriteError(w, httpx.Errorf(http.StatusBadRequest, "testimonials: malformed body: %v", err))
				return
			}
		}

		state, err := apply(c, r.PathValue("action"), cmd)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		opts.Sessions.Touch(id)
		httpx.WriteJSON(w, http.StatusOK, newSlide(opts.Content.Get(), state))
	})
}

func apply(c *carousel.Carousel, action string, cmd Command) (carousel.State, error) {
	switch strings.ToLower(action) {
	case ActionNext:
		return c.Next(), nil
	case ActionPrev:
		return c.Prev(), nil
	case ActionGoto:
		if cmd.Index == nil {
			return carousel.State{}, httpx.Errorf(http.StatusBadRequest, "testimonials: goto requires an index")
		}
		state, err := c.Goto(*cmd.Index)
		if errors.Is(err, carousel.ErrIndexOutOfRange) {
			return state, httpx.StatusError{Code: http.StatusBadRequest, Err: err}
		}
		return state, err
	case ActionHover:
		hovered := true
		if cmd.Hovered != nil {
			hovered = *cmd.Hovered
		}
		return c.SetHover(hovered), nil
	default:
		return carousel.State{}, httpx.Errorf(http.StatusBadRequest, "testimonials: unknown action %q", action)
	}
}

// StreamHandlerWithOptions opens a session and streams its slide changes
// until the client goes away.
func StreamHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodGet) {
			return
		}
		doc := opts.Content.Get()
		c, err := carousel.New(len(doc.Testimonials.Items))
		if err != nil {
			httpx.WriteError(w, errNoTestimonials)
			return
		}
		_, start := doc.Testimonial(parseIndex(r.URL.Query().Get(opts.IndexParam)))
		if _, err := c.Goto(start); err != nil {
			httpx.WriteError(w, err)
			return
		}

		stream, err := httpx.NewStream(w)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		ctx := r.Context()
		id := opts.Sessions.Add(c)
		logger := opts.Logger.With(zap.String("session", id))
		logger.Debug("testimonial stream opened")

		changes := make(chan carousel.State, 1)
		unsubscribe := c.Subscribe(func(state carousel.State) {
			latest(changes, state)
		})
		stopAutoplay := carousel.Autoplay(ctx, c,
			carousel.WithInterval(opts.Interval),
			carousel.WithClock(opts.Clock),
		)
		keepAlive := opts.Clock.NewTicker(opts.KeepAlive)
		defer func() {
			keepAlive.Stop()
			stopAutoplay()
			unsubscribe()
			opts.Sessions.Remove(id)
			logger.Debug("testimonial stream closed")
		}()

		if err := stream.Send(EventSession, SessionEvent{Session: id, Slide: newSlide(doc, c.Snapshot())}); err != nil {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case state := <-changes:
				if err := stream.Send(EventSlide, newSlide(opts.Content.Get(), state)); err != nil {
					logger.Debug("testimonial stream write failed", zap.Error(err))
					return
				}
			case <-keepAlive.C():
				opts.Sessions.Touch(id)
				if err := stream.Comment("ping"); err != nil {
					return
				}
			}
		}
	})
}

// latest keeps only the newest state in a one-slot channel.
func latest(ch chan carousel.State, state carousel.State) {
	for {
		select {
		case ch <- state:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

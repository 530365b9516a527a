package testsupport

import (
	"bufio"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// Do serves req through handler and returns the recorded response.
func Do(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// PostForm builds a url-encoded POST request.
func PostForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// PostJSON builds a JSON POST request.
func PostJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

// Event is one server-sent event.
type Event struct {
	ID   string
	Name string
	Data string
}

// EventReader parses server-sent events incrementally from one body.
type EventReader struct {
	scanner *bufio.Scanner
}

// NewEventReader wraps r. Use a single reader per body; the scanner buffers
// ahead of the events it has returned.
func NewEventReader(r io.Reader) *EventReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &EventReader{scanner: scanner}
}

// Next blocks until a complete event is read. Comment lines are skipped. ok
// is false once the body ends.
func (e *EventReader) Next() (Event, bool) {
	var (
		current Event
		data    []string
	)
	for e.scanner.Scan() {
		line := e.scanner.Text()
		switch {
		case line == "":
			if current.Name == "" && len(data) == 0 {
				continue
			}
			current.Data = strings.Join(data, "\n")
			return current, true
		case strings.HasPrefix(line, "id:"):
			current.ID = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
		case strings.HasPrefix(line, "event:"):
			current.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	return Event{}, false
}

// ReadEvents parses up to limit events from an SSE body. A limit of zero or
// below reads until EOF.
func ReadEvents(r io.Reader, limit int) []Event {
	var events []Event
	reader := NewEventReader(r)
	for {
		event, ok := reader.Next()
		if !ok {
			return events
		}
		events = append(events, event)
		if limit > 0 && len(events) >= limit {
			return events
		}
	}
}

package authforms

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
	"github.com/goliatone/go-fitm8/pkg/form"
)

// MaxDispatchBody caps the JSON body accepted by the dispatch endpoint.
const MaxDispatchBody = 64 << 10

// ActionPayload is the wire form of a reducer action.
type ActionPayload struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

// DispatchRequest carries the client's current state and the action to
// apply. A missing state starts from the pristine form.
//
// Secret field values never travel in State: responses blank them, posted
// ones are ignored, and the client sends the values it holds in Secrets.
// Secrets are merged into the state before the action runs; keys that are
// not secret fields of the form are ignored.
type DispatchRequest struct {
	State   *form.State       `json:"state,omitempty"`
	Secrets map[string]string `json:"secrets,omitempty"`
	Action  ActionPayload     `json:"action"`
}

// Action converts the payload into a reducer action.
func (p ActionPayload) Action() (form.Action, bool) {
	switch strings.ToLower(strings.TrimSpace(p.Type)) {
	case "change":
		return form.Change{Field: p.Field, Value: p.Value}, true
	case "submit":
		return form.Submit{}, true
	case "reset":
		return form.Reset{}, true
	default:
		return nil, false
	}
}

// DispatchHandlerWithOptions applies one action to a posted state and
// answers with the next state, secret values blanked. The form identifier is
// read from the "form" path value.
func DispatchHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodPost) {
			return
		}
		formID := r.PathValue("form")
		fm, validator, err := resolve(formID, opts)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		var req DispatchRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxDispatchBody))
		if err := decoder.Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httpx.WriteError(w, httpx.Errorf(http.StatusRequestEntityTooLarge, "authforms: body exceeds %d bytes", tooLarge.Limit))
				return
			}
			httpx.WriteError(w, httpx.Errorf(http.StatusBadRequest, "authforms: malformed body: %v", err))
			return
		}
		act, ok := req.Action.Action()
		if !ok {
			httpx.WriteError(w, httpx.Errorf(http.StatusBadRequest, "authforms: unknown action %q", req.Action.Type))
			return
		}

		current := form.InitialState(validator)
		if req.State != nil {
			current = form.Normalize(validator, *req.State)
		}
		for _, name := range fm.SecretFields() {
			current.Values[name] = req.Secrets[name]
		}
		next := form.Reduce(validator, current, act)
		httpx.WriteJSON(w, http.StatusOK, redact(fm, next))
	})
}

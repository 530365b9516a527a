package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
)

// Name is the registry key of the terminal renderer.
const Name = "tui"

// Renderer prompts for form values in a terminal and serializes form pages
// as plain text, JSON or url-encoded payloads.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	maxAttempts  int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. Without a driver option the survey driver
// bound to the process terminal is used.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatPrettyText,
		maxAttempts:  DefaultMaxAttempts,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatJSON:
		return "application/json"
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render serializes a form page together with the values and errors in
// options. Secret fields are always omitted.
func (r *Renderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, ok := page.Data.(model.Form)
	if !ok {
		if page.Name == render.PageLanding {
			return nil, fmt.Errorf("tui renderer: page %q is not a form", page.Name)
		}
		return nil, fmt.Errorf("tui renderer: page %q expects model.Form, got %T", page.Name, page.Data)
	}

	values := publicValues(f, options.Values)
	errs := options.Errors
	if errs == nil {
		errs = form.ErrorMap{}
	}

	switch r.outputFormat {
	case OutputFormatJSON:
		return marshalJSON(f, values, errs)
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for _, field := range f.Fields {
			if value, ok := values[field.Name]; ok {
				encoded.Set(field.Name, value)
			}
		}
		return []byte(encoded.Encode()), nil
	default:
		return r.pretty(f, values, errs), nil
	}
}

type submission struct {
	Form   string            `json:"form"`
	Valid  bool              `json:"valid"`
	Values map[string]string `json:"values"`
	Errors map[string]string `json:"errors,omitempty"`
}

func marshalJSON(f model.Form, values map[string]string, errs form.ErrorMap) ([]byte, error) {
	payload := submission{
		Form:   f.ID,
		Valid:  errs.Valid(),
		Values: values,
	}
	if !errs.Valid() {
		payload.Errors = errs
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui renderer: encode json: %w", err)
	}
	return append(out, '\n'), nil
}

func (r *Renderer) pretty(f model.Form, values map[string]string, errs form.ErrorMap) []byte {
	var buf bytes.Buffer
	title := f.Title
	if title == "" {
		title = f.ID
	}
	if errs.Valid() {
		fmt.Fprintf(&buf, "%s%s: ok\n", r.theme.InfoPrefix, title)
	} else {
		fmt.Fprintf(&buf, "%s%s: %d %s\n", r.theme.ErrorPrefix, title, len(errs), plural(len(errs), "error", "errors"))
	}
	for _, field := range f.Fields {
		value, ok := values[field.Name]
		switch {
		case field.Secret:
			value = "(hidden)"
		case !ok || value == "":
			value = "-"
		case field.Type == model.InputSelect:
			value = optionLabel(field, value)
		}
		fmt.Fprintf(&buf, "  %s: %s\n", field.Label, value)
		if msg, bad := errs[field.Name]; bad {
			fmt.Fprintf(&buf, "    %s%s\n", r.theme.ErrorPrefix, msg)
		}
	}
	return buf.Bytes()
}

func publicValues(f model.Form, values form.FormState) map[string]string {
	out := map[string]string{}
	for _, field := range f.Fields {
		if field.Secret {
			continue
		}
		if value, ok := values[field.Name]; ok {
			out[field.Name] = value
		}
	}
	return out
}

func optionLabel(field model.Field, value string) string {
	for _, option := range field.Options {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func trimLabel(label string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), ":"))
}

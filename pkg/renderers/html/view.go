package html

import (
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-fitm8/pkg/animation"
	"github.com/goliatone/go-fitm8/pkg/content"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

// Template data is converted through JSON before execution, so every view
// carries its template-facing names as json tags and no methods.

type themeView struct {
	Preference string `json:"preference"`
	Class      string `json:"class"`
	Next       string `json:"next"`
	Icon       string `json:"icon"`
	Style      string `json:"style"`
	Stylesheet string `json:"stylesheet"`
	Script     string `json:"script"`
	StorageKey string `json:"storage_key"`
}

type layoutView struct {
	Page      string         `json:"page"`
	Title     string         `json:"title"`
	Brand     string         `json:"brand"`
	Nav       []content.Link `json:"nav"`
	Footer    []content.Link `json:"footer"`
	Copyright string         `json:"copyright"`
	Path      string         `json:"path"`
	Theme     themeView      `json:"theme"`
	Body      string         `json:"body"`
}

func newLayoutView(page render.Page, cfg *gotheme.RendererConfig, opts render.RenderOptions, doc *content.Content, body string) layoutView {
	pref := opts.Preference
	if parsed, ok := theme.ParsePreference(cfg.Variant); ok && opts.Theme != nil {
		pref = parsed
	}

	view := layoutView{
		Page:      page.Name,
		Title:     doc.Brand,
		Brand:     doc.Brand,
		Nav:       doc.Nav,
		Footer:    doc.Footer.Links,
		Copyright: doc.Copyright,
		Path:      opts.Path,
		Body:      body,
		Theme: themeView{
			Preference: pref.String(),
			Class:      pref.ClassName(),
			Next:       pref.Toggle().String(),
			Icon:       "moon",
			Style:      theme.CSSVarsStyle(cfg.CSSVars),
			StorageKey: theme.StorageKey,
		},
	}
	if pref.IsDark() {
		view.Theme.Icon = "sun"
	}
	if cfg.AssetURL != nil {
		view.Theme.Stylesheet = cfg.AssetURL(theme.AssetStylesheet)
		view.Theme.Script = cfg.AssetURL(theme.AssetScript)
	}
	if form, ok := page.Data.(model.Form); ok && form.Title != "" {
		view.Title = form.Title + " | " + doc.Brand
	}
	if view.Path == "" {
		view.Path = "/"
		if form, ok := page.Data.(model.Form); ok && form.Action != "" {
			view.Path = form.Action
		}
	}
	return view
}

type dotView struct {
	Index  int  `json:"index"`
	Number int  `json:"number"`
	Active bool `json:"active"`
}

type slideView struct {
	Index   int                 `json:"index"`
	Prev    int                 `json:"prev"`
	Next    int                 `json:"next"`
	Total   int                 `json:"total"`
	Item    content.Testimonial `json:"item"`
	Initial string              `json:"initial"`
	Dots    []dotView           `json:"dots"`
}

func newSlideView(doc *content.Content, index int) slideView {
	item, index := doc.Testimonial(index)
	total := len(doc.Testimonials.Items)
	if total == 0 {
		return slideView{}
	}
	view := slideView{
		Index:   index,
		Prev:    (index - 1 + total) % total,
		Next:    (index + 1) % total,
		Total:   total,
		Item:    item,
		Initial: item.Initial(),
		Dots:    make([]dotView, total),
	}
	for i := range view.Dots {
		view.Dots[i] = dotView{Index: i, Number: i + 1, Active: i == index}
	}
	return view
}

type landingView struct {
	Content *content.Content `json:"content"`
	Bars    []content.Bar    `json:"bars"`
	Slide   slideView        `json:"slide"`
	Chart   animation.Frame  `json:"chart"`
}

func newLandingView(doc *content.Content, slide int) landingView {
	return landingView{
		Content: doc,
		Bars:    doc.Dashboard.Weekly.Bars(),
		Slide:   newSlideView(doc, slide),
		Chart:   animation.Layout(animation.DefaultWidth, animation.DefaultHeight, 1),
	}
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type fieldView struct {
	Name         string       `json:"name"`
	ID           string       `json:"id"`
	Label        string       `json:"label"`
	Type         string       `json:"type"`
	Placeholder  string       `json:"placeholder"`
	Icon         string       `json:"icon"`
	Options      []optionView `json:"options"`
	Min          string       `json:"min"`
	Max          string       `json:"max"`
	Autocomplete string       `json:"autocomplete"`
	Reveal       bool         `json:"reveal"`
	Aside        *model.Link  `json:"aside"`
	Value        string       `json:"value"`
	Error        string       `json:"error"`
	ErrorID      string       `json:"error_id"`
	Invalid      bool         `json:"invalid"`
	Half         bool         `json:"half"`
	HTML         string       `json:"html"`
}

type formView struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Action      string               `json:"action"`
	Method      string               `json:"method"`
	Submit      string               `json:"submit"`
	Prompt      string               `json:"prompt"`
	Footer      model.Link           `json:"footer"`
	Fields      []fieldView          `json:"fields"`
	Hidden      []render.HiddenField `json:"hidden"`
	ErrorCount  int                  `json:"error_count"`
}

// newFormView folds values and errors into the form description. Secret
// fields never carry a value.
func newFormView(form model.Form, opts render.RenderOptions) formView {
	view := formView{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Action:      form.Action,
		Method:      form.Method,
		Submit:      form.Submit,
		Prompt:      form.Prompt,
		Footer:      form.Footer,
		Fields:      make([]fieldView, len(form.Fields)),
		Hidden:      render.SortedHiddenFields(opts.Hidden),
	}
	if view.Method == "" {
		view.Method = "post"
	}

	for i, field := range form.Fields {
		fv := fieldView{
			Name:         field.Name,
			ID:           form.ID + "-" + field.Name,
			Label:        field.Label,
			Type:         string(field.Type),
			Placeholder:  field.Placeholder,
			Icon:         field.Icon,
			Min:          field.Min,
			Max:          field.Max,
			Autocomplete: field.Autocomplete,
			Reveal:       field.Reveal,
			Aside:        field.Aside,
			Half:         field.Metadata["layout"] == "half",
		}
		if !field.Secret {
			fv.Value = opts.Values[field.Name]
		}
		if message, ok := opts.Errors[field.Name]; ok {
			fv.Error = message
			fv.ErrorID = fv.ID + "-error"
			fv.Invalid = true
			view.ErrorCount++
		}
		for _, option := range field.Options {
			fv.Options = append(fv.Options, optionView{
				Value:    option.Value,
				Label:    option.Label,
				Selected: option.Value == fv.Value,
			})
		}
		view.Fields[i] = fv
	}
	return view
}

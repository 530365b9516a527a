package model

// InputType is the HTML input type used to render a field.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputTel      InputType = "tel"
	InputNumber   InputType = "number"
	InputPassword InputType = "password"
	InputSelect   InputType = "select"
)

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Link is an auxiliary anchor rendered next to a field or in the card footer.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Field describes one form control. Reveal enables the show/hide toggle on
// password inputs; Secret values are never echoed back into a re-rendered
// form.
type Field struct {
	Name         string            `json:"name"`
	Label        string            `json:"label"`
	Type         InputType         `json:"type"`
	Placeholder  string            `json:"placeholder,omitempty"`
	Icon         string            `json:"icon,omitempty"`
	Options      []Option          `json:"options,omitempty"`
	Min          string            `json:"min,omitempty"`
	Max          string            `json:"max,omitempty"`
	Autocomplete string            `json:"autocomplete,omitempty"`
	Reveal       bool              `json:"reveal,omitempty"`
	Secret       bool              `json:"secret,omitempty"`
	Aside        *Link             `json:"aside,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Form is the top-level description consumed by renderers.
type Form struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Action      string            `json:"action"`
	Method      string            `json:"method"`
	Submit      string            `json:"submit"`
	Prompt      string            `json:"prompt"`
	Footer      Link              `json:"footer"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field looks up a field by name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames lists the field names in display order.
func (f Form) FieldNames() []string {
	names := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		names[i] = field.Name
	}
	return names
}

// SecretFields lists the fields whose values must not be echoed.
func (f Form) SecretFields() []string {
	var names []string
	for _, field := range f.Fields {
		if field.Secret {
			names = append(names, field.Name)
		}
	}
	return names
}

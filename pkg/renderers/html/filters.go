package html

import (
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// templateFilters are registered on the default engine. Markup producing
// filters return safe values so templates need no |safe.
func templateFilters() map[string]any {
	return map[string]any{
		"icon":     pongo2.FilterFunction(filterIcon),
		"stars":    pongo2.FilterFunction(filterStars),
		"gradient": pongo2.FilterFunction(filterGradient),
	}
}

func filterIcon(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(Icon(in.String())), nil
}

func filterStars(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(Stars(in.Integer())), nil
}

// filterGradient renders a {from, to} map as a CSS linear gradient. The
// parameter is the angle in degrees, 135 when omitted.
func filterGradient(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	stops, ok := in.Interface().(map[string]any)
	if !ok {
		return pongo2.AsValue(""), nil
	}
	angle := 135
	if param != nil && !param.IsNil() && param.IsInteger() {
		angle = param.Integer()
	}
	from, _ := stops["from"].(string)
	to, _ := stops["to"].(string)
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue("linear-gradient(" + strconv.Itoa(angle) + "deg, " + from + ", " + to + ")"), nil
}

package gotemplate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// toContext flattens data into plain maps, slices and scalars so templates
// see json field names. Function values at the top level pass through
// untouched.
func toContext(data any) (pongo2.Context, error) {
	var top map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		top = v
	case map[string]any:
		top = v
	default:
		plain, err := plainValue(v)
		if err != nil {
			return nil, err
		}
		m, ok := plain.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected an object, got %T", v)
		}
		return pongo2.Context(m), nil
	}

	out := make(pongo2.Context, len(top))
	for key, value := range top {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if value != nil && reflect.ValueOf(value).Kind() == reflect.Func {
			out[key] = value
			continue
		}
		plain, err := plainValue(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = plain
	}
	return out, nil
}

// plainValue round trips v through encoding/json. Whole numbers come back
// as int so templates print "3" rather than "3.000000".
func plainValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}
	return numbers(decoded), nil
}

func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for key, value := range t {
			t[key] = numbers(value)
		}
		return t
	case []any:
		for i, value := range t {
			t[i] = numbers(value)
		}
		return t
	default:
		return v
	}
}

package jpointer

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// DecodeYAML parses YAML text into a document tree built from D and A.
// Mapping keys that are not strings are formatted with fmt.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return fromYAML(v), nil
}

// EncodeYAML renders a document tree as YAML, keeping the entry order of D.
func EncodeYAML(v any) ([]byte, error) {
	out, err := yaml.Marshal(toYAML(v))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

func fromYAML(v any) any {
	switch v := v.(type) {
	case yaml.MapSlice:
		d := make(D, 0, len(v))
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			d = append(d, E{Key: key, Value: fromYAML(item.Value)})
		}
		return d
	case map[string]any:
		for k, e := range v {
			v[k] = fromYAML(e)
		}
		return v
	case []any:
		a := make(A, len(v))
		for i, e := range v {
			a[i] = fromYAML(e)
		}
		return a
	default:
		return v
	}
}

func toYAML(v any) any {
	switch v := v.(type) {
	case D:
		ms := make(yaml.MapSlice, len(v))
		for i, e := range v {
			ms[i] = yaml.MapItem{Key: e.Key, Value: toYAML(e.Value)}
		}
		return ms
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = toYAML(e)
		}
		return m
	case A:
		return toYAML([]any(v))
	case []any:
		s := make([]any, len(v))
		for i, e := range v {
			s[i] = toYAML(e)
		}
		return s
	default:
		return v
	}
}

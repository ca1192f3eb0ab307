package constraint

import (
	"encoding/json"
	"math"
)

// Spec is the untyped `{type, value}` shape constraints travel in, for
// example `{"type": "RANGE", "value": {"min": 10, "max": 20}}`.
type Spec struct {
	Type  string         `json:"type" yaml:"type"`
	Value map[string]any `json:"value,omitempty" yaml:"value,omitempty"`
}

const (
	valueMin     = "min"
	valueMax     = "max"
	valuePattern = "pattern"
)

// Descriptor converts the spec into its typed variant. A nil spec returns nil.
// An unknown type, a missing value, or a missing or non-numeric bound returns
// None so incomplete definitions fail open.
func (s *Spec) Descriptor() Descriptor {
	if s == nil {
		return nil
	}
	if len(s.Value) == 0 {
		return None{}
	}

	switch ParseKind(s.Type) {
	case KindMin:
		if min, ok := numberValue(s.Value[valueMin]); ok {
			return Min{Min: min}
		}
	case KindMax:
		if max, ok := numberValue(s.Value[valueMax]); ok {
			return Max{Max: max}
		}
	case KindRange:
		min, okMin := numberValue(s.Value[valueMin])
		max, okMax := numberValue(s.Value[valueMax])
		if okMin && okMax {
			return Range{Min: min, Max: max}
		}
	case KindRegex:
		if pattern, ok := s.Value[valuePattern].(string); ok {
			return Regex{Pattern: pattern}
		}
	}
	return None{}
}

// SpecFor converts a descriptor back into its wire shape. nil and None map to
// nil.
func SpecFor(d Descriptor) *Spec {
	switch c := d.(type) {
	case Min:
		return &Spec{Type: string(KindMin), Value: map[string]any{valueMin: c.Min}}
	case Max:
		return &Spec{Type: string(KindMax), Value: map[string]any{valueMax: c.Max}}
	case Range:
		return &Spec{Type: string(KindRange), Value: map[string]any{valueMin: c.Min, valueMax: c.Max}}
	case Regex:
		return &Spec{Type: string(KindRegex), Value: map[string]any{valuePattern: c.Pattern}}
	default:
		return nil
	}
}

func numberValue(raw any) (float64, bool) {
	var out float64
	switch v := raw.(type) {
	case float64:
		out = v
	case float32:
		out = float64(v)
	case int:
		out = float64(v)
	case int32:
		out = float64(v)
	case int64:
		out = float64(v)
	case uint:
		out = float64(v)
	case uint64:
		out = float64(v)
	case json.Number:
		return ParseNumber(v.String())
	case string:
		return ParseNumber(v)
	default:
		return 0, false
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

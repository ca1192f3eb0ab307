package render

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/message"
)

// TemplateFuncsConfig configures the template helpers.
type TemplateFuncsConfig struct {
	// HintFuncName defaults to "constraint_hint".
	HintFuncName string
	// CheckFuncName defaults to "constraint_check".
	CheckFuncName string
}

// TemplateFuncs returns helpers suitable for injecting into template engines
// (for example via pongo.WithTemplateFuncs):
//
//	constraint_hint(spec) string
//	constraint_check(value, spec) map[string]any{"valid": bool, "message": string}
//
// spec may be a constraint.Descriptor, a constraint.Spec (or pointer), or a
// map in the `{type, value}` wire shape as templates see it after JSON
// conversion. Anything else is treated as no constraint.
func TemplateFuncs(f message.Formatter, t message.Table, cfg TemplateFuncsConfig) map[string]any {
	hintName := strings.TrimSpace(cfg.HintFuncName)
	if hintName == "" {
		hintName = "constraint_hint"
	}
	checkName := strings.TrimSpace(cfg.CheckFuncName)
	if checkName == "" {
		checkName = "constraint_check"
	}

	return map[string]any{
		hintName: func(spec any) string {
			return constraint.Hint(descriptorFrom(spec), f, t)
		},
		checkName: func(value any, spec any) map[string]any {
			verdict := constraint.Evaluate(valueString(value), descriptorFrom(spec), f, t)
			return map[string]any{
				"valid":   verdict.Valid,
				"message": verdict.Message,
			}
		},
	}
}

func descriptorFrom(src any) constraint.Descriptor {
	switch v := src.(type) {
	case nil:
		return nil
	case constraint.Descriptor:
		return v
	case *constraint.Spec:
		return v.Descriptor()
	case constraint.Spec:
		return v.Descriptor()
	case map[string]any:
		payload, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		var spec constraint.Spec
		if err := json.Unmarshal(payload, &spec); err != nil {
			return nil
		}
		return spec.Descriptor()
	default:
		return nil
	}
}

func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return message.Stringify(v)
	}
}

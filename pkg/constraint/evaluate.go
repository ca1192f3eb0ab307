package constraint

import (
	"regexp"

	"github.com/goliatone/go-constraints/pkg/message"
)

// Verdict is the outcome of evaluating a value. Message is only set when Valid
// is false.
type Verdict struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func valid() Verdict { return Verdict{Valid: true} }

func invalid(msg string) Verdict { return Verdict{Message: msg} }

// Evaluate checks raw against d. f and t are only used to build the message of
// an invalid verdict.
//
// MIN and MAX report parse failures as invalid without a message; RANGE uses
// its rangeInvalid message for both parse and bound failures. A REGEX whose
// pattern does not compile is treated as satisfied.
func Evaluate(raw string, d Descriptor, f message.Formatter, t message.Table) Verdict {
	switch c := d.(type) {
	case nil, None:
		return valid()
	case Min:
		n, ok := ParseNumber(raw)
		if !ok {
			return invalid("")
		}
		if n >= c.Min {
			return valid()
		}
		return invalid(format(f, t, message.KeyRangeMin, minValues(c.Min)))
	case Max:
		n, ok := ParseNumber(raw)
		if !ok {
			return invalid("")
		}
		if n <= c.Max {
			return valid()
		}
		return invalid(format(f, t, message.KeyRangeMax, maxValues(c.Max)))
	case Range:
		if n, ok := ParseNumber(raw); ok && c.Min <= n && n <= c.Max {
			return valid()
		}
		return invalid(format(f, t, message.KeyRangeInvalid, rangeValues(c.Min, c.Max)))
	case Regex:
		re, err := compileFull(c.Pattern)
		if err != nil {
			return valid()
		}
		if re.MatchString(raw) {
			return valid()
		}
		return invalid(format(f, t, message.KeyRegexInvalid, patternValues(c.Pattern)))
	default:
		return valid()
	}
}

// Hint describes what d requires, independent of any value. It returns "" for
// nil and None.
func Hint(d Descriptor, f message.Formatter, t message.Table) string {
	switch c := d.(type) {
	case nil, None:
		return ""
	case Min:
		return format(f, t, message.KeyRangeMin, minValues(c.Min))
	case Max:
		return format(f, t, message.KeyRangeMax, maxValues(c.Max))
	case Range:
		return format(f, t, message.KeyRangeInvalid, rangeValues(c.Min, c.Max))
	case Regex:
		return format(f, t, message.KeyRegexInvalid, patternValues(c.Pattern))
	default:
		return ""
	}
}

// compileFull compiles pattern as written, so syntax errors are reported
// against the caller's source, then anchors it for whole-value matching.
func compileFull(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, err
	}
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

func format(f message.Formatter, t message.Table, key message.Key, values map[string]any) string {
	if f == nil {
		f = message.Placeholders
	}
	return f.Format(t.Lookup(key), values)
}

func minValues(min float64) map[string]any {
	return map[string]any{"min": min}
}

func maxValues(max float64) map[string]any {
	return map[string]any{"max": max}
}

func rangeValues(min, max float64) map[string]any {
	return map[string]any{"min": min, "max": max}
}

func patternValues(pattern string) map[string]any {
	return map[string]any{"pattern": pattern}
}

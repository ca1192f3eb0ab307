package message

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Formatter turns a template plus named substitutions into display text.
type Formatter interface {
	Format(tpl Template, values map[string]any) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(tpl Template, values map[string]any) string

// Format calls fn.
func (fn FormatterFunc) Format(tpl Template, values map[string]any) string {
	if fn == nil {
		return ""
	}
	return fn(tpl, values)
}

// Placeholders is the default Formatter. It substitutes every `{name}` in the
// template's DefaultMessage with the stringified value.
var Placeholders Formatter = FormatterFunc(func(tpl Template, values map[string]any) string {
	return Substitute(tpl.DefaultMessage, values)
})

// Substitute replaces every `{name}` occurrence in text with values[name].
// Placeholders without a matching value are left untouched.
func Substitute(text string, values map[string]any) string {
	if text == "" || len(values) == 0 {
		return text
	}

	names := make([]string, 0, len(values))
	for name := range values {
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := text
	for _, name := range names {
		out = strings.ReplaceAll(out, "{"+name+"}", Stringify(values[name]))
	}
	return out
}

// Stringify renders a substitution value. Floats use the shortest decimal form
// so 10 renders as "10" and 5.5 as "5.5".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

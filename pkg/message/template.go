package message

// Key names one of the templates the constraint evaluator asks for.
type Key string

const (
	KeyRangeMin     Key = "rangeMin"
	KeyRangeMax     Key = "rangeMax"
	KeyRangeInvalid Key = "rangeInvalid"
	KeyRegexInvalid Key = "regexInvalid"
)

// Template is a localizable message. ID doubles as the translation key when a
// Translator is involved; DefaultMessage is used verbatim otherwise.
type Template struct {
	ID             string `json:"id,omitempty" yaml:"id,omitempty"`
	DefaultMessage string `json:"defaultMessage" yaml:"defaultMessage"`
}

// IsZero reports whether the template carries neither an ID nor a message,
// which is what callers get back for keys missing from a Table.
func (t Template) IsZero() bool {
	return t.ID == "" && t.DefaultMessage == ""
}

// Table maps template keys to templates. Tables are owned by the caller and
// never mutated by this module.
type Table map[Key]Template

// Lookup returns the template stored under key. A missing key yields the zero
// Template; formatters decide what that renders to.
func (t Table) Lookup(key Key) Template {
	if t == nil {
		return Template{}
	}
	return t[key]
}

// DefaultTable returns a fresh copy of the English templates.
func DefaultTable() Table {
	return Table{
		KeyRangeMin: {
			ID:             "constraints.rangeMin",
			DefaultMessage: "Value must be at least {min}",
		},
		KeyRangeMax: {
			ID:             "constraints.rangeMax",
			DefaultMessage: "Value must be at most {max}",
		},
		KeyRangeInvalid: {
			ID:             "constraints.rangeInvalid",
			DefaultMessage: "Value must be a number between {min} and {max}",
		},
		KeyRegexInvalid: {
			ID:             "constraints.regexInvalid",
			DefaultMessage: "Value must match the required pattern: {pattern}",
		},
	}
}

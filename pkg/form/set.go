package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/message"
)

var (
	ErrFieldNameMissing = errors.New("form: field name is required")
	ErrDuplicateField   = errors.New("form: duplicate field")
)

// Field binds a constraint to a named input.
type Field struct {
	Name       string
	Label      string
	Constraint constraint.Descriptor
}

// Set is an ordered, immutable collection of fields keyed by name.
type Set struct {
	fields []Field
	index  map[string]int
}

// NewSet validates field names and builds a Set. Names are trimmed; empty and
// duplicate names are rejected.
func NewSet(fields ...Field) (*Set, error) {
	set := &Set{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, field := range fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return nil, ErrFieldNameMissing
		}
		if _, exists := set.index[field.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, field.Name)
		}
		set.index[field.Name] = len(set.fields)
		set.fields = append(set.fields, field)
	}
	return set, nil
}

// Fields returns a copy of the fields in declaration order.
func (s *Set) Fields() []Field {
	if s == nil || len(s.fields) == 0 {
		return nil
	}
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a field by name.
func (s *Set) Field(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	idx, ok := s.index[strings.TrimSpace(name)]
	if !ok {
		return Field{}, false
	}
	return s.fields[idx], true
}

// Len reports the number of fields.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Result aggregates the verdicts of a Set evaluation.
type Result struct {
	Valid    bool                          `json:"valid"`
	Verdicts map[string]constraint.Verdict `json:"verdicts,omitempty"`
	// Errors holds the messages of invalid verdicts that carry one.
	Errors map[string]string `json:"errors,omitempty"`
}

// Invalid returns the names of invalid fields, sorted.
func (r Result) Invalid() []string {
	var names []string
	for name, verdict := range r.Verdicts {
		if !verdict.Valid {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Validate evaluates every field whose name is present in values. Fields
// missing from values were not submitted and are skipped; an empty string is
// evaluated like any other input.
func (s *Set) Validate(values map[string]string, f message.Formatter, t message.Table) Result {
	result := Result{Valid: true}
	if s == nil {
		return result
	}

	for _, field := range s.fields {
		raw, ok := values[field.Name]
		if !ok {
			continue
		}
		verdict := constraint.Evaluate(raw, field.Constraint, f, t)
		if result.Verdicts == nil {
			result.Verdicts = make(map[string]constraint.Verdict, len(s.fields))
		}
		result.Verdicts[field.Name] = verdict
		if verdict.Valid {
			continue
		}
		result.Valid = false
		if msg := strings.TrimSpace(verdict.Message); msg != "" {
			if result.Errors == nil {
				result.Errors = make(map[string]string)
			}
			result.Errors[field.Name] = msg
		}
	}
	return result
}

// Hints returns the non-empty hint of every field, keyed by name.
func (s *Set) Hints(f message.Formatter, t message.Table) map[string]string {
	if s == nil {
		return nil
	}
	var out map[string]string
	for _, field := range s.fields {
		hint := constraint.Hint(field.Constraint, f, t)
		if hint == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(s.fields))
		}
		out[field.Name] = hint
	}
	return out
}

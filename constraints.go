// Package constraints evaluates free-text values against declarative
// MIN/MAX/RANGE/REGEX constraints and produces parameterized messages.
//
// The core lives in pkg/constraint and pkg/message; this package bundles a
// formatter and a template table behind a Validator so callers configure
// localization once.
package constraints

import (
	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/form"
	"github.com/goliatone/go-constraints/pkg/message"
)

// Descriptor aliases constraint.Descriptor for callers that only import the
// root package.
type Descriptor = constraint.Descriptor

// Verdict aliases constraint.Verdict.
type Verdict = constraint.Verdict

// Spec aliases the `{type, value}` wire shape.
type Spec = constraint.Spec

// Option configures a Validator.
type Option func(*Validator)

// WithFormatter sets the message formatter. Defaults to message.Placeholders.
func WithFormatter(f message.Formatter) Option {
	return func(v *Validator) {
		if f != nil {
			v.formatter = f
		}
	}
}

// WithTable sets the message template table. Defaults to
// message.DefaultTable().
func WithTable(t message.Table) Option {
	return func(v *Validator) {
		if t != nil {
			v.table = t
		}
	}
}

// WithTranslator formats messages through a Translator for locale, falling
// back to each template's default message.
func WithTranslator(t message.Translator, locale string, opts ...message.TranslatorOption) Option {
	return func(v *Validator) {
		v.formatter = message.NewTranslatorFormatter(t, locale, opts...)
	}
}

// Validator holds the formatter and template table used for every call. It
// carries no mutable state and is safe for concurrent use.
type Validator struct {
	formatter message.Formatter
	table     message.Table
}

// New constructs a Validator.
func New(options ...Option) *Validator {
	v := &Validator{
		formatter: message.Placeholders,
		table:     message.DefaultTable(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Validate evaluates raw against d.
func (v *Validator) Validate(raw string, d Descriptor) Verdict {
	return constraint.Evaluate(raw, d, v.formatter, v.table)
}

// ValidateSpec decodes the wire shape and evaluates raw against it.
func (v *Validator) ValidateSpec(raw string, spec *Spec) Verdict {
	return v.Validate(raw, spec.Descriptor())
}

// Hint returns the value-independent hint for d.
func (v *Validator) Hint(d Descriptor) string {
	return constraint.Hint(d, v.formatter, v.table)
}

// ValidateSet evaluates submitted values against every field of set.
func (v *Validator) ValidateSet(set *form.Set, values map[string]string) form.Result {
	return set.Validate(values, v.formatter, v.table)
}

// Hints returns the hint for every constrained field of set.
func (v *Validator) Hints(set *form.Set) map[string]string {
	return set.Hints(v.formatter, v.table)
}

var defaultValidator = New()

// Validate evaluates raw against d with the default English messages.
func Validate(raw string, d Descriptor) Verdict {
	return defaultValidator.Validate(raw, d)
}

// Hint returns the hint for d with the default English messages.
func Hint(d Descriptor) string {
	return defaultValidator.Hint(d)
}

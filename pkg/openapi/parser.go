package openapi

import (
	"context"

	"github.com/goliatone/go-constraints/pkg/form"
)

// ConstraintExtension lets a schema property declare its constraint
// explicitly, using the `{type, value}` wire shape. It takes precedence over
// minimum/maximum/pattern.
const ConstraintExtension = "x-constraint"

// Deriver maps each operation's request-body properties to a form.Set keyed
// by operationId. Operations without constrained properties are omitted.
//
// Numeric properties with both bounds become RANGE, a single bound becomes MIN
// or MAX; otherwise a `pattern` becomes REGEX. Nested object properties use
// dotted names ("limits.refreshToken").
type Deriver interface {
	Derive(ctx context.Context, doc Document) (map[string]*form.Set, error)
}

// DeriverOptions exposes toggles for derivation.
type DeriverOptions struct {
	// ResolveReferences allows external $ref resolution and validates the
	// document before deriving. Defaults to false.
	ResolveReferences bool

	// Operations restricts derivation to the listed operation ids when set.
	Operations []string
}

// DeriverOption mutates DeriverOptions during construction.
type DeriverOption func(*DeriverOptions)

// WithReferenceResolution toggles external reference resolution and document
// validation.
func WithReferenceResolution(enabled bool) DeriverOption {
	return func(opts *DeriverOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithOperations limits derivation to the given operation ids.
func WithOperations(ids ...string) DeriverOption {
	return func(opts *DeriverOptions) {
		opts.Operations = append(opts.Operations, ids...)
	}
}

// NewDeriverOptions applies DeriverOption functions and returns the resulting
// configuration.
func NewDeriverOptions(options ...DeriverOption) DeriverOptions {
	cfg := DeriverOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Issue describes a constraint declaration that derives to something other
// than its author likely intended.
type Issue struct {
	Operation string `json:"operation"`
	Field     string `json:"field"`
	Message   string `json:"message"`
}

// String renders the issue as "operation field: message".
func (i Issue) String() string {
	return i.Operation + " " + i.Field + ": " + i.Message
}

// Linter reports x-constraint extensions that do not decode to a known
// constraint and derived constraints that constraint.Check rejects.
type Linter interface {
	Lint(ctx context.Context, doc Document) ([]Issue, error)
}

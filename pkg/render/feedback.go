package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/form"
	"github.com/goliatone/go-constraints/pkg/message"
	"github.com/goliatone/go-constraints/pkg/render/template"
	"github.com/goliatone/go-constraints/pkg/render/template/pongo"
)

// DefaultFeedbackTemplate is the name of the built-in feedback template.
const DefaultFeedbackTemplate = "feedback"

// Feedback is the data handed to the feedback template.
type Feedback struct {
	Field string `json:"field"`
	Label string `json:"label,omitempty"`
	Hint  string `json:"hint,omitempty"`
	Error string `json:"error,omitempty"`
	Valid bool   `json:"valid"`
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine. Custom engines must be able
// to resolve the configured template name.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if renderer != nil {
			r.templates = renderer
		}
	}
}

// WithTemplateDir makes templates in dir take precedence over the embedded
// ones. Ignored when WithTemplateRenderer is used.
func WithTemplateDir(dir string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			r.templateDirs = append(r.templateDirs, trimmed)
		}
	}
}

// WithTemplateName overrides the template used for each field.
func WithTemplateName(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.templateName = trimmed
		}
	}
}

// WithFormatter sets the message formatter. Defaults to message.Placeholders.
func WithFormatter(f message.Formatter) Option {
	return func(r *Renderer) {
		if f != nil {
			r.formatter = f
		}
	}
}

// WithTable sets the template table. Defaults to message.DefaultTable().
func WithTable(t message.Table) Option {
	return func(r *Renderer) {
		if t != nil {
			r.table = t
		}
	}
}

// Renderer produces sanitized feedback markup for constrained fields.
type Renderer struct {
	templates    template.TemplateRenderer
	templateDirs []string
	templateName string
	formatter    message.Formatter
	table        message.Table
}

// NewRenderer builds a Renderer. Without WithTemplateRenderer it loads the
// template dirs and then the embedded templates into a pongo2 engine that also
// exposes TemplateFuncs.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		templateName: DefaultFeedbackTemplate,
		formatter:    message.Placeholders,
		table:        message.DefaultTable(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if r.templates == nil {
		opts := make([]pongo.Option, 0, len(r.templateDirs)+2)
		for _, dir := range r.templateDirs {
			opts = append(opts, pongo.WithBaseDir(dir))
		}
		opts = append(opts,
			pongo.WithFS(Templates()),
			pongo.WithTemplateFuncs(TemplateFuncs(r.formatter, r.table, TemplateFuncsConfig{})),
		)
		engine, err := pongo.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("render: build template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Build computes the feedback for field. A nil value means the field has not
// been submitted yet: only the hint is populated and the feedback is valid.
func (r *Renderer) Build(field form.Field, value *string) Feedback {
	feedback := Feedback{
		Field: field.Name,
		Label: field.Label,
		Hint:  constraint.Hint(field.Constraint, r.formatter, r.table),
		Valid: true,
	}
	if value == nil {
		return feedback
	}
	verdict := constraint.Evaluate(*value, field.Constraint, r.formatter, r.table)
	feedback.Valid = verdict.Valid
	feedback.Error = verdict.Message
	return feedback
}

// RenderField renders sanitized feedback markup for a single field.
func (r *Renderer) RenderField(field form.Field, value *string) (string, error) {
	if r == nil || r.templates == nil {
		return "", errors.New("render: renderer is not initialised")
	}
	feedback := r.Build(field, value)
	out, err := r.templates.RenderTemplate(r.templateName, feedback)
	if err != nil {
		return "", fmt.Errorf("render: field %q: %w", field.Name, err)
	}
	return SanitizeFeedback(out), nil
}

// RenderSet renders feedback for every field in set, keyed by field name.
// Fields absent from values are rendered with their hint only.
func (r *Renderer) RenderSet(set *form.Set, values map[string]string) (map[string]string, error) {
	out := make(map[string]string, set.Len())
	for _, field := range set.Fields() {
		var value *string
		if raw, ok := values[field.Name]; ok {
			value = &raw
		}
		markup, err := r.RenderField(field, value)
		if err != nil {
			return nil, err
		}
		out[field.Name] = markup
	}
	return out, nil
}

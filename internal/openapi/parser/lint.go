package parser

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-constraints/pkg/constraint"
	pkgopenapi "github.com/goliatone/go-constraints/pkg/openapi"
)

var _ pkgopenapi.Linter = (*Deriver)(nil)

// NewLinter constructs a Linter sharing the Deriver's loading and operation
// selection.
func NewLinter(options pkgopenapi.DeriverOptions) pkgopenapi.Linter {
	return &Deriver{options: options}
}

// Lint walks the same request-body properties Derive does and reports
// declarations that are silently ignored or can never be satisfied.
func (d *Deriver) Lint(ctx context.Context, doc pkgopenapi.Document) ([]pkgopenapi.Issue, error) {
	spec, err := d.load(ctx, doc)
	if err != nil {
		return nil, err
	}

	var issues []pkgopenapi.Issue
	err = d.eachOperation(ctx, spec, func(id string, operation *openapi3.Operation) error {
		issues = append(issues, lintSchema(id, requestSchema(operation.RequestBody), "")...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issues, nil
}

func lintSchema(operation string, schema *openapi3.Schema, prefix string) []pkgopenapi.Issue {
	if schema == nil {
		return nil
	}

	var issues []pkgopenapi.Issue
	for _, name := range sortedProperties(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value
		path := joinPath(prefix, name)

		if isObject(property) {
			issues = append(issues, lintSchema(operation, property, path)...)
			continue
		}

		report := func(format string, args ...any) {
			issues = append(issues, pkgopenapi.Issue{
				Operation: operation,
				Field:     path,
				Message:   fmt.Sprintf(format, args...),
			})
		}

		if raw, ok := property.Extensions[pkgopenapi.ConstraintExtension]; ok {
			descriptor, err := descriptorFromExtension(raw)
			if err != nil {
				report("%v", err)
				continue
			}
			if descriptor == nil {
				report("%s does not describe a known constraint; field is left unconstrained", pkgopenapi.ConstraintExtension)
				continue
			}
		}

		descriptor, err := descriptorFor(property)
		if err != nil || descriptor == nil {
			continue
		}
		if err := constraint.Check(descriptor); err != nil {
			report("%v", err)
		}
		if property.ExclusiveMin || property.ExclusiveMax {
			report("exclusive bounds are evaluated as inclusive")
		}
	}
	return issues
}

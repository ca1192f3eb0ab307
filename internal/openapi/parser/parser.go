package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/form"
	pkgopenapi "github.com/goliatone/go-constraints/pkg/openapi"
)

// Deriver implements pkgopenapi.Deriver using kin-openapi.
type Deriver struct {
	options pkgopenapi.DeriverOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Deriver = (*Deriver)(nil)

// New constructs a Deriver with the given options.
func New(options pkgopenapi.DeriverOptions) pkgopenapi.Deriver {
	return &Deriver{options: options}
}

// Derive loads the document and builds one form.Set per constrained operation.
func (d *Deriver) Derive(ctx context.Context, doc pkgopenapi.Document) (map[string]*form.Set, error) {
	spec, err := d.load(ctx, doc)
	if err != nil {
		return nil, err
	}

	sets := make(map[string]*form.Set)
	err = d.eachOperation(ctx, spec, func(id string, operation *openapi3.Operation) error {
		fields, err := fieldsFromSchema(requestSchema(operation.RequestBody), "")
		if err != nil {
			return fmt.Errorf("openapi deriver: operation %q: %w", id, err)
		}
		if len(fields) == 0 {
			return nil
		}
		set, err := form.NewSet(fields...)
		if err != nil {
			return fmt.Errorf("openapi deriver: operation %q: %w", id, err)
		}
		sets[id] = set
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func (d *Deriver) load(ctx context.Context, doc pkgopenapi.Document) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi deriver: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: d.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi deriver: load %s: %w", doc.Location(), err)
	}
	if d.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi deriver: validate %s: %w", doc.Location(), err)
		}
	}
	return spec, nil
}

// eachOperation visits the selected operations in path then method order.
// Operations without an operationId are named "method:path".
func (d *Deriver) eachOperation(ctx context.Context, spec *openapi3.T, fn func(id string, operation *openapi3.Operation) error) error {
	if spec.Paths == nil {
		return nil
	}

	wanted := make(map[string]struct{}, len(d.options.Operations))
	for _, id := range d.options.Operations {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			wanted[trimmed] = struct{}{}
		}
	}

	for _, path := range spec.Paths.InMatchingOrder() {
		item := spec.Paths.Value(path)
		if item == nil {
			continue
		}
		operations := item.Operations()
		methods := make([]string, 0, len(operations))
		for method := range operations {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			if err := ctx.Err(); err != nil {
				return err
			}
			operation := operations[method]
			if operation == nil {
				continue
			}
			id := operation.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			if len(wanted) > 0 {
				if _, ok := wanted[id]; !ok {
					continue
				}
			}
			if err := fn(id, operation); err != nil {
				return err
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldsFromSchema(schema *openapi3.Schema, prefix string) ([]form.Field, error) {
	if schema == nil || len(schema.Properties) == 0 {
		return nil, nil
	}

	var fields []form.Field
	for _, name := range sortedProperties(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value
		path := joinPath(prefix, name)

		if isObject(property) {
			nested, err := fieldsFromSchema(property, path)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nested...)
			continue
		}

		descriptor, err := descriptorFor(property)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", path, err)
		}
		if descriptor == nil {
			continue
		}
		label := strings.TrimSpace(property.Title)
		if label == "" {
			label = name
		}
		fields = append(fields, form.Field{
			Name:       path,
			Label:      label,
			Constraint: descriptor,
		})
	}
	return fields, nil
}

// descriptorFor maps a property schema to a constraint. Exclusive bounds are
// treated as inclusive.
func descriptorFor(property *openapi3.Schema) (constraint.Descriptor, error) {
	if raw, ok := property.Extensions[pkgopenapi.ConstraintExtension]; ok {
		return descriptorFromExtension(raw)
	}

	switch {
	case property.Min != nil && property.Max != nil:
		return constraint.Range{Min: *property.Min, Max: *property.Max}, nil
	case property.Min != nil:
		return constraint.Min{Min: *property.Min}, nil
	case property.Max != nil:
		return constraint.Max{Max: *property.Max}, nil
	case property.Pattern != "":
		return constraint.Regex{Pattern: property.Pattern}, nil
	default:
		return nil, nil
	}
}

func descriptorFromExtension(raw any) (constraint.Descriptor, error) {
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", pkgopenapi.ConstraintExtension, err)
	}
	var spec constraint.Spec
	if err := json.Unmarshal(payload, &spec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", pkgopenapi.ConstraintExtension, err)
	}
	descriptor := spec.Descriptor()
	if _, none := descriptor.(constraint.None); none {
		return nil, nil
	}
	return descriptor, nil
}

func sortedProperties(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// isObject reports whether property is walked as a nested object. A schema
// declaring properties is treated as an object even without `type: object`.
func isObject(property *openapi3.Schema) bool {
	return hasType(property.Type, openapi3.TypeObject) || len(property.Properties) > 0
}

func hasType(types *openapi3.Types, want string) bool {
	if types == nil {
		return false
	}
	for _, value := range types.Slice() {
		if value == want {
			return true
		}
	}
	return false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

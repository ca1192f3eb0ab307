package constraints

import (
	"context"

	internalParser "github.com/goliatone/go-constraints/internal/openapi/parser"
	"github.com/goliatone/go-constraints/pkg/form"
	pkgopenapi "github.com/goliatone/go-constraints/pkg/openapi"
)

// NewDeriver constructs an OpenAPI deriver backed by the internal
// implementation.
func NewDeriver(options ...pkgopenapi.DeriverOption) pkgopenapi.Deriver {
	cfg := pkgopenapi.NewDeriverOptions(options...)
	return internalParser.New(cfg)
}

// DeriveFromOpenAPI wraps raw in a Document named name and derives one
// constraint set per operation.
func DeriveFromOpenAPI(ctx context.Context, name string, raw []byte, options ...pkgopenapi.DeriverOption) (map[string]*form.Set, error) {
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromMemory(name), raw)
	if err != nil {
		return nil, err
	}
	return NewDeriver(options...).Derive(ctx, doc)
}

// NewLinter constructs an OpenAPI constraint linter backed by the internal
// implementation.
func NewLinter(options ...pkgopenapi.DeriverOption) pkgopenapi.Linter {
	cfg := pkgopenapi.NewDeriverOptions(options...)
	return internalParser.NewLinter(cfg)
}

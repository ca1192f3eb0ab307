// Package openapi defines the contract for deriving and linting form
// constraint sets from OpenAPI 3 request-body schemas. The kin-openapi backed
// implementation lives under internal/openapi and is constructed via
// constraints.NewDeriver and constraints.NewLinter.
package openapi

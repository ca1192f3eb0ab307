package template

// TemplateRenderer resolves a named template and executes it with data.
// Implementations must be safe for concurrent use.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}

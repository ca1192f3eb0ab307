package pongo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-constraints/pkg/render/template"
)

// Extension is appended to template names that lack it.
const Extension = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	dirs  []string
	files []fs.FS
	funcs map[string]any
}

// WithBaseDir adds a directory on disk to the lookup path. Directories are
// searched before any fs.FS, so they can override embedded templates.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			cfg.dirs = append(cfg.dirs, trimmed)
		}
	}
}

// WithFS adds an fs.FS to the lookup path.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.files = append(cfg.files, files)
		}
	}
}

// WithTemplateFuncs exposes functions to every template as globals.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if cfg.funcs == nil {
			cfg.funcs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.funcs[strings.TrimSpace(name)] = fn
		}
	}
}

// Engine satisfies template.TemplateRenderer with a pongo2 template set.
// Parsed templates are cached by name.
type Engine struct {
	set *pongo2.TemplateSet

	mu     sync.Mutex
	parsed map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. At least one directory or fs.FS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if len(cfg.dirs) == 0 && len(cfg.files) == 0 {
		return nil, errors.New("pongo: need at least one template directory or fs.FS")
	}

	loaders := make([]pongo2.TemplateLoader, 0, len(cfg.dirs)+len(cfg.files))
	for _, dir := range cfg.dirs {
		loader, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir %q: %w", dir, err)
		}
		loaders = append(loaders, loader)
	}
	for _, files := range cfg.files {
		loaders = append(loaders, pongo2.NewFSLoader(files))
	}

	set := pongo2.NewSet("constraints", loaders...)
	for name, fn := range cfg.funcs {
		if name == "" || fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
			return nil, fmt.Errorf("pongo: template func %q must be a non-nil function", name)
		}
		set.Globals[name] = fn
	}
	return &Engine{set: set, parsed: make(map[string]*pongo2.Template)}, nil
}

// RenderTemplate renders the named template. Extension is appended when the
// name lacks it. Structs are passed through JSON so templates see their json
// tag names.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}

	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	ctx, err := contextFrom(data)
	if err != nil {
		return "", fmt.Errorf("pongo: template %q data: %w", name, err)
	}
	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: execute %q: %w", name, err)
	}
	return out, nil
}

// lookup parses name on first use. Each loader resolves name relative to its
// own root, so a directory can shadow a template shipped in an fs.FS.
func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.parsed[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", name, err)
	}
	e.parsed[name] = tmpl
	return tmpl, nil
}

func contextFrom(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	ctx := pongo2.Context{}
	if err := json.Unmarshal(payload, &ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

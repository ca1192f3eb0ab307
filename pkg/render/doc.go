// Package render turns constraint hints and verdicts into field feedback
// markup for HTML forms. Output is produced by a template.TemplateRenderer
// (pongo2 by default) and sanitized with bluemonday before it is returned.
package render

package message

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is reported to MissingTranslationHandler when a
// TranslatorFormatter has no Translator configured.
var ErrMissingTranslator = errors.New("message: translator is not configured")

// Translator resolves a localized message for key in locale. Implementations
// typically wrap an i18n catalog owned by the caller.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler picks the text used when a translation is missing
// or fails. fallback is the template's DefaultMessage; err is the translator
// error (or ErrMissingTranslator).
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// TranslatorOption configures a TranslatorFormatter.
type TranslatorOption func(*TranslatorFormatter)

// WithMissingTranslationHandler overrides the fallback strategy for missing
// translations.
func WithMissingTranslationHandler(handler MissingTranslationHandler) TranslatorOption {
	return func(f *TranslatorFormatter) {
		if handler != nil {
			f.onMissing = handler
		}
	}
}

// TranslatorFormatter resolves a template through a Translator using the
// template ID as key, then substitutes placeholders in the result.
type TranslatorFormatter struct {
	translator Translator
	locale     string
	onMissing  MissingTranslationHandler
}

var _ Formatter = (*TranslatorFormatter)(nil)

// NewTranslatorFormatter builds a Formatter bound to locale.
func NewTranslatorFormatter(t Translator, locale string, opts ...TranslatorOption) *TranslatorFormatter {
	f := &TranslatorFormatter{
		translator: t,
		locale:     strings.TrimSpace(locale),
		onMissing:  missingTranslationDefault,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Locale returns the locale the formatter translates into.
func (f *TranslatorFormatter) Locale() string {
	if f == nil {
		return ""
	}
	return f.locale
}

// Format implements Formatter.
func (f *TranslatorFormatter) Format(tpl Template, values map[string]any) string {
	if f == nil {
		return Placeholders.Format(tpl, values)
	}
	return Substitute(f.resolve(tpl), values)
}

func (f *TranslatorFormatter) resolve(tpl Template) string {
	key := strings.TrimSpace(tpl.ID)
	if key == "" {
		return tpl.DefaultMessage
	}

	if f.translator == nil {
		return f.onMissing(f.locale, key, tpl.DefaultMessage, ErrMissingTranslator)
	}

	result, err := f.translator.Translate(f.locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return f.onMissing(f.locale, key, tpl.DefaultMessage, err)
}

// Package message holds the template table and formatter seams consumed by the
// constraint evaluator. Templates carry a stable ID (usable as a translation
// key) and an English default message with `{name}` placeholders.
package message

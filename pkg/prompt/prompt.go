// Package prompt asks for constrained values on a terminal. Answers are
// checked with constraint.Evaluate before the driver accepts them, and the
// constraint hint is shown as the prompt help text.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/form"
	"github.com/goliatone/go-constraints/pkg/message"
)

const fallbackInvalidMessage = "invalid value"

// Ask prompts for a single field until the driver returns an answer. The
// driver is expected to honour InputConfig.Validator; answers that still fail
// the constraint are rejected with ErrInvalidAnswer.
func Ask(ctx context.Context, driver Driver, field form.Field, f message.Formatter, t message.Table) (string, error) {
	if driver == nil {
		return "", ErrDriverRequired
	}

	hint := constraint.Hint(field.Constraint, f, t)
	check := Validator(field.Constraint, f, t)

	label := field.Label
	if label == "" {
		label = field.Name
	}

	answer, err := driver.Input(ctx, InputConfig{
		Message:   label,
		Help:      hint,
		Validator: check,
	})
	if err != nil {
		return "", err
	}
	if err := check(answer); err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrInvalidAnswer, field.Name, err.Error())
	}
	return answer, nil
}

// AskSet prompts for every field of set in declaration order.
func AskSet(ctx context.Context, driver Driver, set *form.Set, f message.Formatter, t message.Table) (map[string]string, error) {
	if set == nil {
		return map[string]string{}, nil
	}
	answers := make(map[string]string, set.Len())
	for _, field := range set.Fields() {
		answer, err := Ask(ctx, driver, field, f, t)
		if err != nil {
			return nil, err
		}
		answers[field.Name] = answer
	}
	return answers, nil
}

// Validator adapts a descriptor into an answer validator. Invalid verdicts
// without a message fall back to the hint, then to a generic message.
func Validator(d constraint.Descriptor, f message.Formatter, t message.Table) func(string) error {
	return func(answer string) error {
		verdict := constraint.Evaluate(answer, d, f, t)
		if verdict.Valid {
			return nil
		}
		if verdict.Message != "" {
			return errors.New(verdict.Message)
		}
		if hint := constraint.Hint(d, f, t); hint != "" {
			return errors.New(hint)
		}
		return errors.New(fallbackInvalidMessage)
	}
}

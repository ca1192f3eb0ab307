package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/form"
	"github.com/goliatone/go-constraints/pkg/message"
	"github.com/goliatone/go-constraints/pkg/prompt"
)

type stubDriver struct {
	answers  []string
	err      error
	inputs   []prompt.InputConfig
	rejected []string
}

func (s *stubDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	s.inputs = append(s.inputs, cfg)
	if s.err != nil {
		return "", s.err
	}
	for len(s.answers) > 0 {
		answer := s.answers[0]
		s.answers = s.answers[1:]
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				s.rejected = append(s.rejected, err.Error())
				continue
			}
		}
		return answer, nil
	}
	return "", errors.New("stub: out of answers")
}

func (s *stubDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return true, nil
}

func (s *stubDriver) Info(context.Context, string) error { return nil }

// lenientDriver ignores validators and returns its answer verbatim.
type lenientDriver struct{ answer string }

func (l lenientDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return l.answer, nil
}

func (lenientDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) { return false, nil }

func (lenientDriver) Info(context.Context, string) error { return nil }

func TestAsk_RepromptsUntilValid(t *testing.T) {
	driver := &stubDriver{answers: []string{"abc", "120", "42"}}
	field := form.Field{Name: "age", Label: "Age", Constraint: constraint.Range{Min: 18, Max: 99}}

	got, err := prompt.Ask(context.Background(), driver, field, message.Placeholders, message.DefaultTable())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if got != "42" {
		t.Fatalf("expected 42, got %q", got)
	}

	wantRejected := []string{
		"Value must be a number between 18 and 99",
		"Value must be a number between 18 and 99",
	}
	if diff := cmp.Diff(wantRejected, driver.rejected); diff != "" {
		t.Fatalf("rejections mismatch (-want +got):\n%s", diff)
	}
	if driver.inputs[0].Message != "Age" {
		t.Fatalf("expected label as prompt message, got %q", driver.inputs[0].Message)
	}
	if driver.inputs[0].Help != "Value must be a number between 18 and 99" {
		t.Fatalf("expected hint as help, got %q", driver.inputs[0].Help)
	}
}

func TestAsk_RejectsAnswerIgnoringValidator(t *testing.T) {
	field := form.Field{Name: "count", Constraint: constraint.Max{Max: 5}}

	_, err := prompt.Ask(context.Background(), lenientDriver{answer: "9"}, field, nil, message.DefaultTable())
	if !errors.Is(err, prompt.ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}
}

func TestAsk_PropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{err: prompt.ErrAborted}
	_, err := prompt.Ask(context.Background(), driver, form.Field{Name: "x"}, nil, nil)
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAsk_RequiresDriver(t *testing.T) {
	_, err := prompt.Ask(context.Background(), nil, form.Field{Name: "x"}, nil, nil)
	if !errors.Is(err, prompt.ErrDriverRequired) {
		t.Fatalf("expected ErrDriverRequired, got %v", err)
	}
}

func TestValidator_FallbackMessages(t *testing.T) {
	table := message.DefaultTable()

	minCheck := prompt.Validator(constraint.Min{Min: 3}, nil, table)
	err := minCheck("three")
	if err == nil || err.Error() != "Value must be at least 3" {
		t.Fatalf("expected hint fallback for MIN parse failure, got %v", err)
	}

	bare := prompt.Validator(constraint.Min{Min: 3}, nil, message.Table{})
	err = bare("three")
	if err == nil || err.Error() != "invalid value" {
		t.Fatalf("expected generic fallback without templates, got %v", err)
	}

	if err := prompt.Validator(nil, nil, table)("anything"); err != nil {
		t.Fatalf("expected nil descriptor to accept any answer, got %v", err)
	}
}

func TestAskSet(t *testing.T) {
	set := form.KeyManagerTokenExpiry(form.TokenExpiryLimits{Application: 3600, User: 7200})
	driver := &stubDriver{answers: []string{"4000", "3000", "7200"}}

	got, err := prompt.AskSet(context.Background(), driver, set, nil, message.DefaultTable())
	if err != nil {
		t.Fatalf("ask set: %v", err)
	}
	want := map[string]string{
		form.FieldAppTokenExpiry:  "3000",
		form.FieldUserTokenExpiry: "7200",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
}

package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/form"
	"github.com/goliatone/go-constraints/pkg/message"
)

func TestNewSet_RejectsInvalidNames(t *testing.T) {
	if _, err := form.NewSet(form.Field{Name: "  "}); !errors.Is(err, form.ErrFieldNameMissing) {
		t.Fatalf("expected ErrFieldNameMissing, got %v", err)
	}
	_, err := form.NewSet(
		form.Field{Name: "age", Constraint: constraint.Min{Min: 18}},
		form.Field{Name: " age ", Constraint: constraint.Max{Max: 99}},
	)
	if !errors.Is(err, form.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
}

func TestSet_Validate(t *testing.T) {
	set, err := form.NewSet(
		form.Field{Name: "age", Constraint: constraint.Range{Min: 18, Max: 99}},
		form.Field{Name: "code", Constraint: constraint.Regex{Pattern: "[A-Z]{3}"}},
		form.Field{Name: "quota", Constraint: constraint.Min{Min: 1}},
		form.Field{Name: "notes"},
	)
	if err != nil {
		t.Fatalf("new set: %v", err)
	}

	result := set.Validate(map[string]string{
		"age":   "17",
		"code":  "ABC",
		"quota": "lots",
		"notes": "anything",
	}, message.Placeholders, message.DefaultTable())

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	wantErrors := map[string]string{
		"age": "Value must be a number between 18 and 99",
	}
	if diff := cmp.Diff(wantErrors, result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"age", "quota"}, result.Invalid()); diff != "" {
		t.Fatalf("invalid fields mismatch (-want +got):\n%s", diff)
	}
	if !result.Verdicts["code"].Valid || !result.Verdicts["notes"].Valid {
		t.Fatalf("expected code and notes to be valid: %#v", result.Verdicts)
	}
}

func TestSet_ValidateSkipsMissingValues(t *testing.T) {
	set, err := form.NewSet(form.Field{Name: "quota", Constraint: constraint.Min{Min: 1}})
	if err != nil {
		t.Fatalf("new set: %v", err)
	}

	result := set.Validate(nil, message.Placeholders, message.DefaultTable())
	if !result.Valid || len(result.Verdicts) != 0 {
		t.Fatalf("expected untouched fields to be skipped, got %#v", result)
	}

	result = set.Validate(map[string]string{"quota": ""}, message.Placeholders, message.DefaultTable())
	if result.Valid {
		t.Fatalf("expected empty submitted value to be evaluated")
	}
}

func TestSet_Hints(t *testing.T) {
	set, err := form.NewSet(
		form.Field{Name: "age", Constraint: constraint.Min{Min: 18}},
		form.Field{Name: "notes", Constraint: constraint.None{}},
	)
	if err != nil {
		t.Fatalf("new set: %v", err)
	}

	want := map[string]string{"age": "Value must be at least 18"}
	if diff := cmp.Diff(want, set.Hints(message.Placeholders, message.DefaultTable())); diff != "" {
		t.Fatalf("hints mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_FieldLookup(t *testing.T) {
	set, err := form.NewSet(form.Field{Name: "age", Label: "Age"})
	if err != nil {
		t.Fatalf("new set: %v", err)
	}
	field, ok := set.Field(" age")
	if !ok || field.Label != "Age" {
		t.Fatalf("expected to find age field, got %#v", field)
	}
	if _, ok := set.Field("missing"); ok {
		t.Fatalf("expected missing field lookup to fail")
	}

	fields := set.Fields()
	fields[0].Label = "changed"
	if again, _ := set.Field("age"); again.Label != "Age" {
		t.Fatalf("expected Fields to return a copy")
	}
}

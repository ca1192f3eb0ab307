package constraint_test

import (
	"testing"

	"github.com/goliatone/go-constraints/pkg/constraint"
	"github.com/goliatone/go-constraints/pkg/message"
)

func hint(d constraint.Descriptor) string {
	return constraint.Hint(d, message.Placeholders, message.DefaultTable())
}

func TestHint_EmptyForMissingConstraint(t *testing.T) {
	if got := hint(nil); got != "" {
		t.Fatalf("expected empty hint for nil, got %q", got)
	}
	if got := hint((&constraint.Spec{}).Descriptor()); got != "" {
		t.Fatalf("expected empty hint for empty spec, got %q", got)
	}
	var spec *constraint.Spec
	if got := hint(spec.Descriptor()); got != "" {
		t.Fatalf("expected empty hint for nil spec, got %q", got)
	}
	unknown := &constraint.Spec{Type: "UNKNOWN", Value: map[string]any{"some": "val"}}
	if got := hint(unknown.Descriptor()); got != "" {
		t.Fatalf("expected empty hint for unknown type, got %q", got)
	}
	noValue := &constraint.Spec{Type: "MIN"}
	if got := hint(noValue.Descriptor()); got != "" {
		t.Fatalf("expected empty hint for spec without value, got %q", got)
	}
}

func TestHint_PerKind(t *testing.T) {
	cases := map[string]struct {
		d    constraint.Descriptor
		want string
	}{
		"min":   {d: constraint.Min{Min: 5}, want: "Value must be at least 5"},
		"max":   {d: constraint.Max{Max: 50}, want: "Value must be at most 50"},
		"range": {d: constraint.Range{Min: 5, Max: 10}, want: "Value must be a number between 5 and 10"},
		"regex": {d: constraint.Regex{Pattern: ".*"}, want: "Value must match the required pattern: .*"},
		"bad regex still described": {
			d:    constraint.Regex{Pattern: "["},
			want: "Value must match the required pattern: [",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := hint(tc.d); got != tc.want {
				t.Fatalf("Hint() = %q, want %q", got, tc.want)
			}
		})
	}
}

package message_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-constraints/pkg/message"
)

func TestPlaceholders_SubstitutesEveryOccurrence(t *testing.T) {
	tpl := message.Template{DefaultMessage: "{min} to {max}, at least {min}"}

	got := message.Placeholders.Format(tpl, map[string]any{"min": 5.0, "max": 10.0})

	if got != "5 to 10, at least 5" {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func TestPlaceholders_LeavesUnknownPlaceholders(t *testing.T) {
	tpl := message.Template{DefaultMessage: "Value must match {pattern} ({flags})"}

	got := message.Placeholders.Format(tpl, map[string]any{"pattern": "^[a-z]+$"})

	if got != "Value must match ^[a-z]+$ ({flags})" {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func TestPlaceholders_ZeroTemplateFormatsEmpty(t *testing.T) {
	if got := message.Placeholders.Format(message.Template{}, map[string]any{"min": 1.0}); got != "" {
		t.Fatalf("expected empty output for zero template, got %q", got)
	}
}

func TestStringify(t *testing.T) {
	cases := map[string]struct {
		in   any
		want string
	}{
		"integral float": {in: 10.0, want: "10"},
		"fraction":       {in: 5.5, want: "5.5"},
		"negative":       {in: -3.0, want: "-3"},
		"int":            {in: 42, want: "42"},
		"string":         {in: ".*", want: ".*"},
		"nil":            {in: nil, want: ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := message.Stringify(tc.in); got != tc.want {
				t.Fatalf("Stringify(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDefaultTable_ReturnsIndependentCopies(t *testing.T) {
	first := message.DefaultTable()
	first[message.KeyRangeMin] = message.Template{DefaultMessage: "changed"}

	second := message.DefaultTable()
	want := message.Template{ID: "constraints.rangeMin", DefaultMessage: "Value must be at least {min}"}
	if diff := cmp.Diff(want, second[message.KeyRangeMin]); diff != "" {
		t.Fatalf("default table mutated (-want +got):\n%s", diff)
	}
}

func TestTable_LookupMissingKey(t *testing.T) {
	var table message.Table
	if got := table.Lookup(message.KeyRegexInvalid); !got.IsZero() {
		t.Fatalf("expected zero template from nil table, got %#v", got)
	}
}

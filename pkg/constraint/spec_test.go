package constraint_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-constraints/pkg/constraint"
)

func TestSpec_DescriptorFromJSON(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want constraint.Descriptor
	}{
		"min":           {raw: `{"type":"MIN","value":{"min":10}}`, want: constraint.Min{Min: 10}},
		"max":           {raw: `{"type":"MAX","value":{"max":3600}}`, want: constraint.Max{Max: 3600}},
		"range":         {raw: `{"type":"RANGE","value":{"min":5,"max":10}}`, want: constraint.Range{Min: 5, Max: 10}},
		"regex":         {raw: `{"type":"REGEX","value":{"pattern":"^[a-z]+$"}}`, want: constraint.Regex{Pattern: "^[a-z]+$"}},
		"string bound":  {raw: `{"type":"MAX","value":{"max":"7200"}}`, want: constraint.Max{Max: 7200}},
		"unknown":       {raw: `{"type":"UNKNOWN","value":{"some":"val"}}`, want: constraint.None{}},
		"lowercase tag": {raw: `{"type":"min","value":{"min":1}}`, want: constraint.None{}},
		"missing value": {raw: `{"type":"MIN"}`, want: constraint.None{}},
		"missing bound": {raw: `{"type":"RANGE","value":{"min":5}}`, want: constraint.None{}},
		"bad bound":     {raw: `{"type":"MIN","value":{"min":"ten"}}`, want: constraint.None{}},
		"pattern type":  {raw: `{"type":"REGEX","value":{"pattern":5}}`, want: constraint.None{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var spec constraint.Spec
			if err := json.Unmarshal([]byte(tc.raw), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if diff := cmp.Diff(tc.want, spec.Descriptor()); diff != "" {
				t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpec_DescriptorFromYAML(t *testing.T) {
	raw := []byte(`
type: RANGE
value:
  min: 0.5
  max: 86400
`)
	var spec constraint.Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(constraint.Descriptor(constraint.Range{Min: 0.5, Max: 86400}), spec.Descriptor()); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecFor_RoundTrip(t *testing.T) {
	for _, d := range []constraint.Descriptor{
		constraint.Min{Min: -5},
		constraint.Max{Max: 0},
		constraint.Range{Min: 1.5, Max: 2.5},
		constraint.Regex{Pattern: `\d+`},
	} {
		spec := constraint.SpecFor(d)
		if spec == nil {
			t.Fatalf("expected spec for %#v", d)
		}
		if spec.Type != string(d.Kind()) {
			t.Fatalf("expected type %s, got %s", d.Kind(), spec.Type)
		}
		if diff := cmp.Diff(d, spec.Descriptor()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}

	if constraint.SpecFor(nil) != nil || constraint.SpecFor(constraint.None{}) != nil {
		t.Fatalf("expected nil spec for absent constraints")
	}
}

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"MIN", "MAX", "RANGE", "REGEX"} {
		if !constraint.ParseKind(raw).Known() {
			t.Fatalf("expected %s to be known", raw)
		}
	}
	if constraint.ParseKind("UNKNOWN") != constraint.KindNone {
		t.Fatalf("expected unknown tag to map to KindNone")
	}
	if constraint.KindNone.String() != "NONE" {
		t.Fatalf("unexpected KindNone string %q", constraint.KindNone.String())
	}
}

func TestSpec_DescriptorRequiresExactTag(t *testing.T) {
	value := map[string]any{"min": 10.0}
	for _, tag := range []string{" MIN ", "MIN\n", "min"} {
		spec := &constraint.Spec{Type: tag, Value: value}
		if diff := cmp.Diff(constraint.Descriptor(constraint.None{}), spec.Descriptor()); diff != "" {
			t.Fatalf("tag %q: descriptor mismatch (-want +got):\n%s", tag, diff)
		}
		if kind := constraint.ParseKind(tag); kind != constraint.KindNone {
			t.Fatalf("tag %q: expected ParseKind to agree, got %s", tag, kind)
		}
	}
}

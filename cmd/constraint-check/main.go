package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	constraints "github.com/goliatone/go-constraints"
	"github.com/goliatone/go-constraints/pkg/form"
	"github.com/goliatone/go-constraints/pkg/message"
	pkgopenapi "github.com/goliatone/go-constraints/pkg/openapi"
	"github.com/goliatone/go-constraints/pkg/prompt"
)

func main() {
	spec := flag.String("constraint", "", `inline YAML/JSON constraint, e.g. '{type: RANGE, value: {min: 1, max: 10}}'`)
	value := flag.String("value", "", "value to evaluate against -constraint")
	hintOnly := flag.Bool("hint", false, "print hints instead of evaluating")
	interactive := flag.Bool("interactive", false, "prompt for values on the terminal")
	openapiPath := flag.String("openapi", "", "OpenAPI document to derive constraint sets from")
	operation := flag.String("operation", "", "operation ID to use with -openapi")
	limits := flag.String("keymanager", "", `inline YAML token expiry limits, e.g. '{appToken: 3600, userToken: 7200}'`)
	values := flag.String("values", "", "inline YAML/JSON map of field values for set validation")
	flag.Parse()

	ctx := context.Background()
	validator := constraints.New()

	switch {
	case *spec != "":
		runSingle(ctx, validator, *spec, *value, isFlagSet("value"), *hintOnly, *interactive)
	case *openapiPath != "" || *limits != "":
		set, err := loadSet(ctx, *openapiPath, *operation, *limits)
		if err != nil {
			log.Fatalf("Failed to build constraint set: %v", err)
		}
		runSet(ctx, validator, set, *values, *hintOnly, *interactive)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runSingle(ctx context.Context, validator *constraints.Validator, raw, value string, hasValue, hintOnly, interactive bool) {
	var spec constraints.Spec
	if err := yaml.Unmarshal([]byte(raw), &spec); err != nil {
		log.Fatalf("Failed to parse constraint: %v", err)
	}
	descriptor := spec.Descriptor()

	if hintOnly {
		fmt.Println(validator.Hint(descriptor))
		return
	}

	if interactive {
		answer, err := prompt.Ask(ctx, prompt.NewSurveyDriver(), form.Field{Name: "value", Label: "Value", Constraint: descriptor},
			message.Placeholders, message.DefaultTable())
		if err != nil {
			exitOnAbort(err)
			log.Fatalf("Failed to read value: %v", err)
		}
		value, hasValue = answer, true
	}
	if !hasValue {
		log.Fatalf("-value is required unless -hint or -interactive is set")
	}

	verdict := validator.Validate(value, descriptor)
	printJSON(verdict)
	if !verdict.Valid {
		os.Exit(1)
	}
}

func runSet(ctx context.Context, validator *constraints.Validator, set *form.Set, raw string, hintOnly, interactive bool) {
	if hintOnly {
		printJSON(validator.Hints(set))
		return
	}

	var (
		submitted map[string]string
		err       error
	)
	if interactive {
		submitted, err = prompt.AskSet(ctx, prompt.NewSurveyDriver(), set, message.Placeholders, message.DefaultTable())
		if err != nil {
			exitOnAbort(err)
			log.Fatalf("Failed to read values: %v", err)
		}
	} else {
		submitted, err = parseValues(raw)
		if err != nil {
			log.Fatalf("Failed to parse values: %v", err)
		}
	}

	result := validator.ValidateSet(set, submitted)
	printJSON(result)
	if !result.Valid {
		os.Exit(1)
	}
}

// parseValues decodes an inline YAML/JSON map of field values. Scalars keep
// their literal text, so 1e3 or 0x10 reach the evaluator as written instead of
// as the numbers YAML would resolve them to.
func parseValues(raw string) (map[string]string, error) {
	values := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return values, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}

func loadSet(ctx context.Context, path, operation, limits string) (*form.Set, error) {
	if limits != "" {
		var parsed form.TokenExpiryLimits
		if err := yaml.Unmarshal([]byte(limits), &parsed); err != nil {
			return nil, fmt.Errorf("parse token limits: %w", err)
		}
		return form.KeyManagerTokenExpiry(parsed), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	var opts []pkgopenapi.DeriverOption
	if operation != "" {
		opts = append(opts, pkgopenapi.WithOperations(operation))
	}
	sets, err := constraints.DeriveFromOpenAPI(ctx, path, raw, opts...)
	if err != nil {
		return nil, err
	}
	if operation != "" {
		set, ok := sets[operation]
		if !ok {
			return nil, fmt.Errorf("operation %q has no constrained fields", operation)
		}
		return set, nil
	}
	if len(sets) != 1 {
		return nil, fmt.Errorf("document has %d constrained operations; pick one with -operation", len(sets))
	}
	for _, set := range sets {
		return set, nil
	}
	return nil, errors.New("no constrained operations")
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func exitOnAbort(err error) {
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(os.Stderr, "aborted")
		os.Exit(130)
	}
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

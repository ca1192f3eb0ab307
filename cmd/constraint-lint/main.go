package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	constraints "github.com/goliatone/go-constraints"
	pkgopenapi "github.com/goliatone/go-constraints/pkg/openapi"
)

type violation struct {
	file  string
	issue pkgopenapi.Issue
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint OpenAPI documents for constraint declarations that are ignored or unsatisfiable.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	linter := constraints.NewLinter()

	var violations []violation
	for _, path := range paths {
		issues, err := lintFile(ctx, linter, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		for _, issue := range issues {
			violations = append(violations, violation{file: path, issue: issue})
		}
	}

	if len(violations) > 0 {
		sort.SliceStable(violations, func(i, j int) bool {
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s > %s -> %s\n", v.file, v.issue.Operation, v.issue.Field, v.issue.Message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, linter pkgopenapi.Linter, path string) ([]pkgopenapi.Issue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	return linter.Lint(ctx, doc)
}

// Package generate wraps the text-completion provider and the fragile
// line-based response format behind one interface, so swapping the provider
// or moving to a structured response never touches callers.
package generate

import (
	"context"
	"strings"
)

// Fields is the structured result of one completion.
type Fields struct {
	Title      string
	SubHeading string
	Category   string
	Content    string
}

type Generator interface {
	Generate(ctx context.Context, description string) (Fields, error)
}

// ParseCompletion splits a raw completion into typed fields. The expected
// layout is three label-prefixed lines (Title: / Subheading: / Category:)
// followed by the body. Responses shorter than four lines still parse:
// the first line is taken as the title, the rest as content, and the
// missing fields come back empty. Category is free text here; mapping onto
// the fixed vocabulary is the caller's concern.
func ParseCompletion(raw string) Fields {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	var f Fields
	if len(lines) >= 4 {
		f.Title = stripLabel(lines[0], "Title:")
		f.SubHeading = stripLabel(lines[1], "Subheading:")
		f.Category = stripLabel(lines[2], "Category:")
		f.Content = strings.TrimSpace(strings.Join(lines[3:], "\n"))
		return f
	}

	if len(lines) > 0 {
		f.Title = stripLabel(lines[0], "Title:")
	}
	if len(lines) > 1 {
		f.Content = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	return f
}

func stripLabel(line, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), label))
}

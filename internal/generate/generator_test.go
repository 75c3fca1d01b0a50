package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prankpress/internal/generate"
)

func TestParseCompletionWellFormed(t *testing.T) {
	raw := "Title: A\nSubheading: B\nCategory: Food\nBody line 1\nBody line 2"
	f := generate.ParseCompletion(raw)

	assert.Equal(t, "A", f.Title)
	assert.Equal(t, "B", f.SubHeading)
	assert.Equal(t, "Food", f.Category)
	assert.Equal(t, "Body line 1\nBody line 2", f.Content)
}

func TestParseCompletionKeepsParagraphBreaks(t *testing.T) {
	raw := "Title: A\nSubheading: B\nCategory: Travel\n\nFirst paragraph.\n\nSecond paragraph."
	f := generate.ParseCompletion(raw)

	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", f.Content)
}

func TestParseCompletionStripsLabelWhitespace(t *testing.T) {
	raw := "Title:   Spaced Out  \nSubheading:\t Tabbed \nCategory:  Business \nBody"
	f := generate.ParseCompletion(raw)

	assert.Equal(t, "Spaced Out", f.Title)
	assert.Equal(t, "Tabbed", f.SubHeading)
	assert.Equal(t, "Business", f.Category)
	assert.Equal(t, "Body", f.Content)
}

func TestParseCompletionTwoLines(t *testing.T) {
	f := generate.ParseCompletion("Title: A\nSome leftover text")

	assert.Equal(t, "A", f.Title)
	assert.Empty(t, f.SubHeading)
	assert.Empty(t, f.Category)
	assert.Equal(t, "Some leftover text", f.Content)
}

func TestParseCompletionSingleLine(t *testing.T) {
	f := generate.ParseCompletion("Title: Lonely")

	assert.Equal(t, "Lonely", f.Title)
	assert.Empty(t, f.SubHeading)
	assert.Empty(t, f.Category)
	assert.Empty(t, f.Content)
}

func TestParseCompletionEmpty(t *testing.T) {
	f := generate.ParseCompletion("")

	assert.Empty(t, f.Title)
	assert.Empty(t, f.SubHeading)
	assert.Empty(t, f.Category)
	assert.Empty(t, f.Content)
}

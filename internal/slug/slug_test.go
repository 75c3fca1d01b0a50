package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prankpress/internal/slug"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Giant Squirrel Spotted Downtown!": "giant-squirrel-spotted-downtown",
		"Café Münster!":                    "cafe-munster",
		"  Hello   World  ":                "hello-world",
		"already-a-slug":                   "already-a-slug",
		"snake_case stays":                 "snake_case-stays",
		"a -- b":                           "a-b",
		"--- trimmed ---":                  "trimmed",
		"NTU Gives Out Free Food":          "ntu-gives-out-free-food",
	}

	for input, want := range cases {
		assert.Equal(t, want, slug.Slugify(input), "input: %q", input)
	}
}

func TestSlugifyEmptyResults(t *testing.T) {
	for _, input := range []string{"", "   ", "!!!", "?!?", "🎉🎉🎉", "。。。", "- - -"} {
		assert.Empty(t, slug.Slugify(input), "input: %q", input)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Giant Squirrel Spotted Downtown!",
		"Café Münster!",
		"  spaced   out  ",
		"mixed_CASE and-hyphens",
	}
	for _, input := range inputs {
		once := slug.Slugify(input)
		assert.Equal(t, once, slug.Slugify(once), "input: %q", input)
	}
}

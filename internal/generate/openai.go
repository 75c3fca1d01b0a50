package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"prankpress/internal/conf"
	"prankpress/pkg/errors"
	"prankpress/pkg/xerr"
)

// promptTemplate is the wire contract with the completion provider: the
// labelled lines it asks for are exactly what ParseCompletion expects back.
const promptTemplate = `Write a short news article (200-300 words) based on this description: "%s".
Make it sound realistic as this is for an April Fools' joke.

Reply in plain text with exactly this layout and nothing else:
Title: <the headline>
Subheading: <a one-sentence summary>
Category: <one of Food, Technology, Education, Lifestyle, Business, Entertainment, Travel>
<the article body, paragraphs separated by a blank line>`

// OpenAI calls any OpenAI-compatible completion endpoint.
type OpenAI struct {
	llm *openai.LLM
}

func NewOpenAI(cfg conf.GeneratorConfig) (*OpenAI, error) {
	opts := []openai.Option{openai.WithToken(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &OpenAI{llm: llm}, nil
}

func (g *OpenAI) Generate(ctx context.Context, description string) (Fields, error) {
	prompt := fmt.Sprintf(promptTemplate, description)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(0.8),
	)
	if err != nil {
		return Fields{}, errors.Wrap(xerr.ErrGenerationFailed, "Failed to generate article content.", err)
	}

	// Models occasionally fence plain text in a code block anyway.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	f := ParseCompletion(raw)
	if f.Title == "" || f.Content == "" {
		return Fields{}, errors.New(xerr.ErrGenerationFailed, "Failed to generate article content.")
	}
	return f, nil
}

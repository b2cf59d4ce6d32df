package llm

import (
	"context"
	"fmt"

	"github.com/Obaid38/USDeathsByPolice/internal/model"
)

// Summarizer wraps a Provider and produces report narratives
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer for the configured provider. An empty
// provider name yields a disabled summarizer.
func NewSummarizer(config Config) (*Summarizer, error) {
	if config.Provider == "" {
		return &Summarizer{config: config}, nil
	}

	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// GenerateNarrative produces the narrative for a finished report. The
// returned Narrative carries warnings when the text uses causal language.
func (s *Summarizer) GenerateNarrative(ctx context.Context, report model.Report) (*model.Narrative, error) {
	if s.provider == nil {
		return nil, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	narrative := &model.Narrative{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}

	for _, phrase := range DetectCausalLanguage(resp.Summary) {
		narrative.Warnings = append(narrative.Warnings,
			fmt.Sprintf("narrative uses causal language: %q", phrase))
	}

	return narrative, nil
}

// NewProvider creates the configured provider
func NewProvider(config Config) (Provider, error) {
	switch config.Provider {
	case "openai":
		return NewOpenAIProvider(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q (supported: openai)", config.Provider)
	}
}

package answer

import (
	"context"
	"log/slog"
	"time"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
)

// Answer sources reported alongside the reply text.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Options configures reply generation. The zero value disables the LLM
// path entirely.
type Options struct {
	Provider    string
	Model       string
	BaseURL     string
	APIKey      string
	Style       string
	Length      string
	Temperature float64
	Timeout     time.Duration
	TopK        int
	AllowLLM    bool
}

// Composer produces the reply for one search. When the generator is absent,
// disabled or failing, the deterministic summarizer answers instead; the
// caller never sees an error.
type Composer struct {
	gen    Generator
	opts   Options
	logger *slog.Logger
}

// NewComposer wires a composer. gen may be nil.
func NewComposer(gen Generator, opts Options, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.TopK <= 0 {
		opts.TopK = 3
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Composer{gen: gen, opts: opts, logger: logger}
}

// Compose returns the reply text and its source. allowLLM gates the
// generator per request; topK overrides the configured summary depth when
// positive.
func (c *Composer) Compose(ctx context.Context, fs *model.FilterSet, results []model.ScoredListing, allowLLM bool, topK int) (string, string) {
	if topK <= 0 {
		topK = c.opts.TopK
	}
	if allowLLM && c.opts.AllowLLM && c.gen != nil {
		prompt := BuildPrompt(fs, results, topK, c.opts.Style, c.opts.Length)
		genCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
		text, err := c.gen.Generate(genCtx, prompt, c.opts.Temperature)
		if err == nil {
			return text, SourceLLM
		}
		c.logger.Warn("llm generation failed, using fallback", "err", err)
	}
	return Summarize(fs, results, topK), SourceFallback
}

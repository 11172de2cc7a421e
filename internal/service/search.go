// Package service orchestrates one search cycle: interpret the query,
// narrow and score the dataset, rank, and compose the reply.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/answer"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/dataset"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/engine"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/query"
)

// Options bound the per-request knobs a client may set.
type Options struct {
	DefaultLimit    int
	MaxLimit        int
	RoommateMaxRows int
}

// SearchService handles search business logic
type SearchService struct {
	repo        *dataset.Repository
	interpreter *query.Interpreter
	composer    *answer.Composer
	opts        Options
	logger      *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(
	repo *dataset.Repository,
	interpreter *query.Interpreter,
	composer *answer.Composer,
	opts Options,
	logger *slog.Logger,
) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = model.DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.RoommateMaxRows <= 0 {
		opts.RoommateMaxRows = 20
	}
	return &SearchService{
		repo:        repo,
		interpreter: interpreter,
		composer:    composer,
		opts:        opts,
		logger:      logger,
	}
}

// Search runs the full cycle for one natural-language query. A query that
// matches nothing is a valid search with zero results, not an error.
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) *model.SearchResponse {
	start := time.Now()

	fs := s.interpreter.Interpret(req.Query)
	fs.Limit = s.clampLimit(req.Options, fs.Limit)

	filtered := engine.Filter(s.repo.All(), fs)
	scored := engine.ScoreAll(filtered, fs)
	ranked := engine.Rank(scored, fs)

	topK := 0
	if req.Options != nil {
		topK = req.Options.TopK
	}
	summary, source := s.composer.Compose(ctx, fs, ranked, allowLLM(req.Options), topK)

	resp := &model.SearchResponse{
		SearchID:      uuid.NewString(),
		Results:       ranked,
		Total:         len(ranked),
		Filters:       fs,
		Summary:       summary,
		SummarySource: source,
		Took:          time.Since(start).Milliseconds(),
	}
	s.logger.Info("search completed",
		"search_id", resp.SearchID,
		"query", req.Query,
		"total", resp.Total,
		"summary_source", source,
		"took_ms", resp.Took,
	)
	return resp
}

// Roommates runs the shared-housing variant of the cycle.
func (s *SearchService) Roommates(ctx context.Context, req *model.SearchRequest) *model.RoommateResponse {
	start := time.Now()

	fs := s.interpreter.Interpret(req.Query)
	maxN := s.opts.RoommateMaxRows
	if req.Options != nil && req.Options.Limit > 0 {
		maxN = min(req.Options.Limit, s.opts.MaxLimit)
	}

	candidates := engine.RoommateCandidates(s.repo.All(), fs, maxN)

	resp := &model.RoommateResponse{
		SearchID: uuid.NewString(),
		Results:  candidates,
		Total:    len(candidates),
		Filters:  fs,
		Took:     time.Since(start).Milliseconds(),
	}
	s.logger.Info("roommate search completed",
		"search_id", resp.SearchID,
		"query", req.Query,
		"total", resp.Total,
		"took_ms", resp.Took,
	)
	return resp
}

// GetListing looks one listing up together with its price context.
func (s *SearchService) GetListing(id int64) (model.Listing, dataset.PriceContext, bool) {
	l, ok := s.repo.GetByID(id)
	if !ok {
		return model.Listing{}, dataset.PriceContext{}, false
	}
	return l, s.repo.PriceContext(l), true
}

func (s *SearchService) clampLimit(opts *model.SearchOptions, fallback int) int {
	limit := fallback
	if opts != nil && opts.Limit > 0 {
		limit = opts.Limit
	}
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}
	if limit > s.opts.MaxLimit {
		limit = s.opts.MaxLimit
	}
	return limit
}

func allowLLM(opts *model.SearchOptions) bool {
	if opts == nil || opts.AllowLLM == nil {
		return true
	}
	return *opts.AllowLLM
}

package scrapers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mattsblocklist/fti/internal/countries"
	"github.com/mattsblocklist/fti/internal/indicators"
)

// SourceStats contains statistics for each source.
type SourceStats struct {
	Source       string            `json:"source"`
	URL          string            `json:"url"`
	Family       indicators.Family `json:"family"`
	FetchedAt    time.Time         `json:"fetched_at"`
	ContentHash  string            `json:"content_hash,omitempty"`
	ParseStatus  string            `json:"parse_status"`
	RawCount     int               `json:"raw_count"`
	MatchedCount int               `json:"matched_count"`
	SkippedCount int               `json:"skipped_count"`
}

// Apply scores each record, resolves its label and writes the slot on
// every matching country. The first unknown category or unknown country
// aborts with an error naming the offending record.
func Apply(result *ScrapeResult, resolver *countries.Resolver, scorer indicators.Scorer) (SourceStats, error) {
	stats := SourceStats{
		Source:       result.Source,
		URL:          result.URL,
		Family:       scorer.Family(),
		FetchedAt:    result.FetchedAt,
		ContentHash:  result.ContentHash,
		ParseStatus:  result.ParseStatus,
		RawCount:     len(result.Records),
		SkippedCount: len(result.Skipped),
	}

	family := scorer.Family().String()
	matched := make(map[string]bool)

	for _, rec := range result.Records {
		raw := strings.TrimSpace(rec.Value)

		score, err := scorer.Score(raw)
		if err != nil {
			return stats, fmt.Errorf("%s: %q: %w", result.Source, rec.Label, err)
		}

		targets, err := resolver.Resolve(rec.Label)
		if err != nil {
			return stats, fmt.Errorf("%s: %w", result.Source, err)
		}

		for _, c := range targets {
			c.Observe(family, raw, score)
			matched[c.Code()] = true
		}
	}

	stats.MatchedCount = len(matched)
	return stats, nil
}

// Run executes the scrapers one after another, applying each result to the
// registry before the next starts. Any failure stops the run.
func Run(ctx context.Context, list []Scraper, resolver *countries.Resolver, logger *slog.Logger) ([]SourceStats, error) {
	all := make([]SourceStats, 0, len(list))

	for _, s := range list {
		logger.InfoContext(ctx, "fetching source", slog.String("source", s.Name()), slog.String("url", s.URL()))

		result, err := s.Scrape(ctx)
		if err != nil {
			return all, fmt.Errorf("%s: %w", s.Name(), err)
		}

		stats, err := Apply(result, resolver, s.Scorer())
		if err != nil {
			return all, err
		}

		logger.InfoContext(ctx, "source applied",
			slog.String("source", stats.Source),
			slog.String("family", stats.Family.String()),
			slog.String("content_hash", stats.ContentHash),
			slog.Int("raw_count", stats.RawCount),
			slog.Int("matched_count", stats.MatchedCount),
			slog.Int("skipped_count", stats.SkippedCount))

		all = append(all, stats)
	}

	return all, nil
}

// Command fti collects financial restriction indicators for every country,
// combines them into the financial tyranny index and prints the scored
// countries as a delimited table.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattsblocklist/fti/internal/config"
	"github.com/mattsblocklist/fti/internal/countries"
	"github.com/mattsblocklist/fti/internal/fetch"
	"github.com/mattsblocklist/fti/internal/index"
	"github.com/mattsblocklist/fti/internal/logging"
	"github.com/mattsblocklist/fti/internal/report"
	"github.com/mattsblocklist/fti/internal/scrapers"
)

// RunSummary is written by -stats.
type RunSummary struct {
	RunID      string                 `json:"run_id"`
	Timestamp  time.Time              `json:"timestamp"`
	Countries  int                    `json:"countries"`
	Composites int                    `json:"composites"`
	Rows       int                    `json:"rows"`
	Sources    []scrapers.SourceStats `json:"sources"`
}

type options struct {
	configPath string
	sources    string
	xlsx       string
	stats      string
	noCache    bool
	verbose    bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "fti: %v\n", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fti", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file (optional)")
	fs.StringVar(&opts.sources, "sources", "", "Comma-separated list of sources to use (empty = all)")
	fs.StringVar(&opts.xlsx, "xlsx", "", "Also write the report to this spreadsheet")
	fs.StringVar(&opts.stats, "stats", "", "Write per-source statistics as JSON to this file")
	fs.BoolVar(&opts.noCache, "no-cache", false, "Do not read or write the response cache")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	err := fs.Parse(args)
	return opts, err
}

// run executes the pipeline. The report reaches stdout only after every
// source and the aggregation have succeeded.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.xlsx != "" {
		cfg.Report.XLSX = opts.xlsx
	}

	logger := logging.New(cfg.Logging, stderr)
	ctx, runID := logging.WithRunID(ctx)

	if err := execute(ctx, cfg, opts, runID, logger, stdout); err != nil {
		logger.ErrorContext(ctx, "run failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func execute(ctx context.Context, cfg *config.Config, opts options, runID string, logger *slog.Logger, stdout io.Writer) error {
	// Validate everything static before any fetch.
	weights := index.DefaultWeights()
	if len(cfg.Weights) > 0 {
		w, err := index.FromMap(cfg.Weights)
		if err != nil {
			return err
		}
		weights = w
	}

	fieldNames := cfg.Report.Fields
	if len(fieldNames) == 0 {
		fieldNames = report.DefaultFieldNames()
	}
	fields, err := report.FieldsByName(fieldNames)
	if err != nil {
		return err
	}
	delim, err := report.ParseDelimiter(cfg.Report.Delimiter)
	if err != nil {
		return err
	}

	reg, err := countries.Seed(countries.Canonical())
	if err != nil {
		return err
	}
	resolver, err := countries.NewResolver(reg,
		mergeAliases(countries.DefaultAliases(), cfg.Aliases),
		mergeBlocs(countries.DefaultBlocs(), cfg.Blocs))
	if err != nil {
		return err
	}

	var cache *fetch.Cache
	if cfg.Cache.Enabled && !opts.noCache {
		cache, err = fetch.OpenCache(cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer cache.Close()
		logger.DebugContext(ctx, "response cache open", slog.String("path", cfg.Cache.Path))
	}

	client := fetch.New(fetch.Options{
		HTTPClient: &http.Client{Timeout: cfg.HTTP.Timeout},
		Cache:      cache,
		CacheTTL:   cfg.Cache.TTL,
		UserAgent:  cfg.HTTP.UserAgent,
		RPS:        cfg.HTTP.RPS,
		Burst:      cfg.HTTP.Burst,
		Logger:     logger,
	})

	list, err := scrapers.DefaultRegistry(client, cfg.ScraperSources()).Select(splitList(opts.sources))
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "starting run", slog.Int("sources", len(list)), slog.Int("countries", reg.Len()))

	stats, err := scrapers.Run(ctx, list, resolver, logger)
	if err != nil {
		return err
	}

	composites, err := index.Compute(reg, weights)
	if err != nil {
		return err
	}

	rows := report.Rows(reg, fields)

	var buf bytes.Buffer
	if err := report.WriteDelimited(&buf, fields, rows, delim); err != nil {
		return err
	}

	if cfg.Report.XLSX != "" {
		if err := report.WriteXLSX(cfg.Report.XLSX, fields, rows); err != nil {
			return err
		}
	}

	if opts.stats != "" {
		summary := RunSummary{
			RunID:      runID,
			Timestamp:  time.Now().UTC(),
			Countries:  reg.Len(),
			Composites: composites,
			Rows:       len(rows),
			Sources:    stats,
		}
		if err := writeSummary(opts.stats, summary); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "run complete",
		slog.Int("composites", composites),
		slog.Int("rows", len(rows)))

	_, err = stdout.Write(buf.Bytes())
	return err
}

func writeSummary(path string, summary RunSummary) error {
	content, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func mergeAliases(base, extra map[string]string) map[string]string {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

func mergeBlocs(base, extra map[string][]string) map[string][]string {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

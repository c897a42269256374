package fetcher

import (
	"context"
	"fmt"
	"time"

	"upfetch/pkg/config"
	"upfetch/pkg/logger"
	"upfetch/pkg/ratelimit"
	"upfetch/pkg/storage"
	"upfetch/pkg/ui"
	"upfetch/pkg/uniprot"
)

// Request describes one fetch run
type Request struct {
	// TaxID is the NCBI taxonomy ID used as the query filter
	TaxID int
	// Reviewed selects curated ("true") or unreviewed ("false") entries
	Reviewed string
	// Output is the destination TSV file path
	Output string
}

// Summary reports the outcome of a completed fetch run
type Summary struct {
	Records       int
	Pages         int
	TotalReported string
	Output        string
	Elapsed       time.Duration
}

// Fetcher drives the paginated download of UniProtKB records
type Fetcher struct {
	client  *uniprot.Client
	limiter ratelimit.Limiter
	config  *config.Config
	logger  logger.Logger
}

// New creates a Fetcher from the given configuration
func New(cfg *config.Config) *Fetcher {
	log := logger.GetLogger()

	var limiter ratelimit.Limiter
	if cfg.RateLimit.RequestDelay > 0 {
		limiter = ratelimit.NewFixedInterval(cfg.RateLimit.RequestDelay.Std())
	} else {
		limiter = ratelimit.NewTokenBucket(cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	return &Fetcher{
		client:  uniprot.NewClient(&cfg.UniProt, cfg.Retry, log),
		limiter: limiter,
		config:  cfg,
		logger:  log,
	}
}

// QueryURL returns the initial query URL for a request
func (f *Fetcher) QueryURL(req Request) string {
	return uniprot.BuildSearchURL(
		f.config.UniProt.BaseURL,
		req.TaxID,
		req.Reviewed,
		f.config.UniProt.Fields,
		f.config.UniProt.PageSize,
	)
}

// Run downloads every record matching the request into the output file.
// An error leaves a partially written file behind; there is no completion
// marker and no resume support.
func (f *Fetcher) Run(ctx context.Context, req Request) (*Summary, error) {
	startURL := f.QueryURL(req)

	f.logger.InfoWithFields("starting UniProtKB download", map[string]interface{}{
		"taxid":    req.TaxID,
		"reviewed": req.Reviewed,
		"output":   req.Output,
	})

	writer, err := storage.NewWriter(req.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	tracker := ui.NewStatusTracker()
	batcher := uniprot.NewBatcher(f.client, f.limiter, startURL, f.logger)
	totalReported := "unknown"

	for {
		page, err := batcher.Next(ctx)
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("fetch aborted after %d records: %w", writer.Rows(), err)
		}
		if page == nil {
			break
		}

		if page.IsEmpty() {
			f.logger.Info("empty response batch, stopping")
			break
		}

		totalReported = page.TotalResults

		rows, err := writer.WritePage(page.Lines())
		if err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to write page: %w", err)
		}
		tracker.AddPage(rows)

		f.logger.InfoWithFields("fetched records so far", map[string]interface{}{
			"fetched": writer.Rows(),
			"total":   totalReported,
		})
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	f.logger.InfoWithFields("download completed", map[string]interface{}{
		"total":  writer.Rows(),
		"pages":  tracker.PagesFetched,
		"output": req.Output,
	})

	return &Summary{
		Records:       writer.Rows(),
		Pages:         tracker.PagesFetched,
		TotalReported: totalReported,
		Output:        req.Output,
		Elapsed:       tracker.Elapsed(),
	}, nil
}

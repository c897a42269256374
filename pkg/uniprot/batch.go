package uniprot

import (
	"context"

	"upfetch/pkg/logger"
	"upfetch/pkg/ratelimit"
)

// Batcher is a pull-based iterator over the pages of a search query.
// It is finite, single-consumer, and not restartable: once exhausted,
// Next keeps returning (nil, nil).
type Batcher struct {
	client  *Client
	limiter ratelimit.Limiter
	nextURL string
	done    bool
	logger  logger.Logger
}

// NewBatcher creates a page iterator starting at the given query URL
func NewBatcher(client *Client, limiter ratelimit.Limiter, startURL string, log logger.Logger) *Batcher {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Batcher{
		client:  client,
		limiter: limiter,
		nextURL: startURL,
		logger:  log,
	}
}

// Next fetches and returns the next page. It waits on the rate limiter
// before each request. Returns (nil, nil) once pagination is exhausted.
func (b *Batcher) Next(ctx context.Context) (*Page, error) {
	if b.done {
		return nil, nil
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	page, err := b.client.FetchPage(ctx, b.nextURL)
	if err != nil {
		b.done = true
		return nil, err
	}

	b.nextURL = page.NextURL
	if b.nextURL == "" {
		// Last page: no rel="next" in the Link header
		b.done = true
	}

	b.logger.DebugWithFields("fetched result page", map[string]interface{}{
		"total_results": page.TotalResults,
		"last_page":     page.IsLast(),
	})

	return page, nil
}

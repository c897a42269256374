// Package fetcher orchestrates the paginated download of UniProtKB records.
//
// It glues together the API client, the rate limiter, and the TSV writer:
// build the initial query URL, pull pages through the Batcher until the Link
// header carries no rel="next" entry, append each page to the output file,
// and log progress along the way. The loop is strictly sequential; pacing
// and retries are handled below it.
package fetcher

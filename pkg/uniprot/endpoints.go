package uniprot

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// BaseURL is the UniProtKB search endpoint
	BaseURL = "https://rest.uniprot.org/uniprotkb/search"

	// DefaultPageSize is the number of records requested per page
	DefaultPageSize = 500

	// MaxPageSize is the maximum page size accepted by the API
	MaxPageSize = 500

	// TotalResultsHeader carries the total record count for a query
	TotalResultsHeader = "x-total-results"

	// LinkHeader carries the RFC5988 pagination links
	LinkHeader = "Link"
)

// SearchQuery builds the UniProt query string for a taxonomic filter.
// The taxid and reviewed flag are passed through uninterpreted; the remote
// API rejects malformed values.
func SearchQuery(taxID int, reviewed string) string {
	return fmt.Sprintf("reviewed:%s AND taxonomy_id:%d", reviewed, taxID)
}

// BuildSearchURL constructs the initial query URL with percent-encoded
// parameters. Subsequent page URLs come from the Link response header and
// are used verbatim.
func BuildSearchURL(baseURL string, taxID int, reviewed string, fields string, size int) string {
	if size <= 0 {
		size = DefaultPageSize
	} else if size > MaxPageSize {
		size = MaxPageSize
	}

	params := url.Values{}
	params.Set("query", SearchQuery(taxID, reviewed))
	params.Set("fields", fields)
	params.Set("format", "tsv")
	params.Set("size", strconv.Itoa(size))

	return baseURL + "?" + params.Encode()
}

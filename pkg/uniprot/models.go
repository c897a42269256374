package uniprot

import "strings"

// Page is one bounded-size chunk of query results
type Page struct {
	// Body is the raw TSV text of the page (header line + data lines)
	Body string

	// TotalResults is the total record count reported by the API for the
	// whole query, or "unknown" when the header is absent
	TotalResults string

	// NextURL is the URL of the next page, empty on the last page
	NextURL string
}

// Lines splits the page body into lines, dropping the trailing newline
func (p *Page) Lines() []string {
	body := strings.TrimRight(p.Body, "\r\n")
	if body == "" {
		return nil
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// IsEmpty reports whether the page carries no lines at all
func (p *Page) IsEmpty() bool {
	return len(p.Lines()) == 0
}

// IsLast reports whether this is the final page of the query
func (p *Page) IsLast() bool {
	return p.NextURL == ""
}

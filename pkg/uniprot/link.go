package uniprot

import "regexp"

// nextLinkPattern matches the next-page URL in an RFC5988 Link header,
// e.g. `<https://rest.uniprot.org/uniprotkb/search?cursor=abc&size=500>; rel="next"`
var nextLinkPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// NextPageURL extracts the next-page URL from a Link header value.
// Returns the empty string when the header is absent or carries no
// rel="next" entry, which marks the last page.
func NextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}
	match := nextLinkPattern.FindStringSubmatch(linkHeader)
	if match == nil {
		return ""
	}
	return match[1]
}

package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// MockUniProtServer simulates the UniProtKB search endpoint with
// Link-header pagination and configurable failures.
type MockUniProtServer struct {
	server       *httptest.Server
	header       string
	pageSizes    []int
	requestCount int32
	failures     map[int]int // request ordinal -> status code to return once
	mu           sync.Mutex
}

// NewMockUniProtServer creates a mock server that serves the given page
// sizes in sequence. Every data row is a synthetic accession/gene pair.
func NewMockUniProtServer(pageSizes []int) *MockUniProtServer {
	m := &MockUniProtServer{
		header:    "Entry\tEntry Name\tGene Names",
		pageSizes: pageSizes,
		failures:  make(map[int]int),
	}

	m.server = httptest.NewServer(http.HandlerFunc(m.handleSearch))
	return m
}

// URL returns the mock search endpoint URL
func (m *MockUniProtServer) URL() string {
	return m.server.URL
}

// Close shuts down the mock server
func (m *MockUniProtServer) Close() {
	m.server.Close()
}

// FailRequest makes the n-th request (1-based) return the given status once
func (m *MockUniProtServer) FailRequest(n, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[n] = status
}

// RequestCount returns the number of requests served so far
func (m *MockUniProtServer) RequestCount() int {
	return int(atomic.LoadInt32(&m.requestCount))
}

// TotalRecords returns the sum of all page sizes
func (m *MockUniProtServer) TotalRecords() int {
	total := 0
	for _, size := range m.pageSizes {
		total += size
	}
	return total
}

func (m *MockUniProtServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	n := int(atomic.AddInt32(&m.requestCount, 1))

	m.mu.Lock()
	status, failed := m.failures[n]
	if failed {
		delete(m.failures, n)
	}
	m.mu.Unlock()

	if failed {
		w.WriteHeader(status)
		return
	}

	page := 0
	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		page, _ = strconv.Atoi(cursor)
	}
	if page >= len(m.pageSizes) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("x-total-results", strconv.Itoa(m.TotalRecords()))
	if page < len(m.pageSizes)-1 {
		w.Header().Set("Link", fmt.Sprintf(`<%s/?cursor=%d>; rel="next"`, m.server.URL, page+1))
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(m.renderPage(page)))
}

// renderPage builds the TSV body for a page, header line included.
// UniProt re-sends the header on every page.
func (m *MockUniProtServer) renderPage(page int) string {
	var sb strings.Builder
	sb.WriteString(m.header + "\n")

	offset := 0
	for i := 0; i < page; i++ {
		offset += m.pageSizes[i]
	}
	for i := 0; i < m.pageSizes[page]; i++ {
		id := offset + i
		sb.WriteString(fmt.Sprintf("P%06d\tPROT%d_MOCK\tgene%d\n", id, id, id))
	}
	return sb.String()
}

package uniprot

import "testing"

func TestNextPageURL(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "next link present",
			header: `<https://rest.uniprot.org/uniprotkb/search?cursor=abc123&size=500>; rel="next"`,
			want:   "https://rest.uniprot.org/uniprotkb/search?cursor=abc123&size=500",
		},
		{
			name:   "no spacing after semicolon",
			header: `<https://rest.uniprot.org/uniprotkb/search?cursor=xyz>;rel="next"`,
			want:   "https://rest.uniprot.org/uniprotkb/search?cursor=xyz",
		},
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
		{
			name:   "no next relation",
			header: `<https://rest.uniprot.org/uniprotkb/search?cursor=abc>; rel="prev"`,
			want:   "",
		},
		{
			name:   "malformed header",
			header: `rel="next"`,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPageURL(tt.header)
			if got != tt.want {
				t.Errorf("NextPageURL(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestPageLines(t *testing.T) {
	page := &Page{Body: "Entry\tGene\nP12345\tabc\nP67890\tdef\n"}
	lines := page.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Entry\tGene" {
		t.Errorf("unexpected header line: %q", lines[0])
	}
}

func TestPageLinesCRLF(t *testing.T) {
	page := &Page{Body: "Entry\tGene\r\nP12345\tabc\r\n"}
	lines := page.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "P12345\tabc" {
		t.Errorf("carriage return not stripped: %q", lines[1])
	}
}

func TestPageIsEmpty(t *testing.T) {
	if !(&Page{Body: ""}).IsEmpty() {
		t.Error("expected empty body to be empty")
	}
	if !(&Page{Body: "\n"}).IsEmpty() {
		t.Error("expected newline-only body to be empty")
	}
	if (&Page{Body: "Entry\n"}).IsEmpty() {
		t.Error("expected non-empty body to not be empty")
	}
}

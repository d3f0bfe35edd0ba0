package importer

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := `# Estudo de Caso

Texto introdutório.

## Metodologia

Conteúdo da metodologia.

### Coleta de dados

Conteúdo da coleta.

## Resultados

Conteúdo dos resultados.
`
	p := &MarkdownParser{}
	parsed, err := p.Parse(strings.NewReader(input), "estudo.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The single leading h1 becomes the document title.
	if parsed.Title != "Estudo de Caso" {
		t.Errorf("expected title %q, got %q", "Estudo de Caso", parsed.Title)
	}

	if len(parsed.Sections) != 2 {
		t.Fatalf("expected 2 top-level sections, got %d", len(parsed.Sections))
	}

	met := parsed.Sections[0]
	if met.Title != "Metodologia" {
		t.Errorf("expected %q, got %q", "Metodologia", met.Title)
	}
	if !strings.Contains(met.Content, "Conteúdo da metodologia.") {
		t.Errorf("unexpected section content %q", met.Content)
	}
	if len(met.Subsections) != 1 || met.Subsections[0].Title != "Coleta de dados" {
		t.Fatalf("expected one subsection %q, got %v", "Coleta de dados", met.Subsections)
	}

	if parsed.Sections[1].Title != "Resultados" {
		t.Errorf("expected %q, got %q", "Resultados", parsed.Sections[1].Title)
	}
}

func TestMarkdownParser_IntroTextBeforeHeadings(t *testing.T) {
	input := `Texto antes de qualquer título.

# Primeira seção

Conteúdo.
`
	p := &MarkdownParser{}
	parsed, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With preamble text the h1 is a section, not the title.
	if parsed.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", parsed.Title)
	}
	if len(parsed.Sections) != 1 || parsed.Sections[0].Title != "Primeira seção" {
		t.Fatalf("expected one section %q, got %v", "Primeira seção", parsed.Sections)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := `Apenas texto simples.

Outro parágrafo.`

	p := &MarkdownParser{}
	parsed, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parsed.Sections) != 1 {
		t.Fatalf("expected 1 section for headingless markdown, got %d", len(parsed.Sections))
	}
	s := parsed.Sections[0]
	if s.Title != "plain" {
		t.Errorf("expected fallback title %q, got %q", "plain", s.Title)
	}
	if !strings.Contains(s.Content, "Apenas texto simples.") ||
		!strings.Contains(s.Content, "Outro parágrafo.") {
		t.Errorf("section content missing paragraphs: %q", s.Content)
	}
}

func TestMarkdownParser_CodeBlocksKeepText(t *testing.T) {
	input := "# T\n\n## Endpoints\n\nLista:\n\n```\nGET /document/{ id }/html\n```\n\nTexto depois.\n"

	p := &MarkdownParser{}
	parsed, err := p.Parse(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parsed.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(parsed.Sections))
	}
	content := parsed.Sections[0].Content
	if !strings.Contains(content, "GET /document/{ id }/html") {
		t.Errorf("expected code block content, got %q", content)
	}
	if !strings.Contains(content, "Texto depois.") {
		t.Errorf("expected post-code text, got %q", content)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	parsed, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed.Sections) != 0 {
		t.Errorf("expected 0 sections for empty input, got %d", len(parsed.Sections))
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename  string
		supported bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"doc.txt", true},
		{"doc.html", true},
		{"doc.pdf", true},
		{"doc.docx", true},
		{"doc.csv", false},
		{"doc.exe", false},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if tt.supported && err != nil {
			t.Errorf("ForFile(%q): unexpected error %v", tt.filename, err)
		}
		if !tt.supported && err == nil {
			t.Errorf("ForFile(%q): expected error", tt.filename)
		}
		if got := IsSupportedExtension(tt.filename); got != tt.supported {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", tt.filename, got, tt.supported)
		}
	}
}

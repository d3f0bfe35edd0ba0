// Package importer converts uploaded files (markdown, docx, pdf, html,
// plain text) into the structured document model, so existing drafts can be
// re-rendered as ABNT documents. Headings become the section tree; blank
// lines inside a section stay as paragraph breaks.
package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mvesperini/abntdoc/internal/document"
)

// Parsed is the structural result of importing one file. Metadata beyond
// the title (author, institution, ...) is supplied separately by the caller.
type Parsed struct {
	Title    string
	Sections []document.Section
}

// Parser converts raw file bytes into a Parsed document.
type Parser interface {
	Parse(r io.Reader, filename string) (Parsed, error)
}

// SupportedExtensions lists file extensions this service can import.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// node is the mutable tree the parsers build before conversion into the
// immutable section model.
type node struct {
	title    string
	content  string
	children []*node
}

func (n *node) addText(t string) {
	if n.content != "" {
		n.content += "\n\n" + t
	} else {
		n.content = t
	}
}

// sections converts a parser's root node into the document model. A file
// with no headings collapses into a single section titled fallbackTitle.
func (root *node) sections(fallbackTitle string) []document.Section {
	out := convertNodes(root.children)
	if len(out) == 0 && root.content != "" {
		out = []document.Section{{Title: fallbackTitle, Content: root.content}}
	}
	return out
}

func convertNodes(nodes []*node) []document.Section {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]document.Section, len(nodes))
	for i, n := range nodes {
		out[i] = document.Section{
			Title:       n.title,
			Content:     n.content,
			Subsections: convertNodes(n.children),
		}
	}
	return out
}

// titleFromFilename strips the path and extension off an upload name.
func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

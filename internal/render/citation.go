package render

import (
	"strings"
	"time"

	"github.com/mvesperini/abntdoc/internal/document"
)

// timeNow is replaced in tests to pin the current-year fallback.
var timeNow = time.Now

// citationStyle supplies the markup wrapping for one output format. The
// field order of a citation is fixed here, once, for every format; styles
// only decorate emphasis and escape text at the boundary.
type citationStyle struct {
	bold   func(string) string
	italic func(string) string
	url    func(string) string
	escape func(string) string
}

func identity(s string) string { return s }

var plainStyle = citationStyle{
	bold:   identity,
	italic: identity,
	url:    identity,
	escape: identity,
}

// formatCitation renders one reference as a running-text ABNT citation:
//
//	Author. Title. [Journal, ][Publisher, ]Year.[ p. Pages.][ Disponível em: URL.][ DOI: doi.]
//
// Separators are emitted only next to present fields; absent optional fields
// leave no dangling punctuation.
func formatCitation(ref document.Reference, st citationStyle) string {
	var b strings.Builder

	b.WriteString(st.escape(ref.Author))
	b.WriteString(". ")
	b.WriteString(st.bold(st.escape(ref.Title)))
	b.WriteString(". ")

	if ref.Journal != "" {
		b.WriteString(st.italic(st.escape(ref.Journal)))
		b.WriteString(", ")
	}
	if ref.Publisher != "" {
		b.WriteString(st.escape(ref.Publisher))
		b.WriteString(", ")
	}

	b.WriteString(st.escape(ref.Year))
	b.WriteString(".")

	if ref.Pages != "" {
		b.WriteString(" p. ")
		b.WriteString(st.escape(ref.Pages))
		b.WriteString(".")
	}
	if ref.URL != "" {
		b.WriteString(" Disponível em: ")
		b.WriteString(st.url(ref.URL))
		b.WriteString(".")
	}
	if ref.DOI != "" {
		b.WriteString(" DOI: ")
		b.WriteString(st.escape(ref.DOI))
		b.WriteString(".")
	}

	return b.String()
}

// Citation returns the citation text for ref without any markup. Both
// renderers emit exactly this text, differing only in emphasis wrapping.
func Citation(ref document.Reference) string {
	return formatCitation(ref, plainStyle)
}

// paragraphs splits free text into paragraph blocks on blank-line
// boundaries. Blocks are trimmed and empty blocks are dropped, so a
// trailing blank line produces no empty paragraph.
func paragraphs(content string) []string {
	var out []string
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// yearOf returns the explicit date when set, otherwise the current year.
func yearOf(date string) string {
	if date != "" {
		return date
	}
	return timeNow().Format("2006")
}

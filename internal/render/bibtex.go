package render

import (
	"fmt"
	"strings"

	"github.com/mvesperini/abntdoc/internal/document"
)

// BibTeXEntry renders one reference as a field-keyed database record.
// This is the reference database export, a separate capability from the
// running-text citations in the rendered bibliographies; its field layout
// differs and the two are never mixed.
func BibTeXEntry(ref document.Reference) string {
	var b strings.Builder

	fmt.Fprintf(&b, "@%s{%s,\n", ref.Type, ref.ID)
	fmt.Fprintf(&b, "  title={%s},\n", ref.Title)
	fmt.Fprintf(&b, "  author={%s},\n", ref.Author)
	fmt.Fprintf(&b, "  year={%s}", ref.Year)

	if ref.Journal != "" {
		fmt.Fprintf(&b, ",\n  journal={%s}", ref.Journal)
	}
	if ref.Publisher != "" {
		fmt.Fprintf(&b, ",\n  publisher={%s}", ref.Publisher)
	}
	if ref.Pages != "" {
		fmt.Fprintf(&b, ",\n  pages={%s}", ref.Pages)
	}
	if ref.URL != "" {
		fmt.Fprintf(&b, ",\n  url={%s}", ref.URL)
	}
	if ref.DOI != "" {
		fmt.Fprintf(&b, ",\n  doi={%s}", ref.DOI)
	}

	b.WriteString("\n}")
	return b.String()
}

// BibTeX renders every reference of doc as one database, entries in input
// order separated by a blank line.
func BibTeX(doc document.Document) string {
	entries := make([]string, len(doc.References))
	for i, ref := range doc.References {
		entries[i] = BibTeXEntry(ref)
	}
	return strings.Join(entries, "\n\n")
}

package render

import (
	"fmt"
	"strings"

	"github.com/mvesperini/abntdoc/internal/document"
)

var latexStyle = citationStyle{
	bold:   func(s string) string { return `\textbf{` + s + `}` },
	italic: func(s string) string { return `\textit{` + s + `}` },
	url:    func(s string) string { return `\url{` + s + `}` },
	escape: escapeLaTeX,
}

const latexPreamble = `\documentclass[12pt,a4paper]{article}

\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[brazil]{babel}
\usepackage{geometry}
\usepackage{times}
\usepackage{setspace}
\usepackage{indentfirst}
\usepackage{graphicx}
\usepackage{float}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage[hidelinks]{hyperref}

\geometry{
    top=3cm,
    bottom=2cm,
    left=3cm,
    right=2cm
}

\onehalfspacing
\setlength{\parindent}{1.25cm}
`

// LaTeX renders doc as a complete typesetting source mirroring the five
// blocks of the hypertext rendering: cover, abstract, contents, body and
// bibliography. Same purity and totality guarantees as HTML.
func LaTeX(doc document.Document) string {
	var b strings.Builder

	b.WriteString(latexPreamble)
	b.WriteString("\n")
	fmt.Fprintf(&b, "\\title{%s}\n", escapeLaTeX(doc.Title))
	fmt.Fprintf(&b, "\\author{%s}\n", escapeLaTeX(doc.Author))
	if doc.Date != "" {
		fmt.Fprintf(&b, "\\date{%s}\n", escapeLaTeX(doc.Date))
	} else {
		b.WriteString("\\date{\\today}\n")
	}
	b.WriteString("\n\\begin{document}\n\n")

	writeCoverLaTeX(&b, doc)
	writeAbstractLaTeX(&b, doc)

	b.WriteString("\\tableofcontents\n\\newpage\n\n")

	for i, s := range doc.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		writeSectionLaTeX(&b, s, 1)
	}

	writeBibliographyLaTeX(&b, doc)

	b.WriteString("\n\\end{document}\n")
	return b.String()
}

func writeCoverLaTeX(b *strings.Builder, doc document.Document) {
	b.WriteString("\\begin{titlepage}\n    \\centering\n    \\vspace*{2cm}\n\n")
	if doc.Institution != "" {
		fmt.Fprintf(b, "    \\textbf{\\large %s}\\\\[0.5cm]\n", escapeLaTeX(doc.Institution))
	}
	if doc.Course != "" {
		fmt.Fprintf(b, "    \\textbf{%s}\\\\[2cm]\n", escapeLaTeX(doc.Course))
	}
	fmt.Fprintf(b, "\n    \\textbf{\\Large %s}\\\\[3cm]\n", escapeLaTeX(doc.Author))
	fmt.Fprintf(b, "\n    \\textbf{\\LARGE %s}\\\\[3cm]\n", escapeLaTeX(doc.Title))
	b.WriteString("\n    \\vfill\n\n")
	if doc.Advisor != "" {
		fmt.Fprintf(b, "    \\begin{flushright}\n        Orientador: %s\n    \\end{flushright}\n\n", escapeLaTeX(doc.Advisor))
	}
	b.WriteString("    \\vspace{2cm}\n\n")
	fmt.Fprintf(b, "    \\textbf{%s}\n", escapeLaTeX(yearOf(doc.Date)))
	b.WriteString("\\end{titlepage}\n\n\\newpage\n\n")
}

func writeAbstractLaTeX(b *strings.Builder, doc document.Document) {
	if doc.Abstract == "" {
		return
	}
	b.WriteString("\\section*{Resumo}\n")
	b.WriteString(escapeLaTeX(doc.Abstract))
	b.WriteString("\n")
	if len(doc.Keywords) > 0 {
		fmt.Fprintf(b, "\n\\textbf{Palavras-chave:} %s.\n", escapeLaTeX(strings.Join(doc.Keywords, "; ")))
	}
	b.WriteString("\n\\newpage\n\n")
}

// writeSectionLaTeX emits one section and its subtree. The sectioning
// command is chosen by nesting depth, capped at subsubsection for depth
// three and deeper.
func writeSectionLaTeX(b *strings.Builder, s document.Section, depth int) {
	fmt.Fprintf(b, "\\%s{%s}\n", sectionCommand(depth), escapeLaTeX(s.Title))
	if ps := paragraphs(s.Content); len(ps) > 0 {
		for i, p := range ps {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(escapeLaTeX(p))
		}
		b.WriteString("\n")
	}
	for _, sub := range s.Subsections {
		b.WriteString("\n")
		writeSectionLaTeX(b, sub, depth+1)
	}
}

func sectionCommand(depth int) string {
	switch depth {
	case 1:
		return "section"
	case 2:
		return "subsection"
	default:
		return "subsubsection"
	}
}

func writeBibliographyLaTeX(b *strings.Builder, doc document.Document) {
	if len(doc.References) == 0 {
		return
	}
	b.WriteString("\n\\newpage\n\\begin{thebibliography}{99}\n")
	for i, ref := range doc.References {
		fmt.Fprintf(b, "\\bibitem{ref%d} %s\n", i+1, formatCitation(ref, latexStyle))
	}
	b.WriteString("\\end{thebibliography}\n")
}

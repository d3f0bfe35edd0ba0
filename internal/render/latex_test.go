package render

import (
	"strings"
	"testing"

	"github.com/mvesperini/abntdoc/internal/document"
)

func TestLaTeXDocumentStructure(t *testing.T) {
	out := LaTeX(testDocument())

	ordered := []string{
		`\documentclass[12pt,a4paper]{article}`,
		`\begin{document}`,
		`\begin{titlepage}`,
		`\section*{Resumo}`,
		`\textbf{Palavras-chave:} redes; aprendizado.`,
		`\tableofcontents`,
		`\section{Introdução}`,
		`\subsection{Contexto}`,
		`\subsection{Objetivos}`,
		`\subsubsection{Objetivos específicos}`,
		`\section{Conclusão}`,
		`\begin{thebibliography}{99}`,
		`\bibitem{ref1} A. \textbf{T}. 2024.`,
		`\end{thebibliography}`,
		`\end{document}`,
	}

	last := -1
	for _, want := range ordered {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("output missing %q", want)
		}
		if idx < last {
			t.Errorf("%q appears out of order", want)
		}
		last = idx
	}
}

func TestLaTeXHeadingDepthCap(t *testing.T) {
	doc := document.Document{
		Title:  "T",
		Author: "A",
		Sections: []Section{{
			Title: "d1", Content: "x",
			Subsections: []Section{{
				Title: "d2", Content: "x",
				Subsections: []Section{{
					Title: "d3", Content: "x",
					Subsections: []Section{{Title: "d4", Content: "x"}},
				}},
			}},
		}},
	}
	out := LaTeX(doc)

	if !strings.Contains(out, `\subsubsection{d3}`) {
		t.Error("depth-3 section should use subsubsection")
	}
	if !strings.Contains(out, `\subsubsection{d4}`) {
		t.Error("depth-4 section should stay at subsubsection")
	}
	if strings.Contains(out, `\paragraph{`) {
		t.Error("no fourth sectioning level should be emitted")
	}
}

func TestLaTeXCoverOptionalFields(t *testing.T) {
	doc := document.Document{
		Title:    "T",
		Author:   "A",
		Sections: []Section{{Title: "S", Content: "x"}},
	}
	out := LaTeX(doc)

	if strings.Contains(out, "Orientador:") {
		t.Error("advisor rendered without an advisor")
	}
	if strings.Contains(out, `\section*{Resumo}`) {
		t.Error("abstract rendered without an abstract")
	}
	if strings.Contains(out, `\begin{thebibliography}`) {
		t.Error("bibliography rendered without references")
	}
	if !strings.Contains(out, `\date{\today}`) {
		t.Error("missing date should fall back to \\today")
	}
}

func TestLaTeXEscapesCallerText(t *testing.T) {
	doc := document.Document{
		Title:    "Lucros & Perdas 100%",
		Author:   "A_B",
		Sections: []Section{{Title: "S", Content: "custo #1 de $10"}},
	}
	out := LaTeX(doc)

	if !strings.Contains(out, `Lucros \& Perdas 100\%`) {
		t.Error("title was not escaped")
	}
	if !strings.Contains(out, `A\_B`) {
		t.Error("author was not escaped")
	}
	if !strings.Contains(out, `custo \#1 de \$10`) {
		t.Error("content was not escaped")
	}
}

func TestLaTeXParagraphNormalization(t *testing.T) {
	doc := document.Document{
		Title:    "T",
		Author:   "A",
		Sections: []Section{{Title: "S", Content: "  A  \n\nB\n\n"}},
	}
	out := LaTeX(doc)

	if !strings.Contains(out, "A\n\nB\n") {
		t.Error("paragraph blocks should be trimmed and blank-line separated")
	}
}

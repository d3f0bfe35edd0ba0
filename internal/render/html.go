package render

import (
	"strings"

	"github.com/mvesperini/abntdoc/internal/document"
)

var htmlStyle = citationStyle{
	bold:   func(s string) string { return "<strong>" + s + "</strong>" },
	italic: func(s string) string { return "<em>" + s + "</em>" },
	url:    func(s string) string { return "&lt;" + escapeHTML(s) + "&gt;" },
	escape: escapeHTML,
}

// abntCSS styles the rendered document per ABNT conventions: A4 page,
// Times 12pt, 1.5 line height, justified body, 3cm/2cm margins.
const abntCSS = `        @page {
            size: A4;
            margin: 3cm 2cm 2cm 3cm;
        }

        body {
            font-family: 'Times New Roman', Times, serif;
            font-size: 12pt;
            line-height: 1.5;
            text-align: justify;
            margin: 0;
            padding: 0;
            color: black;
        }

        .cover-page {
            page-break-after: always;
            text-align: center;
            height: 100vh;
            display: flex;
            flex-direction: column;
            justify-content: space-between;
            padding: 2cm 0;
        }

        .cover-page .institution {
            font-weight: bold;
            font-size: 14pt;
            margin-bottom: 0.5cm;
        }

        .cover-page .course {
            font-weight: bold;
            font-size: 12pt;
            margin-bottom: 2cm;
        }

        .cover-page .author {
            font-weight: bold;
            font-size: 14pt;
            margin-bottom: 3cm;
        }

        .cover-page .title {
            font-weight: bold;
            font-size: 18pt;
            margin-bottom: 3cm;
            text-transform: uppercase;
        }

        .cover-page .advisor {
            text-align: right;
            font-size: 12pt;
            margin-bottom: 2cm;
        }

        .cover-page .date {
            font-weight: bold;
            font-size: 12pt;
        }

        .abstract-page {
            page-break-before: always;
            page-break-after: always;
        }

        .abstract-title {
            font-weight: bold;
            font-size: 12pt;
            text-align: center;
            margin-bottom: 1cm;
            text-transform: uppercase;
        }

        .abstract-content {
            text-indent: 0;
            margin-bottom: 1cm;
        }

        .keywords {
            font-weight: bold;
        }

        .toc {
            page-break-before: always;
            page-break-after: always;
        }

        .toc-title {
            font-weight: bold;
            font-size: 12pt;
            text-align: center;
            margin-bottom: 2cm;
            text-transform: uppercase;
        }

        .toc-item {
            margin-bottom: 0.5cm;
            display: flex;
            justify-content: space-between;
        }

        .content {
            page-break-before: always;
        }

        h1 {
            font-size: 12pt;
            font-weight: bold;
            text-transform: uppercase;
            margin: 2cm 0 1cm 0;
            text-align: left;
        }

        h2 {
            font-size: 12pt;
            font-weight: bold;
            margin: 1.5cm 0 1cm 0;
            text-align: left;
        }

        h3 {
            font-size: 12pt;
            font-weight: bold;
            margin: 1cm 0 0.5cm 0;
            text-align: left;
        }

        p {
            text-indent: 1.25cm;
            margin-bottom: 0.5cm;
            text-align: justify;
        }

        .references {
            page-break-before: always;
        }

        .references-title {
            font-weight: bold;
            font-size: 12pt;
            text-align: center;
            margin-bottom: 2cm;
            text-transform: uppercase;
        }

        .reference-item {
            margin-bottom: 1cm;
            text-indent: -0.5cm;
            margin-left: 0.5cm;
            text-align: justify;
        }

        @media print {
            .cover-page, .abstract-page, .toc, .content, .references {
                page-break-inside: avoid;
            }
        }
`

// HTML renders doc as a complete self-contained ABNT-styled page: cover,
// abstract, table of contents, body and reference list, in that order.
// The function is pure and total; malformed content degrades to empty
// blocks rather than failing.
func HTML(doc document.Document) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"pt-BR\">\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("    <title>" + escapeHTML(doc.Title) + "</title>\n")
	b.WriteString("    <style>\n" + abntCSS + "    </style>\n</head>\n<body>\n")

	writeCoverHTML(&b, doc)
	writeAbstractHTML(&b, doc)
	writeTOCHTML(&b, doc)

	b.WriteString("    <div class=\"content\">\n")
	for _, s := range doc.Sections {
		writeSectionHTML(&b, s, 1)
	}
	b.WriteString("    </div>\n")

	writeReferencesHTML(&b, doc)

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeCoverHTML(b *strings.Builder, doc document.Document) {
	b.WriteString("    <div class=\"cover-page\">\n")
	b.WriteString("        <div>\n")
	if doc.Institution != "" {
		b.WriteString("            <div class=\"institution\">" + escapeHTML(doc.Institution) + "</div>\n")
	}
	if doc.Course != "" {
		b.WriteString("            <div class=\"course\">" + escapeHTML(doc.Course) + "</div>\n")
	}
	b.WriteString("        </div>\n")
	b.WriteString("        <div class=\"author\">" + escapeHTML(doc.Author) + "</div>\n")
	b.WriteString("        <div class=\"title\">" + escapeHTML(doc.Title) + "</div>\n")
	b.WriteString("        <div>\n")
	if doc.Advisor != "" {
		b.WriteString("            <div class=\"advisor\">Orientador: " + escapeHTML(doc.Advisor) + "</div>\n")
	}
	b.WriteString("            <div class=\"date\">" + escapeHTML(yearOf(doc.Date)) + "</div>\n")
	b.WriteString("        </div>\n")
	b.WriteString("    </div>\n")
}

func writeAbstractHTML(b *strings.Builder, doc document.Document) {
	if doc.Abstract == "" {
		return
	}
	b.WriteString("    <div class=\"abstract-page\">\n")
	b.WriteString("        <div class=\"abstract-title\">Resumo</div>\n")
	b.WriteString("        <div class=\"abstract-content\">" + escapeHTML(doc.Abstract) + "</div>\n")
	if len(doc.Keywords) > 0 {
		b.WriteString("        <div class=\"keywords\">Palavras-chave: " + escapeHTML(strings.Join(doc.Keywords, "; ")) + ".</div>\n")
	}
	b.WriteString("    </div>\n")
}

func writeTOCHTML(b *strings.Builder, doc document.Document) {
	b.WriteString("    <div class=\"toc\">\n")
	b.WriteString("        <div class=\"toc-title\">Sumário</div>\n")
	doc.Walk(func(s document.Section, depth int) {
		indent := strings.Repeat("&nbsp;", (depth-1)*4)
		b.WriteString("        <div class=\"toc-item\">" + indent + escapeHTML(s.Title) + "<span>...</span></div>\n")
	})
	b.WriteString("    </div>\n")
}

// writeSectionHTML emits one section and its subtree. The heading tag is
// chosen by nesting depth, capped at h3 for depth three and deeper.
func writeSectionHTML(b *strings.Builder, s document.Section, depth int) {
	tag := headingTag(depth)
	b.WriteString("<" + tag + ">" + escapeHTML(s.Title) + "</" + tag + ">\n")
	for _, p := range paragraphs(s.Content) {
		b.WriteString("<p>" + escapeHTML(p) + "</p>\n")
	}
	for _, sub := range s.Subsections {
		writeSectionHTML(b, sub, depth+1)
	}
}

func headingTag(depth int) string {
	switch depth {
	case 1:
		return "h1"
	case 2:
		return "h2"
	default:
		return "h3"
	}
}

func writeReferencesHTML(b *strings.Builder, doc document.Document) {
	if len(doc.References) == 0 {
		return
	}
	b.WriteString("    <div class=\"references\">\n")
	b.WriteString("        <div class=\"references-title\">Referências</div>\n")
	for _, ref := range doc.References {
		b.WriteString("        <div class=\"reference-item\">" + formatCitation(ref, htmlStyle) + "</div>\n")
	}
	b.WriteString("    </div>\n")
}

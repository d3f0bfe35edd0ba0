package render

import (
	"html"
	"strings"
)

// Caller-supplied text passes through exactly one escaping stage at the
// boundary of each output format. Text with no markup-significant characters
// comes out byte-identical.

func escapeHTML(s string) string {
	return html.EscapeString(s)
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func escapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

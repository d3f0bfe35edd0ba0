package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser imports Markdown files using goldmark. Heading levels map
// directly to section nesting.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (Parsed, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Parsed{}, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	title := titleFromFilename(filename)

	type stackEntry struct {
		node  *node
		level int
	}

	// Root is level 0 — all h1+ nest under it.
	root := &node{}
	stack := []stackEntry{{node: root, level: 0}}

	titleTaken := false

	var currentText bytes.Buffer
	flushText := func() {
		t := strings.TrimSpace(currentText.String())
		if t != "" {
			stack[len(stack)-1].node.addText(t)
		}
		currentText.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch block := n.(type) {
		case *ast.Heading:
			flushText()
			level := block.Level
			heading := string(extractText(block, src))

			// A single leading h1 is the document title, not a section.
			if level == 1 && !titleTaken && root.content == "" && len(root.children) == 0 {
				title = heading
				titleTaken = true
				continue
			}

			next := &node{title: heading}
			for len(stack) > 1 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.children = append(parent.children, next)
			stack = append(stack, stackEntry{node: next, level: level})

		default:
			if t := extractText(n, src); t != "" {
				if currentText.Len() > 0 {
					currentText.WriteString("\n\n")
				}
				currentText.WriteString(t)
			}
		}
	}
	flushText()

	return Parsed{Title: title, Sections: root.sections(title)}, nil
}

// extractText gets the text content of a goldmark AST node. Blocks without
// inline children (code blocks) fall back to their raw lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.FirstChild() == nil && n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

package importer

import (
	"bufio"
	"io"
	"strings"
)

// TextParser imports plain text files as a single section whose paragraphs
// follow the blank-line convention of the document model.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (Parsed, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return Parsed{}, err
	}

	title := titleFromFilename(filename)
	root := &node{content: strings.Join(paragraphs, "\n\n")}

	return Parsed{Title: title, Sections: root.sections(title)}, nil
}

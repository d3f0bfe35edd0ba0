package document

// Document is the root of a structured academic document. It is built once,
// in full, by the caller and never mutated after it is stored.
type Document struct {
	Title       string      `json:"title"`
	Author      string      `json:"author"`
	Institution string      `json:"institution,omitempty"`
	Course      string      `json:"course,omitempty"`
	Advisor     string      `json:"advisor,omitempty"`
	Date        string      `json:"date,omitempty"`
	Abstract    string      `json:"abstract,omitempty"`
	Keywords    []string    `json:"keywords,omitempty"`
	Sections    []Section   `json:"sections"`
	References  []Reference `json:"references,omitempty"`
}

// Section is a node in a tree of arbitrary depth. Subsections are owned by
// their parent; the tree has no sharing and no back-references, so traversal
// terminates by structural induction.
type Section struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Subsections []Section `json:"subsections,omitempty"`
}

// ReferenceType is the closed set of bibliographic entry kinds.
type ReferenceType string

const (
	TypeArticle       ReferenceType = "article"
	TypeBook          ReferenceType = "book"
	TypeInProceedings ReferenceType = "inproceedings"
	TypeMisc          ReferenceType = "misc"
)

// Reference is a bibliographic entry. The type constrains no other field;
// all optional fields are legal regardless of type.
type Reference struct {
	ID        string        `json:"id"`
	Type      ReferenceType `json:"type"`
	Title     string        `json:"title"`
	Author    string        `json:"author"`
	Year      string        `json:"year"`
	Journal   string        `json:"journal,omitempty"`
	Publisher string        `json:"publisher,omitempty"`
	Pages     string        `json:"pages,omitempty"`
	URL       string        `json:"url,omitempty"`
	DOI       string        `json:"doi,omitempty"`
}

// Normalize replaces empty optional sequences with absent ones so that
// "present but empty" and "absent" cannot diverge downstream. It returns
// the receiver's value for chaining and touches nothing else.
func (d Document) Normalize() Document {
	if len(d.Keywords) == 0 {
		d.Keywords = nil
	}
	if len(d.References) == 0 {
		d.References = nil
	}
	d.Sections = normalizeSections(d.Sections)
	return d
}

func normalizeSections(sections []Section) []Section {
	if len(sections) == 0 {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Subsections = normalizeSections(s.Subsections)
		out[i] = s
	}
	return out
}

// SectionCount returns the total number of sections at all depths, in a
// depth-first, document-order traversal.
func (d Document) SectionCount() int {
	return countSections(d.Sections)
}

func countSections(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += 1 + countSections(s.Subsections)
	}
	return n
}

// Walk visits every section depth-first in document order, calling fn with
// the section and its nesting depth (top-level sections are depth 1).
func (d Document) Walk(fn func(s Section, depth int)) {
	walkSections(d.Sections, 1, fn)
}

func walkSections(sections []Section, depth int, fn func(s Section, depth int)) {
	for _, s := range sections {
		fn(s, depth)
		walkSections(s.Subsections, depth+1, fn)
	}
}

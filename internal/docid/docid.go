package docid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/mvesperini/abntdoc/internal/document"
)

// Response carries the minted identifier and the retrieval locations for a
// freshly generated document. Building one has no side effects; storing the
// document is a separate step the caller performs.
type Response struct {
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`
	HTMLURL    string `json:"htmlUrl"`
	LatexURL   string `json:"latexUrl"`
}

// NewID returns a 32-character lowercase hexadecimal identifier from 16
// cryptographically random bytes. Collisions against existing identifiers
// are not checked; at 128 bits the probability is negligible.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("docid: read random bytes: %v", err))
	}
	return hex.EncodeToString(b[:])
}

// Build mints an identifier for doc and derives its retrieval locations.
// baseURL prefixes the locations and may be empty for same-origin paths.
func Build(doc document.Document, baseURL string) Response {
	id := NewID()
	return Response{
		DocumentID: id,
		Title:      doc.Title,
		HTMLURL:    fmt.Sprintf("%s/document/%s/html", baseURL, id),
		LatexURL:   fmt.Sprintf("%s/document/%s/latex", baseURL, id),
	}
}

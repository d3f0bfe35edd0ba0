package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mvesperini/abntdoc/internal/docid"
	"github.com/mvesperini/abntdoc/internal/document"
	"github.com/mvesperini/abntdoc/internal/render"
)

const (
	formatHTML  = "html"
	formatLaTeX = "latex"
)

// handleGenerate accepts a Document payload, mints an identifier, stores
// the document and answers with the two retrieval locations. Rendering
// happens later, on retrieval; only the raw document is cached.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var doc document.Document
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		jsonError(w, "invalid document payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := validateDocument(doc); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc = doc.Normalize()

	resp := docid.Build(doc, s.cfg.BaseURL)
	s.store.Put(resp.DocumentID, doc)

	s.log.Info("document generated",
		"document_id", resp.DocumentID,
		"title", doc.Title,
		"sections", doc.SectionCount(),
		"references", len(doc.References),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// validateDocument checks the generation-surface contract. Renderers stay
// total either way; this only rejects payloads that could never produce a
// meaningful document.
func validateDocument(doc document.Document) error {
	if strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(doc.Author) == "" {
		return fmt.Errorf("author is required")
	}
	if len(doc.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	return nil
}

// handleRetrieve renders a stored document on demand in the requested
// format. An unsupported format and an unknown identifier are distinct
// outcomes: 400 and 404 respectively.
func (s *Server) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docID")
	format := chi.URLParam(r, "format")

	if format != formatHTML && format != formatLaTeX {
		jsonError(w, "unsupported format: "+format, http.StatusBadRequest)
		return
	}

	doc, ok := s.store.Get(id)
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	body, err := s.renderDocument(doc, format)
	if err != nil {
		s.log.Error("rendering failed", "document_id", id, "format", format, "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	switch format {
	case formatHTML:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", attachmentName(doc.Title)+".html"))
	case formatLaTeX:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName(doc.Title)+".tex"))
	}
	w.Write([]byte(body))
}

// renderDocument contains a rendering panic so malformed content surfaces
// as a generic internal failure instead of tearing down the request.
func (s *Server) renderDocument(doc document.Document, format string) (body string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render %s: %v", format, rec)
		}
	}()

	switch format {
	case formatHTML:
		return render.HTML(doc), nil
	case formatLaTeX:
		return render.LaTeX(doc), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// handleReferences exports a stored document's references as a BibTeX
// database. This is a separate capability from the rendered bibliography.
func (s *Server) handleReferences(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docID")

	doc, ok := s.store.Get(id)
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/x-bibtex; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="references.bib"`)
	w.Write([]byte(render.BibTeX(doc)))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// attachmentName strips characters that would break a filename header.
func attachmentName(title string) string {
	title = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', '\n', '\r':
			return '_'
		}
		return r
	}, title)
	title = strings.TrimSpace(title)
	if title == "" {
		title = "documento"
	}
	return title
}

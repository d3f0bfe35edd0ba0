package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mvesperini/abntdoc/internal/docid"
	"github.com/mvesperini/abntdoc/internal/document"
	"github.com/mvesperini/abntdoc/internal/importer"
)

// handleImport builds a Document from an uploaded file (markdown, docx,
// pdf, html or plain text) plus optional metadata form fields, then stores
// it exactly like a generated document.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !importer.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	p, err := importer.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pp, ok := p.(*importer.PDFParser); ok {
		pp.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}
	parsed, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Error("import failed", "filename", filename, "error", err)
		jsonError(w, "failed to parse file", http.StatusUnprocessableEntity)
		return
	}
	if len(parsed.Sections) == 0 {
		jsonError(w, "file contains no importable content", http.StatusBadRequest)
		return
	}

	doc := document.Document{
		Title:       parsed.Title,
		Author:      r.FormValue("author"),
		Institution: r.FormValue("institution"),
		Course:      r.FormValue("course"),
		Advisor:     r.FormValue("advisor"),
		Date:        r.FormValue("date"),
		Abstract:    r.FormValue("abstract"),
		Keywords:    splitKeywords(r.FormValue("keywords")),
		Sections:    parsed.Sections,
	}
	if t := strings.TrimSpace(r.FormValue("title")); t != "" {
		doc.Title = t
	}
	if err := validateDocument(doc); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc = doc.Normalize()

	resp := docid.Build(doc, s.cfg.BaseURL)
	s.store.Put(resp.DocumentID, doc)

	s.log.Info("document imported",
		"document_id", resp.DocumentID,
		"filename", filename,
		"title", doc.Title,
		"sections", doc.SectionCount(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// splitKeywords parses a semicolon-separated keyword list, keeping input
// order.
func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, kw := range strings.Split(raw, ";") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}

package docid

import (
	"regexp"
	"testing"

	"github.com/mvesperini/abntdoc/internal/document"
)

// The identifier shape is part of the retrieval URL contract.
var idPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestNewIDShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewID()
		if !idPattern.MatchString(id) {
			t.Fatalf("NewID() = %q, want 32 lowercase hex characters", id)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
}

func TestBuildLocations(t *testing.T) {
	doc := document.Document{Title: "Estudo X", Author: "Maria"}

	resp := Build(doc, "")

	if !idPattern.MatchString(resp.DocumentID) {
		t.Errorf("DocumentID = %q, want 32 lowercase hex characters", resp.DocumentID)
	}
	if resp.Title != "Estudo X" {
		t.Errorf("Title = %q, want %q", resp.Title, "Estudo X")
	}
	if want := "/document/" + resp.DocumentID + "/html"; resp.HTMLURL != want {
		t.Errorf("HTMLURL = %q, want %q", resp.HTMLURL, want)
	}
	if want := "/document/" + resp.DocumentID + "/latex"; resp.LatexURL != want {
		t.Errorf("LatexURL = %q, want %q", resp.LatexURL, want)
	}
}

func TestBuildWithBaseURL(t *testing.T) {
	resp := Build(document.Document{Title: "T"}, "https://docs.example.com")
	want := "https://docs.example.com/document/" + resp.DocumentID + "/latex"
	if resp.LatexURL != want {
		t.Errorf("LatexURL = %q, want %q", resp.LatexURL, want)
	}
}

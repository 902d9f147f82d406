package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWalker_Load(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"speeches/one.txt": "first speech",
		"speeches/two.txt": "second speech",
		"notes/skip.md":    "a note",
		"ignore.bin":       "binary",
	}
	for path, content := range files {
		full := filepath.Join(tmpDir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w := NewWalker([]string{"**/*.txt"}, nil)
	corpus, err := w.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(corpus.Docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(corpus.Docs))
	}
	for _, doc := range corpus.Docs {
		if doc.Vars["dir"] != "speeches" {
			t.Errorf("expected dir=speeches docvar, got %q", doc.Vars["dir"])
		}
		if doc.Text == "" {
			t.Errorf("expected non-empty text for %s", doc.ID)
		}
	}
}

func TestWalker_Excludes(t *testing.T) {
	tmpDir := t.TempDir()

	for _, path := range []string{"keep.txt", "vendor/drop.txt"} {
		full := filepath.Join(tmpDir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w := NewWalker([]string{"**/*.txt"}, []string{"vendor/**"})
	corpus, err := w.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(corpus.Docs) != 1 || corpus.Docs[0].ID != "keep.txt" {
		t.Errorf("expected only keep.txt, got %+v", corpus.Docs)
	}
}

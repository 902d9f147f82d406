package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Corpus.TextField != "text" {
		t.Errorf("expected TextField=text, got %s", cfg.Corpus.TextField)
	}
	if !cfg.Tokens.Lowercase {
		t.Error("expected Lowercase=true by default")
	}
	if cfg.Topics.K != 10 {
		t.Errorf("expected K=10, got %d", cfg.Topics.K)
	}
	if cfg.Classify.TrainRatio != 0.8 {
		t.Errorf("expected TrainRatio=0.8, got %f", cfg.Classify.TrainRatio)
	}
	if cfg.Keyness.Measure != "chi2" {
		t.Errorf("expected Measure=chi2, got %s", cfg.Keyness.Measure)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textkit.yaml")

	content := `
tokens:
  stemming: true
  min_chars: 3
topics:
  k: 4
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Tokens.Stemming {
		t.Error("expected Stemming=true")
	}
	if cfg.Tokens.MinChars != 3 {
		t.Errorf("expected MinChars=3, got %d", cfg.Tokens.MinChars)
	}
	if cfg.Topics.K != 4 {
		t.Errorf("expected K=4, got %d", cfg.Topics.K)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textkit.yaml")

	content := `
kwic:
  window: 8
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.KWIC.Window != 8 {
		t.Errorf("expected Window=8, got %d", cfg.KWIC.Window)
	}
}

func TestCorpusDBPath(t *testing.T) {
	path := CorpusDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".textkit", "corpus.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}

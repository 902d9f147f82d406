package loader

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"textkit/internal/domain"
)

// Walker loads one document per matched plain-text file under a root
// directory. The file's relative path becomes the document ID and its
// directory becomes the "dir" docvar.
type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

func (w *Walker) Load(root string) (domain.Corpus, error) {
	var corpus domain.Corpus

	root, err := filepath.Abs(root)
	if err != nil {
		return corpus, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if w.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !w.shouldInclude(relPath) || w.shouldExclude(relPath) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		corpus.Docs = append(corpus.Docs, domain.Document{
			ID:      filepath.ToSlash(relPath),
			Text:    string(data),
			Source:  path,
			ModTime: info.ModTime(),
			Vars: map[string]string{
				"dir": filepath.ToSlash(filepath.Dir(relPath)),
			},
		})

		return nil
	})

	return corpus, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

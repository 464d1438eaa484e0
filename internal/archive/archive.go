// Package archive opens dxp containers and manages their extraction scope.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DocumentName is the inner file every container must hold at its root.
const DocumentName = "AnalysisDocument.xml"

// ErrNoDocument reports a container without an analysis document.
var ErrNoDocument = errors.New("no analysis document in container")

// Container is one extracted dxp file. Close releases the extraction
// directory; callers defer it as soon as Extract returns.
type Container struct {
	Dir          string // Extraction directory
	DocumentPath string // Path of the inner analysis document
}

// Extract unpacks the container at path into a fresh temporary directory.
// Every error path removes the directory before returning.
func Extract(path string, log *zap.Logger) (*Container, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening container %s: %w", path, err)
	}
	defer r.Close()

	dir, err := os.MkdirTemp("", "dxp-*")
	if err != nil {
		return nil, fmt.Errorf("creating extraction dir: %w", err)
	}

	for _, f := range r.File {
		if err := extractFile(f, dir, log); err != nil {
			os.RemoveAll(dir)
			return nil, fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}

	docPath := filepath.Join(dir, DocumentName)
	if _, err := os.Stat(docPath); err != nil {
		os.RemoveAll(dir)
		return nil, ErrNoDocument
	}

	return &Container{Dir: dir, DocumentPath: docPath}, nil
}

// extractFile writes one entry under dir. Entries whose names would escape
// the directory are skipped.
func extractFile(f *zip.File, dir string, log *zap.Logger) error {
	name := filepath.FromSlash(f.Name)
	if !filepath.IsLocal(name) {
		log.Warn("Skipping entry with unsafe path", zap.String("entry", f.Name))
		return nil
	}

	target := filepath.Join(dir, name)
	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	w, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, rc); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Close removes the extraction directory.
func (c *Container) Close() error {
	return os.RemoveAll(c.Dir)
}

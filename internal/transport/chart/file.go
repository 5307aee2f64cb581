package chart

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/stackframe/bentographer/internal/domain/collection/field"
	"github.com/stackframe/bentographer/internal/domain/sample"
)

// FileRenderer renders to a PNG file and keeps the last image for serving.
type FileRenderer struct {
	renderer *Renderer
	path     string

	mu   sync.RWMutex
	last []byte
}

// NewFileRenderer creates a renderer that writes to path.
func NewFileRenderer(r *Renderer, path string) *FileRenderer {
	return &FileRenderer{renderer: r, path: path}
}

// Render draws the chart, writes it to the configured path and returns that path.
func (f *FileRenderer) Render(ctx context.Context, set *sample.Set, x, y field.Field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := f.renderer.Render(&buf, set, x, y); err != nil {
		return "", err
	}
	if err := writeFile(f.path, buf.Bytes()); err != nil {
		return "", err
	}

	f.mu.Lock()
	f.last = buf.Bytes()
	f.mu.Unlock()
	return f.path, nil
}

// Last returns the most recently rendered PNG.
func (f *FileRenderer) Last() ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.last, f.last != nil
}

// writeFile replaces path atomically so a served or opened chart is never partial.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".chart-*.png")
	if err != nil {
		return fmt.Errorf("create chart file in %s: %w", dir, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write chart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move chart to %s: %w", path, err)
	}
	return nil
}

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalExporter writes batches to a single file, replacing its contents.
type LocalExporter struct {
	path string
	perm os.FileMode
}

// LocalOption configures a LocalExporter.
type LocalOption func(*LocalExporter)

// WithFileMode sets the permissions of newly created files. Defaults to 0644.
func WithFileMode(perm os.FileMode) LocalOption {
	return func(e *LocalExporter) {
		e.perm = perm
	}
}

// NewLocalExporter creates an exporter writing to path.
// An empty path resolves to DefaultFileName in os.TempDir().
func NewLocalExporter(path string, opts ...LocalOption) (*LocalExporter, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultFileName)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}

	e := &LocalExporter{path: abs, perm: 0o644}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Path returns the absolute destination path.
func (e *LocalExporter) Path() string {
	return e.path
}

// Export writes lines to the destination file.
func (e *LocalExporter) Export(ctx context.Context, lines []string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	data := Render(lines)
	if err := os.WriteFile(e.path, data, e.perm); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return Result{Location: e.path, Size: int64(len(data))}, nil
}

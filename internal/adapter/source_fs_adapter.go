// Package adapter contains the infrastructure adapters the migration
// workflow drives: file storage, git worktree state, exclude rules and diffs.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/alertmigrate/internal/model"
	"github.com/viant/afs"
)

// defaultFileMode is used when the mode of the file being rewritten cannot be read.
const defaultFileMode os.FileMode = 0o644

// SourceFSAdapter abstracts the storage operations the workflow relies on
// when rewriting target files, so the workflow can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// ReadFile loads the full text of the file at path.
	ReadFile(ctx context.Context, path m.Path) (m.SourceText, error)

	// WriteFile overwrites the file at path, keeping its permissions.
	WriteFile(ctx context.Context, path m.Path, text m.SourceText) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of afs, addressing
// local files by absolute path.
type LocalSourceFSAdapter struct {
	fs afs.Service
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: afs.New()}
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	location, err := absLocation(path)
	if err != nil {
		return false, err
	}

	exists, err := a.fs.Exists(ctx, location)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}

	return exists, nil
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) (m.SourceText, error) {
	location, err := absLocation(path)
	if err != nil {
		return "", err
	}

	data, err := a.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return m.SourceText(data), nil
}

// WriteFile replaces the file contents with text.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, text m.SourceText) error {
	location, err := absLocation(path)
	if err != nil {
		return err
	}

	mode := defaultFileMode
	if object, err := a.fs.Object(ctx, location); err == nil {
		mode = object.Mode().Perm()
	}

	if err := a.fs.Upload(ctx, location, mode, bytes.NewReader([]byte(text))); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// absLocation turns path into the absolute location afs expects.
func absLocation(path m.Path) (string, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return abs, nil
}

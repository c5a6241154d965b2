package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"punchclock/internal/sheet"
)

// File keeps the sheet as a JSON document on disk.
type File struct {
	path   string
	logger *zap.Logger
}

func NewFile(path string, logger *zap.Logger) *File {
	return &File{path: path, logger: logger}
}

func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the sheet file. An empty file is an empty sheet; a
// missing one is ErrNotFound.
func (f *File) Load(ctx context.Context) (*sheet.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", f.path, ErrNotFound)
		}
		return nil, &ReadError{Path: f.path, Err: err}
	}

	s, err := Decode(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = f.path
		}
		return nil, err
	}

	f.logger.Debug("loaded sheet",
		zap.String("path", f.path),
		zap.Int("events", len(s.Events)))
	return s, nil
}

// Save replaces the sheet file, creating its directory if needed. The new
// content is written to a temporary file first and renamed into place.
func (f *File) Save(ctx context.Context, s *sheet.Sheet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(s)
	if err != nil {
		return &WriteError{Path: f.path, Err: err}
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: f.path, Err: fmt.Errorf("failed to create directory: %w", err)}
	}

	tmp, err := os.CreateTemp(dir, ".sheet-*.json")
	if err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &WriteError{Path: f.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return &WriteError{Path: f.path, Err: err}
	}

	f.logger.Debug("saved sheet",
		zap.String("path", f.path),
		zap.Int("events", len(s.Events)))
	return nil
}

func (f *File) Close() error {
	return nil
}

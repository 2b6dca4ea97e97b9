package wav

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LoadResult is delivered by LoadAsync.
type LoadResult struct {
	File *WaveFile
	Err  error
}

// Load opens and parses the wave file at path. The file is closed before
// Load returns, whatever the outcome.
func Load(path string) (*WaveFile, error) {
	if path == "" {
		return nil, ErrNullOrMissingPath
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}

		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	s, err := Parse(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &WaveFile{s: s, path: path}, nil
}

// LoadAsync runs Load in its own goroutine. The channel receives exactly one
// result and is then closed.
func LoadAsync(path string) <-chan LoadResult {
	out := make(chan LoadResult, 1)

	go func() {
		defer close(out)

		f, err := Load(path)
		out <- LoadResult{File: f, Err: err}
	}()

	return out
}

// WriteFile serializes s to path. The bytes go to a temporary sibling file
// which replaces path once synced, so a failed write never leaves a
// truncated file behind.
func WriteFile(path string, s Structure) (err error) {
	if path == "" {
		return ErrNullOrMissingPath
	}

	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = s.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	return nil
}

// WriteFileAsync runs WriteFile in its own goroutine. The channel receives
// the outcome and is then closed.
func WriteFileAsync(path string, s Structure) <-chan error {
	out := make(chan error, 1)

	go func() {
		defer close(out)

		out <- WriteFile(path, s)
	}()

	return out
}

// Package fsutil provides file system utilities for prosechunk.
// It handles context-aware reads with classified errors, newline
// normalization, and atomic writes.
package fsutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the absolute or relative path to the file.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// ReadFile reads a file and returns its content along with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	return content, info, nil
}

// NormalizeNewlines rewrites CRLF line endings to bare LF. Extraction
// operates on LF text so byte offsets, lines, and columns agree across
// platforms. The input slice is returned unchanged when no CRLF occurs.
func NormalizeNewlines(content []byte) []byte {
	if !bytes.Contains(content, []byte("\r\n")) {
		return content
	}
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
}

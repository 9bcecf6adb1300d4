// Package media is the boundary to the host file system: it classifies files,
// derives terminal previews from image bytes, and hands out display handles
// for photos held in the session.
package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// ErrNotRegular is returned by Open for directories, devices and the like.
var ErrNotRegular = errors.New("not a regular file")

// File is a handle to a file supplied by the user, either picked or dropped.
type File struct {
	Path      string
	Name      string
	Size      int64
	MediaType string // e.g. "image/png"
}

// Open stats path and sniffs its media type from the leading bytes.
func Open(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("media.Open %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("media.Open %q: %w", path, ErrNotRegular)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return File{}, fmt.Errorf("media.Open %q: detect type: %w", path, err)
	}
	return File{
		Path:      path,
		Name:      filepath.Base(path),
		Size:      info.Size(),
		MediaType: mt.String(),
	}, nil
}

// IsImage reports whether the file's media type is in the image/ family.
func (f File) IsImage() bool {
	return strings.HasPrefix(f.MediaType, "image/")
}

// SizeLabel formats the file size, see FormatSize.
func (f File) SizeLabel() string {
	return FormatSize(f.Size)
}

// FormatSize renders a byte count in binary units ("1.5 MiB").
func FormatSize(n int64) string {
	return humanize.IBytes(uint64(max(n, 0)))
}

// CleanDroppedPath normalizes a path pasted by a terminal drag-and-drop.
// Terminals quote the path ('...' or "...") or backslash-escape spaces, and
// some send a file:// URI.
func CleanDroppedPath(s string) string {
	s = strings.TrimSpace(s)
	if n := len(s); n >= 2 {
		if (s[0] == '\'' && s[n-1] == '\'') || (s[0] == '"' && s[n-1] == '"') {
			return s[1 : n-1]
		}
	}
	s = strings.TrimPrefix(s, "file://")
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

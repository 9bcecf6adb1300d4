package media

import (
	"sync"

	"github.com/google/uuid"
)

// HandlePrefix prefixes every display handle issued by a Registry.
const HandlePrefix = "blob:photoshare/"

// Registry issues display handles for committed photos and keeps the preview
// each handle points to until it is released. Rendered thumbnails are cached
// per size.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*handle
}

type handle struct {
	file    File
	preview *Preview
	renders map[[2]int]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*handle)}
}

// Allocate registers f and its preview and returns a fresh handle.
// preview may be nil; Render then draws a placeholder.
func (r *Registry) Allocate(f File, preview *Preview) string {
	url := HandlePrefix + uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[url] = &handle{file: f, preview: preview, renders: make(map[[2]int]string)}
	return url
}

// Release forgets the handle. Releasing an unknown handle is a no-op.
func (r *Registry) Release(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, url)
}

// Lookup returns the file behind a handle.
func (r *Registry) Lookup(url string) (File, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.entries[url]
	if !ok {
		return File{}, false
	}
	return h.file, true
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Render returns the thumbnail for url at cols x rows, or a placeholder if
// the handle is unknown or has no preview.
func (r *Registry) Render(url string, cols, rows int) string {
	r.mu.Lock()
	h, ok := r.entries[url]
	if !ok || h.preview == nil {
		r.mu.Unlock()
		return Placeholder(cols, rows)
	}
	key := [2]int{cols, rows}
	if s, ok := h.renders[key]; ok {
		r.mu.Unlock()
		return s
	}
	preview := h.preview
	r.mu.Unlock()

	s := preview.Render(cols, rows)

	r.mu.Lock()
	if h, ok := r.entries[url]; ok {
		h.renders[key] = s
	}
	r.mu.Unlock()
	return s
}

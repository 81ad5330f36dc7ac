// Package res resolves rendering resources, currently font files, across a
// set of search directories.
package res

import (
	"os"
	"path/filepath"
	"sync"
)

// thaiFontCandidates are the TTF file names probed, in order, when the PDF
// backend needs a font able to render Thai text.
var thaiFontCandidates = []string{
	"Sarabun-Regular.ttf",
	"THSarabunNew.ttf",
	"NotoSansThai-Regular.ttf",
	"NotoSerifThai-Regular.ttf",
	"Garuda.ttf",
}

// Loader finds resource files across registered search paths. Lookups are
// cached; the loader is safe for concurrent use.
type Loader struct {
	mu          sync.RWMutex
	searchPaths []string
	cache       map[string]string
}

// NewLoader creates a loader over the given search paths.
func NewLoader(paths ...string) *Loader {
	return &Loader{
		searchPaths: append([]string(nil), paths...),
		cache:       make(map[string]string),
	}
}

// AddSearchPath appends a directory to search for resources.
func (l *Loader) AddSearchPath(path string) {
	if path == "" {
		return
	}
	l.mu.Lock()
	l.searchPaths = append(l.searchPaths, path)
	l.mu.Unlock()
}

// Find returns the full path of the first candidate file name that exists in
// any search path, in path-then-candidate order.
func (l *Loader) Find(names ...string) (string, bool) {
	l.mu.RLock()
	paths := append([]string(nil), l.searchPaths...)
	l.mu.RUnlock()

	for _, dir := range paths {
		for _, name := range names {
			full := filepath.Join(dir, name)
			if path, ok := l.lookup(full); ok {
				if path != "" {
					return path, true
				}
				continue
			}
			info, err := os.Stat(full)
			found := err == nil && !info.IsDir()
			l.store(full, found)
			if found {
				return full, true
			}
		}
	}
	return "", false
}

// FindThaiFont locates a Thai-capable TTF among the known candidates.
func (l *Loader) FindThaiFont() (string, bool) {
	return l.Find(thaiFontCandidates...)
}

func (l *Loader) lookup(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	path, ok := l.cache[key]
	return path, ok
}

func (l *Loader) store(key string, found bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if found {
		l.cache[key] = key
	} else {
		l.cache[key] = ""
	}
}

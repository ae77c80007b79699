// Package media decides, per image reference, whether the page shows the
// image or the "failed to load" placeholder.
package media

import (
	"log"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Image is an image element as rendered.
type Image struct {
	Src    string
	Alt    string
	Failed bool
}

// Resolver checks image references against the asset directory served under
// Prefix. Each path is checked once; a failure sticks for the process
// lifetime and never affects other paths.
type Resolver struct {
	root   string
	prefix string

	mu    sync.Mutex
	cache map[string]bool
}

// NewResolver serves root under prefix (e.g. "/projects").
func NewResolver(root, prefix string) *Resolver {
	return &Resolver{
		root:   root,
		prefix: strings.TrimSuffix(prefix, "/") + "/",
		cache:  make(map[string]bool),
	}
}

// Resolve returns the render state for src.
func (r *Resolver) Resolve(src, alt string) Image {
	return Image{Src: src, Alt: alt, Failed: !r.ok(src)}
}

func (r *Resolver) ok(src string) bool {
	if src == "" {
		return false
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return true
	}

	r.mu.Lock()
	ok, seen := r.cache[src]
	r.mu.Unlock()
	if seen {
		return ok
	}

	ok = r.check(src)

	r.mu.Lock()
	r.cache[src] = ok
	r.mu.Unlock()
	return ok
}

func (r *Resolver) check(src string) bool {
	if !strings.HasPrefix(src, r.prefix) {
		log.Printf("Image outside asset prefix %s: %s", r.prefix, src)
		return false
	}
	rel, err := url.PathUnescape(strings.TrimPrefix(src, r.prefix))
	if err != nil {
		log.Printf("Bad image path %s: %v", src, err)
		return false
	}
	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		log.Printf("Image path escapes asset root: %s", src)
		return false
	}

	if _, err := imaging.Open(filepath.Join(r.root, rel)); err != nil {
		log.Printf("Image failed to load %s: %v", src, err)
		return false
	}
	return true
}

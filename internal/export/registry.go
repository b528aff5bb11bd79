package export

import (
	"image"
	"sync"
)

// Registry holds mounted render targets keyed by id. The renderer mounts the
// report raster under a target id; the exporter owns the target for the
// duration of one export and unmounts it on every exit path.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]image.Image
}

func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]image.Image)}
}

func (r *Registry) Mount(id string, img image.Image) {
	r.mu.Lock()
	r.targets[id] = img
	r.mu.Unlock()
}

func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	delete(r.targets, id)
	r.mu.Unlock()
}

// lookup reports the target only when it is present and non-empty.
func (r *Registry) lookup(id string) (image.Image, bool) {
	r.mu.RLock()
	img, ok := r.targets[id]
	r.mu.RUnlock()
	if !ok || img == nil {
		return nil, false
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, false
	}
	return img, true
}

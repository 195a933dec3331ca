package tooltip

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Well-known names the map front end asks for.
const (
	ClusterName = "hexagonTooltip"
	PathName    = "pathTooltip"
)

// ErrUnknownTooltip is returned when no renderer is bound to a name.
var ErrUnknownTooltip = errors.New("unknown tooltip")

// Renderer turns one JSON datum into markup. JSON null means the datum is
// absent and yields ok == false with no error.
type Renderer func(datum json.RawMessage) (markup string, ok bool, err error)

// Registry binds tooltip names to renderers. It is built by the host and
// handed to whatever serves the map, instead of living in package state.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry binds the cluster and path tooltips of f under their
// well-known names.
func NewRegistry(f Formatter) *Registry {
	reg := &Registry{renderers: make(map[string]Renderer)}
	reg.Register(ClusterName, ClusterRenderer(f))
	reg.Register(PathName, PathRenderer(f))
	return reg
}

// Register binds name to r, replacing any earlier binding.
func (reg *Registry) Register(name string, r Renderer) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.renderers[name] = r
}

// Lookup returns the renderer bound to name.
func (reg *Registry) Lookup(name string) (Renderer, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.renderers[name]
	return r, ok
}

// Names returns the bound names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.renderers))
	for name := range reg.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render looks up name and renders datum with it.
func (reg *Registry) Render(name string, datum json.RawMessage) (string, bool, error) {
	r, ok := reg.Lookup(name)
	if !ok {
		return "", false, fmt.Errorf("%w: %s", ErrUnknownTooltip, name)
	}
	return r(datum)
}

// ClusterRenderer decodes a ClusterView and formats it with f.
func ClusterRenderer(f Formatter) Renderer {
	return func(datum json.RawMessage) (string, bool, error) {
		if isNull(datum) {
			markup, ok := f.ClusterTooltip(nil)
			return markup, ok, nil
		}
		var view ClusterView
		if err := json.Unmarshal(datum, &view); err != nil {
			return "", false, fmt.Errorf("decode cluster: %w", err)
		}
		markup, ok := f.ClusterTooltip(&view)
		return markup, ok, nil
	}
}

// PathRenderer decodes a TripView and formats it with f.
func PathRenderer(f Formatter) Renderer {
	return func(datum json.RawMessage) (string, bool, error) {
		if isNull(datum) {
			markup, ok := f.PathTooltip(nil)
			return markup, ok, nil
		}
		var view TripView
		if err := json.Unmarshal(datum, &view); err != nil {
			return "", false, fmt.Errorf("decode trip: %w", err)
		}
		markup, ok := f.PathTooltip(&view)
		return markup, ok, nil
	}
}

package hooks

import (
	"context"
	"sync"

	"github.com/osse101/SaleBadge_Go/internal/domain"
)

// Point names an extension point that filters can be attached to.
type Point string

// Filter transforms the HTML produced for an extension point. It receives
// the output of the previous filter, or the caller's default for the first.
type Filter func(ctx context.Context, html string, product domain.Product) string

// Registry holds the filters attached to each extension point
type Registry interface {
	Register(point Point, name string, filter Filter)
	ClearThenRegister(point Point, name string, filter Filter)
	Apply(ctx context.Context, point Point, html string, product domain.Product) string
	Producers(point Point) []string
	Has(point Point) bool
}

type entry struct {
	name   string
	filter Filter
}

// MemoryRegistry is an in-memory Registry safe for concurrent use.
type MemoryRegistry struct {
	filters map[Point][]entry
	mu      sync.RWMutex
}

// NewMemoryRegistry creates an empty registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		filters: make(map[Point][]entry),
	}
}

// Register appends a filter to the point. Filters run in registration order.
func (r *MemoryRegistry) Register(point Point, name string, filter Filter) {
	if filter == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[point] = append(r.filters[point], entry{name: name, filter: filter})
}

// ClearThenRegister removes every filter attached to the point, including
// ones added by other components, and leaves filter as the only producer.
func (r *MemoryRegistry) ClearThenRegister(point Point, name string, filter Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if filter == nil {
		delete(r.filters, point)
		return
	}
	r.filters[point] = []entry{{name: name, filter: filter}}
}

// Apply runs the point's filters over html. With no filters the input is
// returned unchanged.
func (r *MemoryRegistry) Apply(ctx context.Context, point Point, html string, product domain.Product) string {
	r.mu.RLock()
	entries := make([]entry, len(r.filters[point]))
	copy(entries, r.filters[point])
	r.mu.RUnlock()

	for _, e := range entries {
		html = e.filter(ctx, html, product)
	}
	return html
}

// Producers lists the names of the filters attached to the point
func (r *MemoryRegistry) Producers(point Point) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters[point]))
	for _, e := range r.filters[point] {
		names = append(names, e.name)
	}
	return names
}

// Has reports whether any filter is attached to the point
func (r *MemoryRegistry) Has(point Point) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filters[point]) > 0
}

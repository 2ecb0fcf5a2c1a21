package preview

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

// Registry routes documents to renderers by category.
//
// Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[models.Category]Renderer
}

// NewRegistry returns a registry with every built-in renderer registered.
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[models.Category]Renderer)}

	r.Register(NewTextRenderer())
	r.Register(NewWordRenderer())
	r.Register(NewPDFRenderer())
	r.Register(NewLegacyWordRenderer())

	return r
}

// Register adds renderer, replacing any previous one for the same category.
func (r *Registry) Register(renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[renderer.Category()] = renderer
}

// For returns the renderer for category, or nil.
func (r *Registry) For(category models.Category) Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.renderers[category]
}

// Render picks a renderer from the declared media type and renders data.
func (r *Registry) Render(ctx context.Context, mimeType string, data []byte) (*Document, error) {
	category := models.CategoryOf(mimeType)
	renderer := r.For(category)
	if renderer == nil {
		return nil, fmt.Errorf("%w: no renderer for %q", common.ErrPreviewUnavailable, mimeType)
	}

	doc, err := renderer.Render(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s renderer: %w", renderer.Name(), err)
	}
	return doc, nil
}

// Categories lists the registered categories in sorted order.
func (r *Registry) Categories() []models.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, 0, len(r.renderers))
	for c := range r.renderers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

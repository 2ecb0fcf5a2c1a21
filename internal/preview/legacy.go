package preview

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

type legacyWordRenderer struct{}

// NewLegacyWordRenderer handles binary .doc files, which cannot be rendered.
// It always reports common.ErrPreviewUnavailable.
func NewLegacyWordRenderer() Renderer {
	return &legacyWordRenderer{}
}

func (r *legacyWordRenderer) Render(context.Context, []byte) (*Document, error) {
	return nil, fmt.Errorf("%w: Error loading document content", common.ErrPreviewUnavailable)
}

func (r *legacyWordRenderer) Category() models.Category { return models.CategoryLegacyWord }

func (r *legacyWordRenderer) Name() string { return "legacy-word" }

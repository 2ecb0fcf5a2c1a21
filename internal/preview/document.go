// Package preview renders decoded documents for display in the terminal and
// lets the user edit the ones whose content can be round-tripped as text.
//
// Renderers are keyed by models.Category and looked up through a Registry:
//
//	reg := preview.NewRegistry()
//	doc, err := reg.Render(ctx, models.MimeWord, data)
//	if errors.Is(err, common.ErrPreviewUnavailable) {
//		// show a placeholder
//	}
package preview

import (
	"context"

	"github.com/dmitrijs2005/docconvert/internal/models"
)

// Document is the rendered form of a decoded file.
type Document struct {
	Category models.Category
	Title    string

	// Text is what gets printed: plain text, or markdown for word documents.
	Text string

	// Source is the editable representation. Saving an edit re-encodes it as
	// the new payload. Empty when Editable is false.
	Source   string
	Editable bool

	Properties map[string]string
}

// Renderer turns raw document bytes of one category into a Document.
type Renderer interface {
	Render(ctx context.Context, data []byte) (*Document, error)
	Category() models.Category
	Name() string
}

// Editor lets the user change an editable document's source.
type Editor interface {
	Edit(ctx context.Context, initial string) (string, error)
}

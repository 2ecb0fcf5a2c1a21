package preview

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/models"
)

const utf8BOM = "\ufeff"

type textRenderer struct{}

// NewTextRenderer renders plain text as UTF-8. Invalid sequences are replaced
// with U+FFFD.
func NewTextRenderer() Renderer {
	return &textRenderer{}
}

func (r *textRenderer) Render(ctx context.Context, data []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := strings.ToValidUTF8(string(data), "\uFFFD")
	text = strings.TrimPrefix(text, utf8BOM)

	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n") + 1
		if strings.HasSuffix(text, "\n") {
			lines--
		}
	}

	return &Document{
		Category: models.CategoryText,
		Text:     text,
		Source:   text,
		Editable: true,
		Properties: map[string]string{
			"characters": strconv.Itoa(len([]rune(text))),
			"lines":      strconv.Itoa(lines),
		},
	}, nil
}

func (r *textRenderer) Category() models.Category { return models.CategoryText }

func (r *textRenderer) Name() string { return "text" }

package preview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

type stubRenderer struct {
	doc *Document
}

func (s *stubRenderer) Render(context.Context, []byte) (*Document, error) { return s.doc, nil }
func (s *stubRenderer) Category() models.Category                       { return models.CategoryText }
func (s *stubRenderer) Name() string                                    { return "stub" }

func TestNewRegistry_RegistersBuiltins(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []models.Category{
		models.CategoryLegacyWord,
		models.CategoryPDF,
		models.CategoryText,
		models.CategoryWord,
	}, r.Categories())

	for _, mt := range models.SupportedMimeTypes() {
		assert.NotNil(t, r.For(models.CategoryOf(mt)), mt)
	}
	assert.Nil(t, r.For(models.CategoryUnknown))
}

func TestRegistry_RenderUnknownType(t *testing.T) {
	_, err := NewRegistry().Render(context.Background(), "image/png", []byte{0x89})
	require.ErrorIs(t, err, common.ErrPreviewUnavailable)

	_, err = NewRegistry().Render(context.Background(), "", []byte("x"))
	require.ErrorIs(t, err, common.ErrPreviewUnavailable)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	want := &Document{Text: "stubbed"}
	r.Register(&stubRenderer{doc: want})

	got, err := r.Render(context.Background(), models.MimeText, []byte("ignored"))
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestRegistry_RenderText(t *testing.T) {
	doc, err := NewRegistry().Render(context.Background(), models.MimeText, []byte("Hello"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", doc.Text)
	assert.True(t, doc.Editable)
}

func TestRegistry_LegacyWordUnavailable(t *testing.T) {
	_, err := NewRegistry().Render(context.Background(), models.MimeLegacyWord, []byte{0xD0, 0xCF, 0x11, 0xE0})
	require.ErrorIs(t, err, common.ErrPreviewUnavailable)
	assert.Contains(t, err.Error(), "Error loading document content")
}

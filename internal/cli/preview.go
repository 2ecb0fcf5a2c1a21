package cli

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/pipeline"
	"github.com/dmitrijs2005/docconvert/internal/preview"
)

// Preview renders the live payload as a document. In decode mode, where no
// descriptor exists, the document type comes from the optional name argument.
func (a *App) Preview(ctx context.Context, args []string) error {
	doc, err := a.renderCurrent(ctx, joinArgs(args))
	if err != nil {
		return err
	}

	if doc.Title != "" {
		a.println("# " + doc.Title)
	}
	a.println(doc.Text)

	keys := make([]string, 0, len(doc.Properties))
	for k := range doc.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.println("  " + k + ": " + doc.Properties[k])
	}
	return nil
}

// renderCurrent decodes the live payload and renders it, reporting failures
// to the user.
func (a *App) renderCurrent(ctx context.Context, nameHint string) (*preview.Document, error) {
	st := a.session.Snapshot()
	if st.Payload.IsEmpty() && st.Descriptor == nil {
		a.println(msgNothingLoaded)
		return nil, common.ErrNoPayload
	}

	mimeType := models.MimeTypeForName(nameHint)
	if mimeType == "" && st.Descriptor != nil {
		mimeType = st.Descriptor.MimeType
	}
	if mimeType == "" {
		a.failure(msgNeedsFileType)
		a.println("Known document types: " + joinCategories(a.previews.Categories()))
		return nil, common.ErrPreviewUnavailable
	}

	data, err := pipeline.Decode(st.Payload)
	if err != nil {
		a.logger.Error(ctx, "decode failed", "error", err)
		a.failure(msgPreviewFailed)
		return nil, err
	}

	doc, err := a.previews.Render(ctx, mimeType, data)
	if err != nil {
		a.logger.Warn(ctx, "preview failed", "type", mimeType, "error", err)
		a.failure(msgPreviewFailed)
		return nil, err
	}
	return doc, nil
}

// Edit opens the document source in the editor and, when it changed, replaces
// the live payload with the re-encoded source. The descriptor is kept.
func (a *App) Edit(ctx context.Context, args []string) error {
	ticket := a.session.Begin()

	doc, err := a.renderCurrent(ctx, joinArgs(args))
	if err != nil {
		return err
	}
	if !doc.Editable {
		a.failure(msgNotEditable)
		return common.ErrNotEditable
	}

	edited, err := a.editor.Edit(ctx, doc.Source)
	if err != nil {
		a.logger.Error(ctx, "editor failed", "error", err)
		a.failure(err.Error())
		return err
	}
	if !a.session.Current(ticket) {
		a.logger.Warn(ctx, "discarding edit made before a mode switch", "op", ticket.ID)
		return common.ErrStaleResult
	}
	if edited == doc.Source {
		a.println(msgNoChanges)
		return nil
	}

	payload := pipeline.EncodeBytes([]byte(edited))
	if err := a.session.ReplacePayload(ctx, payload); err != nil {
		if errors.Is(err, common.ErrNoPayload) {
			a.println(msgNothingLoaded)
		}
		return err
	}

	a.success(msgDocumentSaved)
	return nil
}

func joinCategories(cs []models.Category) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

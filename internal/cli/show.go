package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/transfer"
)

// Show prints the payload preview for the current mode.
func (a *App) Show(ctx context.Context) error {
	st := a.session.Snapshot()
	if st.Payload.IsEmpty() {
		a.println(msgNothingLoaded)
		return common.ErrNoPayload
	}

	label := labelEncoded
	if st.Mode == models.ModeDecode {
		label = labelDecoded
	}
	a.printPayload(label, st.Payload)
	return nil
}

// Info prints the details of the encoded file.
func (a *App) Info(ctx context.Context) error {
	st := a.session.Snapshot()
	if st.Descriptor == nil {
		a.println(msgNothingLoaded)
		return common.ErrNoPayload
	}
	a.printDescriptor(*st.Descriptor)
	return nil
}

// Write stores the complete payload text at path.
func (a *App) Write(ctx context.Context, args []string) error {
	path := joinArgs(args)
	if path == "" {
		a.println("Usage: write <path>")
		return common.ErrInvalidTarget
	}

	st := a.session.Snapshot()
	if st.Payload.IsEmpty() {
		a.println(msgNothingLoaded)
		return common.ErrNoPayload
	}

	dir, name := splitTarget(path)
	b := transfer.New(dir, a.logger, transfer.WithOverwrite(true))
	art, err := b.Materialize(ctx, []byte(st.Payload), name, models.MimeText)
	if err != nil {
		a.logger.Error(ctx, "payload export failed", "path", path, "error", err)
		a.failure(msgExportFailed)
		return err
	}

	a.println("Wrote", st.Payload.Len(), "characters to", art.Path)
	return nil
}

func (a *App) printDescriptor(d models.FileDescriptor) {
	a.println(d.Name)
	a.println(fmt.Sprintf("  %-10s%s", "Type:", d.DisplayType()))
	a.println(fmt.Sprintf("  %-10s%s", "Size:", models.FormatFileSize(d.SizeBytes)))
	a.println(fmt.Sprintf("  %-10s%s", "Modified:", d.LastModified().Local().Format(time.DateTime)))
}

func (a *App) printPayload(label string, p models.Base64Payload) {
	a.println("--- " + label + " ---")
	a.println(FormatPayloadPreview(p, a.config.PreviewLimit))
}

// FormatPayloadPreview returns at most limit characters of p, followed by
// "..." when truncated, and a character count footer.
func FormatPayloadPreview(p models.Base64Payload, limit int) string {
	s := p.String()
	if limit <= 0 || len(s) <= limit {
		return fmt.Sprintf("%s\n%d characters", s, len(s))
	}
	return fmt.Sprintf("%s...\nPreview showing %d of %d characters", s[:limit], limit, len(s))
}

package cli

import (
	"context"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/pipeline"
)

// Save decodes the live payload and materializes it under name in the output
// directory.
func (a *App) Save(ctx context.Context, args []string) error {
	if !a.requireMode("save", models.ModeDecode) {
		return common.ErrWrongMode
	}

	name := joinArgs(args)
	st := a.session.Snapshot()
	if name == "" && a.interactive && !st.Payload.IsEmpty() {
		text, err := GetSimpleText(a.reader, "File name:", a.out)
		if err != nil {
			return err
		}
		name = text
	}
	if st.Payload.IsEmpty() || name == "" {
		a.failure(msgSaveNeedsInput)
		return common.ErrNoPayload
	}

	data, err := pipeline.Decode(st.Payload)
	if err != nil {
		a.logger.Error(ctx, "decode failed", "error", err)
		a.failure(msgDownloadFailed)
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	art, err := a.boundary.Materialize(opCtx, data, name, "")
	if err != nil {
		a.logger.Error(ctx, "save failed", "name", name, "error", err)
		a.failure(msgDownloadFailed)
		return err
	}

	a.println("Saved", art.Path, "("+models.FormatFileSize(art.Size)+", detected "+art.DetectedType+")")
	return nil
}

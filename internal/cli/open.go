package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/filex"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/pipeline"
)

// Open encodes the file at the given path and makes the result the live
// payload. The type gate runs on the declared type before any byte is read.
func (a *App) Open(ctx context.Context, args []string) error {
	if !a.requireMode("open", models.ModeEncode) {
		return common.ErrWrongMode
	}

	path := joinArgs(args)
	if path == "" {
		a.println("Usage: open <path>")
		return common.ErrInvalidTarget
	}

	ticket := a.session.Begin()

	f, info, err := filex.OpenSource(path, a.config.MaxFileSize)
	if err != nil {
		a.logger.Warn(ctx, "open failed", "path", path, "error", err)
		if errors.Is(err, common.ErrFileTooLarge) {
			a.failure(msgFileTooLarge)
		} else {
			a.failure(msgConvertFailed)
		}
		return err
	}
	defer f.Close()

	desc := pipeline.Describe(filepath.Base(path), info)
	if err := pipeline.AcceptFile(desc); err != nil {
		a.logger.Info(ctx, "file rejected", "name", desc.Name, "type", desc.MimeType)
		a.failure(msgUnsupportedType)
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	payload, err := pipeline.Await(opCtx, pipeline.Go(opCtx, func(ctx context.Context) (models.Base64Payload, error) {
		return pipeline.Encode(ctx, f)
	}))
	if err != nil {
		a.logger.Error(ctx, "encode failed", "name", desc.Name, "error", err)
		a.failure(msgConvertFailed)
		return err
	}

	if err := a.session.CommitEncoded(ctx, ticket, payload, desc); err != nil {
		if errors.Is(err, common.ErrStaleResult) {
			a.logger.Debug(ctx, "encode result discarded", "name", desc.Name, "error", err)
			return err
		}
		a.logger.Error(ctx, "encode result refused", "name", desc.Name, "error", err)
		a.failure(msgConvertFailed)
		return err
	}

	a.logger.Info(ctx, "file encoded", "name", desc.Name, "size", desc.SizeBytes, "chars", payload.Len())
	a.success(msgFileConverted)
	a.printDescriptor(desc)
	a.printPayload(labelEncoded, payload)
	return nil
}

package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/pipeline"
)

// Paste reads a base64 string and, if it validates, makes it the live
// payload. Line breaks between pasted lines are dropped; a data URI prefix is
// accepted.
func (a *App) Paste(ctx context.Context) error {
	if !a.requireMode("paste", models.ModeDecode) {
		return common.ErrWrongMode
	}

	ticket := a.session.Begin()

	text, err := GetMultiline(a.reader, "Paste base64 string", "", a.out)
	if err != nil {
		a.logger.Warn(ctx, "paste failed", "error", err)
		a.failure(msgEmptyBase64)
		return err
	}

	if strings.TrimSpace(text) == "" {
		a.failure(msgEmptyBase64)
		return common.ErrInvalidBase64
	}

	payload := models.Base64Payload(pipeline.StripDataURI(text))
	if err := a.session.CommitDecoded(ctx, ticket, payload); err != nil {
		if errors.Is(err, common.ErrStaleResult) {
			a.logger.Debug(ctx, "decode result discarded", "error", err)
			return err
		}
		a.logger.Info(ctx, "base64 rejected", "chars", payload.Len(), "reason", err.Error())
		a.failure(msgInvalidBase64)
		return err
	}

	a.logger.Info(ctx, "base64 accepted", "chars", payload.Len())
	a.success(msgBase64Decoded)
	a.printPayload(labelDecoded, payload)
	return nil
}

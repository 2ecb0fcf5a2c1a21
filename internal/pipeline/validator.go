package pipeline

import (
	"encoding/base64"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

const (
	reasonUnsupportedType = "unsupported file type"
	reasonInvalidBase64   = "invalid base64 string"
)

var allowedTypes = func() []any {
	types := models.SupportedMimeTypes()
	out := make([]any, len(types))
	for i, t := range types {
		out[i] = t
	}
	return out
}()

// AcceptFile admits a candidate file only if its declared media type is one
// of the supported document types. The bytes are never inspected.
func AcceptFile(d models.FileDescriptor) error {
	err := validation.Validate(d.MimeType,
		validation.Required,
		validation.In(allowedTypes...),
	)
	if err != nil {
		return reject(common.ErrUnsupportedType, reasonUnsupportedType)
	}
	return nil
}

// AcceptBase64 admits text that is non-blank and survives a decode/encode
// round trip unchanged. Surrounding whitespace, line breaks, missing padding
// and non-zero padding bits all fail the round trip.
func AcceptBase64(text string) error {
	if strings.TrimSpace(text) == "" {
		return reject(common.ErrInvalidBase64, reasonInvalidBase64)
	}

	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return reject(common.ErrInvalidBase64, reasonInvalidBase64)
	}
	if base64.StdEncoding.EncodeToString(raw) != text {
		return reject(common.ErrInvalidBase64, reasonInvalidBase64)
	}
	return nil
}

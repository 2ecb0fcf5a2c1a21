package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/filex"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/pipeline"
	"github.com/dmitrijs2005/docconvert/internal/preview"
	"github.com/dmitrijs2005/docconvert/internal/transfer"
)

// EncodeFile runs the encode direction once: type gate, read, encode.
func EncodeFile(ctx context.Context, path string, maxSize int64) (models.Base64Payload, models.FileDescriptor, error) {
	f, info, err := filex.OpenSource(path, maxSize)
	if err != nil {
		return "", models.FileDescriptor{}, err
	}
	defer f.Close()

	desc := pipeline.Describe(filepath.Base(path), info)
	if err := pipeline.AcceptFile(desc); err != nil {
		return "", desc, err
	}

	payload, err := pipeline.Await(ctx, pipeline.Go(ctx, func(ctx context.Context) (models.Base64Payload, error) {
		return pipeline.Encode(ctx, f)
	}))
	if err != nil {
		return "", desc, err
	}
	return payload, desc, nil
}

// ReadPayload reads base64 text from r. A single trailing line terminator,
// as left by most tools, is dropped, and a data URI prefix is removed.
// Everything else is kept for the validator to judge. Blank input fails with
// common.ErrNoPayload.
func ReadPayload(r io.Reader) (models.Base64Payload, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrRead, err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	s = strings.TrimSuffix(s, "\r")
	if strings.TrimSpace(s) == "" {
		return "", common.ErrNoPayload
	}
	return models.Base64Payload(pipeline.StripDataURI(s)), nil
}

// DecodeToFile runs the decode direction once: validate, decode, materialize.
func DecodeToFile(ctx context.Context, b *transfer.Boundary, p models.Base64Payload, name, mimeType string) (*transfer.Artifact, error) {
	if err := pipeline.AcceptBase64(string(p)); err != nil {
		return nil, err
	}
	data, err := pipeline.Decode(p)
	if err != nil {
		return nil, err
	}
	return b.Materialize(ctx, data, name, mimeType)
}

// Inspection is the result of Inspect.
type Inspection struct {
	Descriptor models.FileDescriptor
	Accepted   error // nil when the type gate accepts the file
	Document   *preview.Document
	PreviewErr error
}

// Inspect describes a file, applies the type gate and renders a preview.
// Only failures to read the file are returned as errors.
func Inspect(ctx context.Context, reg *preview.Registry, path string, maxSize int64) (*Inspection, error) {
	f, info, err := filex.OpenSource(path, maxSize)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrRead, err)
	}

	res := &Inspection{Descriptor: pipeline.Describe(filepath.Base(path), info)}
	res.Accepted = pipeline.AcceptFile(res.Descriptor)
	res.Document, res.PreviewErr = reg.Render(ctx, res.Descriptor.MimeType, data)
	return res, nil
}

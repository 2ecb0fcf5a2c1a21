package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

// Encode reads r to the end and returns its standard base64 encoding.
// A read failure or cancellation yields an error wrapping common.ErrRead and
// no payload; a partial read is never returned.
func Encode(ctx context.Context, r io.Reader) (models.Base64Payload, error) {
	var sb strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &sb)

	if _, err := io.Copy(enc, &ctxReader{ctx: ctx, r: r}); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrRead, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrRead, err)
	}

	return models.Base64Payload(sb.String()), nil
}

// EncodeBytes is the in-memory form of Encode and cannot fail.
func EncodeBytes(b []byte) models.Base64Payload {
	return models.Base64Payload(base64.StdEncoding.EncodeToString(b))
}

// StripDataURI removes a "data:<type>;base64," prefix if s carries one.
// Any other text is returned unchanged.
func StripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	i := strings.IndexByte(s, ',')
	if i < 0 || !strings.HasSuffix(s[:i], ";base64") {
		return s
	}
	return s[i+1:]
}

// Describe extracts the descriptor for a source file from its metadata.
// It never reads the file contents.
func Describe(name string, info fs.FileInfo) models.FileDescriptor {
	return models.NewFileDescriptor(name, info.Size(), info.ModTime())
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

package transfer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/logging"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

const tempPrefix = ".docconvert-"

// ErrTargetExists is returned when the target file is already present and
// overwriting is disabled.
var ErrTargetExists = errors.New("target file already exists")

// Artifact describes a materialized file.
type Artifact struct {
	Path         string
	Name         string
	Size         int64
	ContentType  string // declared type, application/octet-stream when none was given
	DetectedType string // sniffed from the first 512 bytes
	SHA256       string
}

// Boundary materializes decoded documents in a single output directory.
type Boundary struct {
	dir    string
	opts   Options
	logger logging.Logger
}

// New returns a Boundary writing into dir. A nil logger discards records.
func New(dir string, logger logging.Logger, opts ...OptionFunc) *Boundary {
	o := defaultOpts
	for _, fn := range opts {
		fn(&o)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Boundary{dir: dir, opts: o, logger: logger}
}

// Dir returns the output directory.
func (b *Boundary) Dir() string {
	return b.dir
}

// Materialize writes data to fileName inside the output directory.
//
// Returns an error wrapping common.ErrInvalidTarget when fileName is blank,
// contains a path separator, is "." or "..", or when data is nil. Nothing is written
// in that case.
func (b *Boundary) Materialize(ctx context.Context, data []byte, fileName, mimeType string) (*Artifact, error) {
	if err := ValidateName(fileName); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: no data", common.ErrInvalidTarget)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(b.dir, b.opts.DirMode); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	target := filepath.Join(b.dir, fileName)
	if !b.opts.Overwrite {
		if _, err := os.Lstat(target); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrTargetExists, target)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking target: %w", err)
		}
	}

	tmpPath := filepath.Join(b.dir, tempPrefix+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, b.opts.FileMode)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			b.logger.Warn(ctx, "temp file not removed", "path", tmpPath, "error", rmErr)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return nil, fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return nil, fmt.Errorf("committing %s: %w", fileName, err)
	}

	sum := sha256.Sum256(data)
	contentType := mimeType
	if contentType == "" {
		contentType = models.MimeOctetStream
	}

	art := &Artifact{
		Path:         target,
		Name:         fileName,
		Size:         int64(len(data)),
		ContentType:  contentType,
		DetectedType: http.DetectContentType(data),
		SHA256:       hex.EncodeToString(sum[:]),
	}

	b.logger.Info(ctx, "artifact materialized", "path", art.Path, "size", art.Size, "content_type", art.ContentType)
	return art, nil
}

// ValidateName checks that name is usable as a single file name inside the
// output directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty file name", common.ErrInvalidTarget)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: file name must not contain a path separator", common.ErrInvalidTarget)
	case name == "." || name == "..":
		return fmt.Errorf("%w: file name must not be %q", common.ErrInvalidTarget, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: file name must not contain NUL", common.ErrInvalidTarget)
	}
	return nil
}

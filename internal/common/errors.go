// Package common defines the sentinel errors shared by the conversion
// pipeline, the transfer boundary and the interactive client. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Validator rejections.
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidBase64   = errors.New("invalid base64 string")

	// Transcoding failures.
	ErrRead   = errors.New("read error")
	ErrDecode = errors.New("decode error")

	// Transfer boundary.
	ErrInvalidTarget = errors.New("invalid target")

	// Session-level errors.
	ErrStaleResult = errors.New("stale result")
	ErrNoPayload   = errors.New("no payload")
	ErrWrongMode   = errors.New("command not available in current mode")

	// Source limits enforced by the file adapter.
	ErrFileTooLarge = errors.New("file too large")

	// Preview / edit capability.
	ErrPreviewUnavailable = errors.New("preview unavailable")
	ErrNotEditable        = errors.New("document is not editable")
)

package cli

import (
	"errors"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/transfer"
)

// User-facing notification texts.
const (
	msgFileConverted   = "File successfully converted to base64!"
	msgBase64Decoded   = "Base64 successfully decoded!"
	msgDocumentSaved   = "Document saved successfully!"
	msgUnsupportedType = "Unsupported file type. Please upload a .doc, .docx, .pdf, or .txt file."
	msgInvalidBase64   = "Invalid base64 string. Please check your input"
	msgEmptyBase64     = "Please enter a base64 string to decode"
	msgConvertFailed   = "Failed to convert file. Please try again."
	msgSaveNeedsInput  = "Please enter a base64 string and filename"
	msgDownloadFailed  = "Failed to download file"
	msgFileTooLarge    = "File is too large."
	msgPreviewFailed   = "Error loading document content. Please try again."
	msgNotEditable     = "This document cannot be edited."
	msgNothingLoaded   = "Nothing to show yet."
	msgNeedsFileType   = "Cannot tell the document type. Pass a file name, e.g. preview report.docx"
	msgNoChanges       = "No changes."
	msgExportFailed    = "Failed to write payload."
)

const (
	labelEncoded = "Base64 Output"
	labelDecoded = "Decoded Base64 Input"
)

// Notification maps a pipeline error to the message shown to the user.
func Notification(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrUnsupportedType):
		return msgUnsupportedType
	case errors.Is(err, common.ErrInvalidBase64):
		return msgInvalidBase64
	case errors.Is(err, common.ErrNoPayload):
		return msgEmptyBase64
	case errors.Is(err, common.ErrFileTooLarge):
		return msgFileTooLarge
	case errors.Is(err, common.ErrRead):
		return msgConvertFailed
	case errors.Is(err, common.ErrDecode),
		errors.Is(err, common.ErrInvalidTarget),
		errors.Is(err, transfer.ErrTargetExists):
		return msgDownloadFailed
	case errors.Is(err, common.ErrPreviewUnavailable):
		return msgPreviewFailed
	case errors.Is(err, common.ErrNotEditable):
		return msgNotEditable
	default:
		return err.Error()
	}
}

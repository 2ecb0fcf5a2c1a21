package models

import (
	"mime"
	"path/filepath"
	"strings"
)

// Declared media types accepted by the converter.
const (
	MimeLegacyWord = "application/msword"
	MimeWord       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePDF        = "application/pdf"
	MimeText       = "text/plain"

	// MimeOctetStream is the download type used when none is given.
	MimeOctetStream = "application/octet-stream"
)

// Category groups supported media types by how they are rendered.
type Category string

const (
	CategoryUnknown    Category = ""
	CategoryLegacyWord Category = "legacy-word"
	CategoryWord       Category = "word"
	CategoryPDF        Category = "pdf"
	CategoryText       Category = "text"
)

// SupportedMimeTypes returns the allow-list in a stable order.
func SupportedMimeTypes() []string {
	return []string{MimeLegacyWord, MimeWord, MimePDF, MimeText}
}

// CategoryOf maps an allow-listed media type to its category.
// Anything else yields CategoryUnknown.
func CategoryOf(mimeType string) Category {
	switch mimeType {
	case MimeLegacyWord:
		return CategoryLegacyWord
	case MimeWord:
		return CategoryWord
	case MimePDF:
		return CategoryPDF
	case MimeText:
		return CategoryText
	default:
		return CategoryUnknown
	}
}

var extensionTypes = map[string]string{
	".doc":  MimeLegacyWord,
	".docx": MimeWord,
	".pdf":  MimePDF,
	".txt":  MimeText,
}

// MimeTypeForName derives the declared media type from a file name's
// extension. Unknown extensions yield "".
//
// Parameters such as "; charset=utf-8" from the system table are dropped.
func MimeTypeForName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if t, ok := extensionTypes[ext]; ok {
		return t
	}

	t := mime.TypeByExtension(ext)
	if t == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return mediaType
}

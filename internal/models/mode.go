package models

import (
	"fmt"
	"strings"
)

// ConversionMode selects which direction of the pipeline is active.
type ConversionMode string

const (
	ModeEncode ConversionMode = "encode"
	ModeDecode ConversionMode = "decode"
)

// ParseMode converts user input into a ConversionMode. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (ConversionMode, error) {
	switch ConversionMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeEncode:
		return ModeEncode, nil
	case ModeDecode:
		return ModeDecode, nil
	default:
		return "", fmt.Errorf("unknown mode %q: want %q or %q", s, ModeEncode, ModeDecode)
	}
}

// Title is the heading shown for the mode.
func (m ConversionMode) Title() string {
	if m == ModeDecode {
		return "Decode Base64 to Document"
	}
	return "Convert Document to Base64"
}

// Hint tells the user what input the mode expects.
func (m ConversionMode) Hint() string {
	if m == ModeDecode {
		return "Paste a base64 encoded string to decode it back to a document."
	}
	return "Upload a document to convert it to a base64 encoded string."
}

package pipeline

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

var strictStd = base64.StdEncoding.Strict()

// Decode recovers the bytes carried by p. Only canonical standard base64 is
// accepted: padding is required, trailing bits must be zero and line breaks
// are refused. Failures wrap common.ErrDecode.
//
// An empty payload decodes to an empty, non-nil slice.
func Decode(p models.Base64Payload) ([]byte, error) {
	s := string(p)
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line breaks are not allowed", common.ErrDecode)
	}

	b, err := strictStd.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrDecode, err)
	}
	return b, nil
}

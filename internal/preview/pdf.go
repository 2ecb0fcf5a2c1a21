package preview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

// headerWindow is how far into the file the %PDF- marker may appear.
const headerWindow = 1024

var (
	pdfHeader = regexp.MustCompile(`%PDF-(\d\.\d)`)
	pdfPage   = regexp.MustCompile(`/Type\s*/Page\b`)
	pdfTitle  = regexp.MustCompile(`/Title\s*\(((?:\\.|[^\\)])*)\)`)
)

// pdfRenderer summarizes a PDF without rendering its pages.
type pdfRenderer struct{}

// NewPDFRenderer returns the PDF renderer. PDF documents are view-only.
func NewPDFRenderer() Renderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) Render(ctx context.Context, data []byte) (*Document, error) {
	head := data
	if len(head) > headerWindow {
		head = head[:headerWindow]
	}
	m := pdfHeader.FindSubmatch(head)
	if m == nil {
		return nil, fmt.Errorf("%w: missing %%PDF header", common.ErrPreviewUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	version := string(m[1])
	pages := len(pdfPage.FindAllIndex(data, -1))

	var title string
	if tm := pdfTitle.FindSubmatch(data); tm != nil {
		title = unescapePDFString(tm[1])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "PDF document, version %s\n", version)
	if title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", title)
	}
	fmt.Fprintf(&sb, "Pages: %d\n", pages)

	return &Document{
		Category: models.CategoryPDF,
		Title:    title,
		Text:     sb.String(),
		Editable: false,
		Properties: map[string]string{
			"version": version,
			"pages":   strconv.Itoa(pages),
		},
	}, nil
}

func (r *pdfRenderer) Category() models.Category { return models.CategoryPDF }

func (r *pdfRenderer) Name() string { return "pdf" }

// unescapePDFString handles the backslash escapes of a PDF literal string.
// Octal escapes are decoded; unknown escapes keep the escaped byte.
func unescapePDFString(b []byte) string {
	var out bytes.Buffer
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '\\' || i+1 == len(b) {
			out.WriteByte(c)
			continue
		}
		i++
		switch e := b[i]; e {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(b) && j < i+3 && b[j] >= '0' && b[j] <= '7' {
				j++
			}
			// high-order overflow is ignored: \400 is 0x00
			n, _ := strconv.ParseUint(string(b[i:j]), 8, 16)
			out.WriteByte(byte(n))
			i = j - 1
		default:
			out.WriteByte(e)
		}
	}
	return out.String()
}

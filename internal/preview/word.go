package preview

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/models"
)

const (
	docxBodyPart = "word/document.xml"
	docxCorePart = "docProps/core.xml"
)

// wordRenderer converts .docx bodies to HTML, sanitizes the HTML and renders
// it as markdown for the terminal. The sanitized HTML is the editable source.
type wordRenderer struct {
	policy    *bluemonday.Policy
	converter *md.Converter
}

// NewWordRenderer returns the renderer for Office Open XML documents.
func NewWordRenderer() Renderer {
	return &wordRenderer{
		policy:    bluemonday.UGCPolicy(),
		converter: md.NewConverter("", true, nil),
	}
}

func (r *wordRenderer) Render(ctx context.Context, data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a docx archive: %w", common.ErrPreviewUnavailable, err)
	}

	body, err := readZipPart(zr, docxBodyPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrPreviewUnavailable, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paragraphs, err := parseParagraphs(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", common.ErrPreviewUnavailable, docxBodyPart, err)
	}

	sanitized := r.policy.Sanitize(paragraphsToHTML(paragraphs))

	markdown, err := r.converter.ConvertString(sanitized)
	if err != nil {
		return nil, fmt.Errorf("converting to markdown: %w", err)
	}

	title := coreTitle(zr)
	if title == "" {
		title = firstHeading(paragraphs)
	}

	return &Document{
		Category: models.CategoryWord,
		Title:    title,
		Text:     markdown,
		Source:   sanitized,
		Editable: true,
		Properties: map[string]string{
			"paragraphs": strconv.Itoa(len(paragraphs)),
		},
	}, nil
}

func (r *wordRenderer) Category() models.Category { return models.CategoryWord }

func (r *wordRenderer) Name() string { return "word" }

func readZipPart(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return b, nil
}

// paragraph is one w:p element. level is 1..6 for headings, 0 otherwise.
type paragraph struct {
	level int
	runs  []string // text pieces; "\n" marks a line break
}

func (p paragraph) empty() bool {
	for _, r := range p.runs {
		if strings.TrimSpace(r) != "" {
			return false
		}
	}
	return true
}

func parseParagraphs(body []byte) ([]paragraph, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var (
		all    []paragraph
		open   []int // indexes into all; text boxes nest w:p inside w:p
		inText bool
	)
	cur := func() *paragraph {
		if len(open) == 0 {
			return nil
		}
		return &all[open[len(open)-1]]
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				all = append(all, paragraph{})
				open = append(open, len(all)-1)
			case "pStyle":
				if p := cur(); p != nil {
					p.level = headingLevel(attr(t, "val"))
				}
			case "t":
				inText = true
			case "br", "cr":
				if p := cur(); p != nil {
					p.runs = append(p.runs, "\n")
				}
			case "tab":
				if p := cur(); p != nil {
					p.runs = append(p.runs, "\t")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if len(open) > 0 {
					open = open[:len(open)-1]
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if p := cur(); inText && p != nil {
				p.runs = append(p.runs, string(t))
			}
		}
	}

	out := make([]paragraph, 0, len(all))
	for _, p := range all {
		if !p.empty() {
			out = append(out, p)
		}
	}
	return out, nil
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// headingLevel maps Word style ids such as "Heading2" or "Title" to an HTML
// heading level.
func headingLevel(style string) int {
	s := strings.ToLower(style)
	if s == "title" {
		return 1
	}
	if !strings.HasPrefix(s, "heading") {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(s, "heading")))
	if err != nil || n < 1 {
		return 0
	}
	if n > 6 {
		n = 6
	}
	return n
}

func paragraphsToHTML(paragraphs []paragraph) string {
	var sb strings.Builder
	for _, p := range paragraphs {
		tag := "p"
		if p.level > 0 {
			tag = "h" + strconv.Itoa(p.level)
		}
		sb.WriteString("<" + tag + ">")
		for _, run := range p.runs {
			if run == "\n" {
				sb.WriteString("<br>")
				continue
			}
			sb.WriteString(html.EscapeString(run))
		}
		sb.WriteString("</" + tag + ">")
	}
	return sb.String()
}

func firstHeading(paragraphs []paragraph) string {
	for _, p := range paragraphs {
		if p.level > 0 {
			return strings.TrimSpace(strings.Join(p.runs, ""))
		}
	}
	return ""
}

// coreTitle reads dc:title from the package properties, if present.
func coreTitle(zr *zip.Reader) string {
	b, err := readZipPart(zr, docxCorePart)
	if err != nil {
		return ""
	}

	var core struct {
		Title string `xml:"title"`
	}
	if err := xml.Unmarshal(b, &core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}

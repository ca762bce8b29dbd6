// Package pdftext extracts text lines from pdf email attachments.
package pdftext

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/ledongthuc/pdf"
)

// Extractor extracts text of first pdf attachment.
type Extractor struct{}

// NewExtractor returns new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns text of first attachment which is a pdf by its content.
// Content type header of attachment is not trusted, senders often use application/octet-stream.
// Returns platform.ErrNoPDFAttachment when no attachment yields any text.
func (e *Extractor) Extract(attachments []models.Attachment) (string, error) {
	var lastErr error
	for _, a := range attachments {
		raw, err := a.Decode()
		if err != nil {
			lastErr = err
			continue
		}
		if !IsPDF(raw) {
			continue
		}

		text, err := FromBytes(raw)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", platform.ErrNoPDFAttachment, lastErr)
	}
	return "", platform.ErrNoPDFAttachment
}

// IsPDF checks magic bytes of content.
func IsPDF(content []byte) bool {
	return filetype.IsType(content, matchers.TypePdf)
}

// FromBytes returns text of all pdf pages, one physical line per text row.
func FromBytes(content []byte) (text string, err error) {
	// malformed documents make the pdf reader panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("can't read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("can't open pdf: %w", err)
	}

	lines := make([]string, 0)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("can't read pdf page %d: %w", i, err)
		}
		for _, row := range rows {
			if line := joinRow(fragments(row.Content)); line != "" {
				lines = append(lines, line)
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

// fragment is positioned piece of text in a row.
type fragment struct {
	x, w float64
	s    string
}

func fragments(texts pdf.TextHorizontal) []fragment {
	out := make([]fragment, 0, len(texts))
	for _, t := range texts {
		out = append(out, fragment{x: t.X, w: t.W, s: t.S})
	}
	return out
}

// wordGap is horizontal distance treated as space between fragments.
const wordGap = 1.0

// joinRow joins fragments ordered by x, inserting space where fragments don't touch.
func joinRow(frags []fragment) string {
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].x < frags[j].x })

	var b strings.Builder
	for i, f := range frags {
		if i > 0 {
			prev := frags[i-1]
			if f.x-(prev.x+prev.w) > wordGap && !strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(f.s, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(f.s)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

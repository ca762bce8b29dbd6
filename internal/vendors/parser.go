// Package vendors contains per-vendor order confirmation parsers.
package vendors

import (
	"fmt"
	"sort"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
)

// Source tells which content representation parser reads.
type Source string

const (
	SourceHTML Source = "html"
	SourcePDF  Source = "pdf"
)

// Content is email content prepared for parsing.
type Content struct {
	// HTML is normalized email html.
	HTML string
	// Text is plain text of HTML or text body when html is missing.
	Text string
	// PDFText is text extracted from order PDF attachment.
	PDFText string
}

// Parser converts vendor content into order with line items.
// Parse never fails, content it can't read results in empty items with diagnostic.
//
//go:generate mockery --name Parser --filename parser.go
type Parser interface {
	Code() string
	Source() Source
	Parse(content Content) models.ParseResult
}

// Registry holds parsers keyed by parser code.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry returns new Registry with provided parsers.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{parsers: make(map[string]Parser, len(parsers))}
	for _, p := range parsers {
		r.parsers[p.Code()] = p
	}
	return r
}

// DefaultRegistry returns Registry with all shipped vendor parsers.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewModernOptical(),
		NewMarchon(),
		NewLuxottica(),
		NewSafilo(),
	)
}

// Get returns parser registered under code.
func (r *Registry) Get(code string) (Parser, error) {
	p, ok := r.parsers[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", platform.ErrNoParser, code)
	}
	return p, nil
}

// Codes returns sorted codes of registered parsers.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.parsers))
	for code := range r.parsers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

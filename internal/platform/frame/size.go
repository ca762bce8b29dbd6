// Package frame holds optical frame measurement helpers shared by parsers and matchers.
package frame

import (
	"regexp"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
)

// sizePattern matches eye, optional bridge and optional temple, e.g. "54", "54-18-140", "54/18 145", "54□18-140".
var sizePattern = regexp.MustCompile(`^\s*(\d{2})(?:\s*[-/□xX ]\s*(\d{2})(?:\s*[-/ ]\s*(\d{3}))?)?\b`)

// Size is frame size decomposed into measurements.
type Size struct {
	Eye    string
	Bridge string
	Temple string
}

// String returns canonical "eye-bridge-temple" representation, dropping missing parts.
func (s Size) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.Eye, s.Bridge, s.Temple} {
		if p == "" {
			break
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "-")
}

// ParseSize decomposes size text into measurements. Unrecognized text returns empty Size.
func ParseSize(raw string) Size {
	m := sizePattern.FindStringSubmatch(raw)
	if m == nil {
		return Size{}
	}
	return Size{Eye: m[1], Bridge: m[2], Temple: m[3]}
}

// EyeToken returns leading 2-digit eye size token of size text or empty string.
func EyeToken(raw string) string {
	return ParseSize(raw).Eye
}

// HasEye checks whether size text starts with eye token as a whole measurement:
// "50-18-140", "50/18 140", "50 18" and "50" have eye "50", "502" and "52-18-140" don't.
func HasEye(size, eye string) bool {
	size = strings.TrimSpace(size)
	if eye == "" || !strings.HasPrefix(size, eye) {
		return false
	}
	rest := size[len(eye):]
	return rest == "" || strings.IndexAny(rest, "-/ □") == 0
}

// Normalize fills derived line item fields: quantity defaults to 1 and size is decomposed when measurements are missing.
func Normalize(item *models.LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	item.Brand = strings.TrimSpace(item.Brand)
	item.Model = strings.TrimSpace(item.Model)
	item.Color = strings.TrimSpace(item.Color)
	item.Size = strings.TrimSpace(item.Size)

	size := ParseSize(item.Size)
	if item.EyeSize == "" {
		item.EyeSize = size.Eye
	}
	if item.Bridge == "" {
		item.Bridge = size.Bridge
	}
	if item.Temple == "" {
		item.Temple = size.Temple
	}
}

package vendors

import (
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
)

var safiloAnchors = []string{"Item Description", "Article Description"}

// safiloRules decompose descriptions starting with Safilo brand codes.
var safiloRules = []prefixRule{
	{prefix: "CA", brand: "CARRERA", modelTokens: 1},
	{prefix: "CARRERA", brand: "CARRERA", modelTokens: 1},
	{prefix: "KS", brand: "KATE SPADE", modelTokens: 1},
	{prefix: "MJ", brand: "MARC JACOBS", modelTokens: 1},
	{prefix: "MARC", brand: "MARC JACOBS", modelTokens: 1},
	{prefix: "BOSS", brand: "BOSS", modelTokens: 1},
	{prefix: "HG", brand: "HUGO", modelTokens: 1},
	{prefix: "PLD", brand: "POLAROID", modelTokens: 1, keepPrefix: true},
	{prefix: "JC", brand: "JIMMY CHOO", modelTokens: 1},
	{prefix: "TH", brand: "TOMMY HILFIGER", modelTokens: 1, keepPrefix: true},
	{prefix: "DB", brand: "DAVID BECKHAM", modelTokens: 2, keepPrefix: true},
}

// Safilo parses text of Safilo PDF confirmations line by line.
type Safilo struct{}

// NewSafilo returns new Safilo parser.
func NewSafilo() *Safilo {
	return &Safilo{}
}

func (p *Safilo) Code() string   { return "safilo" }
func (p *Safilo) Source() Source { return SourcePDF }

func (p *Safilo) Parse(content Content) models.ParseResult {
	order := parseOrder(content.PDFText)

	lines := splitLines(content.PDFText)
	anchor := anchorIndex(lines, safiloAnchors...)
	if anchor < 0 {
		return finish(order, nil, "safilo: \"Item Description\" anchor not found")
	}

	items := make([]models.LineItem, 0)
	for _, pl := range scanPositional(lines, anchor+1) {
		d := decompose(pl.description, safiloRules)
		if d.brand == "" {
			continue
		}

		// rest holds "qty unit-price [extended-price]"
		rest := strings.Fields(pl.rest)
		item := models.LineItem{
			Brand:     d.brand,
			Model:     d.model,
			Color:     d.color,
			ColorCode: d.colorCode,
			Size:      pl.size,
			EyeSize:   pl.eye,
			Bridge:    pl.bridge,
			Temple:    pl.temple,
		}
		if len(rest) > 0 {
			item.Quantity = parseQuantity(rest[0])
		}
		if len(rest) > 1 {
			item.WholesalePrice = parsePrice(rest[1])
		}
		items = append(items, item)
	}

	diagnostic := ""
	if len(items) == 0 {
		diagnostic = "safilo: no item lines with size token after anchor"
	}
	return finish(order, items, diagnostic)
}

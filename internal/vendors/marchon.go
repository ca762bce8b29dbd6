package vendors

import (
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
)

const marchonAnchor = "Items Ordered"

var marchonItemExtractor = newExtractor(labels{
	"brand":    {"Brand", "Collection"},
	"model":    {"Style", "Model"},
	"color":    {"Color"},
	"size":     {"Eye Size", "Size"},
	"quantity": {"Qty", "Quantity"},
	"upc":      {"UPC"},
	"price":    {"Price", "Wholesale"},
	"msrp":     {"MSRP", "Retail"},
})

// Marchon parses Marchon html confirmations where every item row is a block of labeled values.
type Marchon struct{}

// NewMarchon returns new Marchon parser.
func NewMarchon() *Marchon {
	return &Marchon{}
}

func (p *Marchon) Code() string   { return "marchon" }
func (p *Marchon) Source() Source { return SourceHTML }

func (p *Marchon) Parse(content Content) models.ParseResult {
	order := parseOrder(content.Text)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return finish(order, nil, "marchon: can't read html: "+err.Error())
	}

	// layout tables nest, the innermost row holding the anchor is the last one in document order
	anchor := doc.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return strings.Contains(fold.Lower(rowText(tr)), fold.Lower(marchonAnchor))
	}).Last()
	if anchor.Length() == 0 {
		return finish(order, nil, "marchon: \""+marchonAnchor+"\" section not found")
	}

	items := make([]models.LineItem, 0)
	anchor.NextAllFiltered("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		text := rowText(tr)
		if isTotalsLine(text) {
			return false
		}

		v := marchonItemExtractor.extract(text)
		if v["model"] == "" {
			return true
		}

		code, color := splitColor(v["color"])
		items = append(items, models.LineItem{
			Brand:          v["brand"],
			Model:          v["model"],
			Color:          color,
			ColorCode:      code,
			Size:           v["size"],
			Quantity:       parseQuantity(v["quantity"]),
			UPC:            firstToken(v["upc"]),
			WholesalePrice: parsePrice(v["price"]),
			MSRP:           parsePrice(v["msrp"]),
		})
		return true
	})

	return finish(order, items, "")
}

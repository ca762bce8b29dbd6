package vendors

import (
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
)

var modernOpticalColumns = labels{
	"brand":      {"Brand", "Collection", "Manufacturer"},
	"model":      {"Model", "Style", "Frame"},
	"color":      {"Color", "Colour"},
	"color_code": {"Color Code", "Color #"},
	"size":       {"Size", "Eye Size"},
	"quantity":   {"Qty", "Quantity", "Ordered"},
	"price":      {"Price", "Unit Price", "Wholesale"},
	"upc":        {"UPC", "UPC Code"},
}

// ModernOptical parses Modern Optical html confirmations with one item per table row.
type ModernOptical struct{}

// NewModernOptical returns new ModernOptical parser.
func NewModernOptical() *ModernOptical {
	return &ModernOptical{}
}

func (p *ModernOptical) Code() string   { return "modernoptical" }
func (p *ModernOptical) Source() Source { return SourceHTML }

func (p *ModernOptical) Parse(content Content) models.ParseResult {
	order := parseOrder(content.Text)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return finish(order, nil, "modern optical: can't read html: "+err.Error())
	}

	t, ok := findTable(doc, modernOpticalColumns, "brand", "model", "color", "size")
	if !ok {
		return finish(order, nil, "modern optical: item table header not found")
	}

	items := make([]models.LineItem, 0)
	t.each(func(cell func(string) string) {
		item := models.LineItem{
			Brand:          cell("brand"),
			Model:          cell("model"),
			Color:          cell("color"),
			ColorCode:      cell("color_code"),
			Size:           cell("size"),
			Quantity:       parseQuantity(cell("quantity")),
			UPC:            cell("upc"),
			WholesalePrice: parsePrice(cell("price")),
		}
		if item.Brand == "" && item.Model == "" {
			return
		}
		items = append(items, item)
	})

	return finish(order, items, "")
}

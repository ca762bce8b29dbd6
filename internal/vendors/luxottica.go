package vendors

import (
	"regexp"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
)

var luxotticaColumns = labels{
	"style":       {"Style", "Item", "Style Code", "Material Number"},
	"description": {"Description", "Model Name"},
	"color":       {"Color", "Color Description"},
	"upc":         {"UPC", "EAN/UPC"},
	"quantity":    {"Qty", "Quantity", "Ordered Qty"},
	"price":       {"Price", "Net Price", "Unit Price"},
	"msrp":        {"MSRP", "Suggested Retail"},
}

// luxotticaBrands maps style code prefix to brand.
var luxotticaBrands = map[string]string{
	"RB": "Ray-Ban",
	"RX": "Ray-Ban",
	"OO": "Oakley",
	"OX": "Oakley",
	"PO": "Persol",
	"VO": "Vogue Eyewear",
	"AR": "Giorgio Armani",
	"EA": "Emporio Armani",
	"PR": "Prada",
	"MK": "Michael Kors",
	"CH": "Chanel",
}

// luxotticaStyle matches style codes like "0RB2132 901 55-18" or "RX5154 2000 51".
var luxotticaStyle = regexp.MustCompile(`^0?([A-Z]{2})([0-9]{4}[A-Z]?)\s+(\S+)(?:\s+(\d{2}(?:-\d{2}(?:-\d{3})?)?))?`)

// Luxottica parses Luxottica html confirmations. Brand, color code and size are packed into style code.
type Luxottica struct{}

// NewLuxottica returns new Luxottica parser.
func NewLuxottica() *Luxottica {
	return &Luxottica{}
}

func (p *Luxottica) Code() string   { return "luxottica" }
func (p *Luxottica) Source() Source { return SourceHTML }

func (p *Luxottica) Parse(content Content) models.ParseResult {
	order := parseOrder(content.Text)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return finish(order, nil, "luxottica: can't read html: "+err.Error())
	}

	t, ok := findTable(doc, luxotticaColumns, "style", "quantity")
	if !ok {
		return finish(order, nil, "luxottica: item table header not found")
	}

	items := make([]models.LineItem, 0)
	t.each(func(cell func(string) string) {
		item, ok := decomposeStyle(cell("style"))
		if !ok {
			return
		}
		item.Color = cell("color")
		if item.Color == "" {
			item.Color = cell("description")
		}
		item.UPC = cell("upc")
		item.Quantity = parseQuantity(cell("quantity"))
		item.WholesalePrice = parsePrice(cell("price"))
		item.MSRP = parsePrice(cell("msrp"))
		items = append(items, item)
	})

	return finish(order, items, "")
}

// decomposeStyle splits Luxottica style code into brand, model, color code and size.
func decomposeStyle(style string) (models.LineItem, bool) {
	m := luxotticaStyle.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(style)))
	if m == nil {
		return models.LineItem{}, false
	}

	brand, ok := luxotticaBrands[m[1]]
	if !ok {
		brand = m[1]
	}

	return models.LineItem{
		Brand:     brand,
		Model:     m[1] + m[2],
		ColorCode: m[3],
		Size:      m[4],
		SKU:       strings.TrimSpace(style),
	}, true
}

package vendors_test

import (
	"strings"
	"testing"

	"github.com/MichalMitros/frame-order-parser/internal/normalizer"
	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/vendors"
	"github.com/MichalMitros/frame-order-parser/internal/vendors/testdata"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemKey struct {
	Brand, Model, Color, ColorCode, Size, Eye, Bridge, Temple string
	Quantity                                                  int
}

func keys(items []models.LineItem) []itemKey {
	return lo.Map(items, func(i models.LineItem, _ int) itemKey {
		return itemKey{i.Brand, i.Model, i.Color, i.ColorCode, i.Size, i.EyeSize, i.Bridge, i.Temple, i.Quantity}
	})
}

func htmlContent(html string) vendors.Content {
	return vendors.Content{HTML: html, Text: normalizer.PlainText(html)}
}

func price(value string) *decimal.Decimal {
	return lo.ToPtr(decimal.RequireFromString(value))
}

func TestUnitModernOpticalParse(t *testing.T) {
	res := vendors.NewModernOptical().Parse(htmlContent(testdata.ModernOpticalHTML))

	assert.Empty(t, res.Diagnostic)
	assert.Equal(t, models.Order{
		OrderNumber:     "778812",
		CustomerName:    "Bright Eyes Optometry",
		OrderDate:       "03/04/2024",
		AccountNumber:   "40031",
		RepName:         "Jane Doe",
		TotalPieces:     5,
		ReferenceNumber: "PO-5512",
	}, res.Order, "should parse order header and derive total pieces")

	assert.Equal(t, []itemKey{
		{Brand: "B.M.E.C.", Model: "BIG AIR", Color: "BLACK", Size: "54", Eye: "54", Quantity: 1},
		{Brand: "B.M.E.C.", Model: "BIG BOLD", Color: "BROWN", Size: "58", Eye: "58", Quantity: 1},
		{Brand: "GENEVIEVE BOUTIQUE", Model: "BLISS", Color: "ROSE GOLD", Size: "52", Eye: "52", Quantity: 1},
		{Brand: "MODZ", Model: "KIDS RASCAL", Color: "BLUE", Size: "46", Eye: "46", Quantity: 1},
		{Brand: "ULTRA LIMITED", Model: "SANREMO", Color: "TORTOISE", Size: "53", Eye: "53", Quantity: 1},
	}, keys(res.Items), "should keep source text of every row")
	require.Len(t, res.Items, 5)
	assert.True(t, price("42.50").Equal(*res.Items[0].WholesalePrice))
}

func TestUnitModernOpticalParseForwarded(t *testing.T) {
	raw := `<div dir="ltr">---------- Forwarded message ---------<br>From: orders@modernoptical.com<br>Subject: Order<br></div>` +
		`<div class="gmail_quote"><blockquote class="gmail_quote">` + testdata.ModernOpticalHTML + `</blockquote></div>`

	res := vendors.NewModernOptical().Parse(htmlContent(normalizer.Normalize(raw).HTML))

	assert.Len(t, res.Items, 5, "should parse table of forwarded email")
	assert.Equal(t, "778812", res.Order.OrderNumber)
}

func TestUnitModernOpticalParseWrappedTags(t *testing.T) {
	raw := strings.ReplaceAll(testdata.ModernOpticalHTML, "<td>", "<td\n  class=\"cell\"\n>")

	normalized := normalizer.Normalize(raw)
	res := vendors.NewModernOptical().Parse(htmlContent(normalized.HTML))

	assert.Empty(t, normalized.Providers, "vendor html should not look forwarded")
	assert.Equal(t, raw, normalized.HTML, "vendor html should pass through unchanged")
	assert.Len(t, res.Items, 5, "should parse table with tags split across lines")
}

func TestUnitMarchonParse(t *testing.T) {
	res := vendors.NewMarchon().Parse(htmlContent(testdata.MarchonHTML))

	assert.Empty(t, res.Diagnostic)
	assert.Equal(t, models.Order{
		OrderNumber:     "SO-2291044",
		CustomerName:    "Bright Eyes Optometry",
		OrderDate:       "03/05/2024",
		AccountNumber:   "0099231",
		RepName:         "Tom Ortiz",
		TotalPieces:     6,
		ReferenceNumber: "WEB-77812",
	}, res.Order)

	assert.Equal(t, []itemKey{
		{Brand: "FLEXON", Model: "E1001", Color: "GUNMETAL", ColorCode: "033", Size: "52-18-140", Eye: "52", Bridge: "18", Temple: "140", Quantity: 2},
		{Brand: "NIKE", Model: "7280", Color: "BLACK", ColorCode: "001", Size: "51-17-140", Eye: "51", Bridge: "17", Temple: "140", Quantity: 1},
		{Brand: "CALVIN KLEIN", Model: "CK20525", Color: "SOFT TORTOISE", ColorCode: "210", Size: "53", Eye: "53", Quantity: 3},
	}, keys(res.Items), "should read labeled values of every item row")
	require.Len(t, res.Items, 3)
	assert.Equal(t, "886895123456", res.Items[0].UPC)
	assert.True(t, price("245.00").Equal(*res.Items[0].MSRP))
	assert.Nil(t, res.Items[1].MSRP, "should leave missing msrp empty")
}

func TestUnitLuxotticaParse(t *testing.T) {
	res := vendors.NewLuxottica().Parse(htmlContent(testdata.LuxotticaHTML))

	assert.Empty(t, res.Diagnostic)
	assert.Equal(t, "1187766023", res.Order.OrderNumber)
	assert.Equal(t, "2024-03-06", res.Order.OrderDate)
	assert.Equal(t, "LX-332", res.Order.ReferenceNumber)
	assert.Equal(t, 4, res.Order.TotalPieces, "should sum frame quantities and skip freight")

	assert.Equal(t, []itemKey{
		{Brand: "Ray-Ban", Model: "RB2132", Color: "BLACK", ColorCode: "901", Size: "55-18", Eye: "55", Bridge: "18", Quantity: 2},
		{Brand: "Ray-Ban", Model: "RX5154", Color: "BLACK", ColorCode: "2000", Size: "51", Eye: "51", Quantity: 1},
		{Brand: "Oakley", Model: "OX8046", Color: "AIRDROP", ColorCode: "804603", Size: "55", Eye: "55", Quantity: 1},
	}, keys(res.Items), "should decompose style codes")
	require.Len(t, res.Items, 3)
	assert.Equal(t, "805289602057", res.Items[0].UPC)
	assert.Equal(t, "0RB2132 901 55-18", res.Items[0].SKU)
}

func TestUnitSafiloParse(t *testing.T) {
	res := vendors.NewSafilo().Parse(vendors.Content{PDFText: testdata.SafiloText})

	assert.Empty(t, res.Diagnostic)
	assert.Equal(t, models.Order{
		OrderNumber:   "4500123456",
		CustomerName:  "Bright Eyes Optometry",
		OrderDate:     "03/07/2024",
		AccountNumber: "100234",
		RepName:       "Ana Ruiz",
		TotalPieces:   5,
	}, res.Order)

	assert.Equal(t, []itemKey{
		{Brand: "CARRERA", Model: "1052/S", Color: "BLACK", ColorCode: "807", Size: "54/18 145", Eye: "54", Bridge: "18", Temple: "145", Quantity: 1},
		{Brand: "KATE SPADE", Model: "ADELINE/S", Color: "HAVANA", ColorCode: "086", Size: "52/17 140", Eye: "52", Bridge: "17", Temple: "140", Quantity: 2},
		{Brand: "BOSS", Model: "1457", Color: "MATTE BLACK", ColorCode: "003", Size: "55/20 145", Eye: "55", Bridge: "20", Temple: "145", Quantity: 1},
		{Brand: "POLAROID", Model: "PLD 2086", ColorCode: "807", Size: "56/17 145", Eye: "56", Bridge: "17", Temple: "145", Quantity: 1},
	}, keys(res.Items), "should join continuation lines and apply brand code rules")
	require.Len(t, res.Items, 4)
	assert.True(t, price("95.00").Equal(*res.Items[1].WholesalePrice))
}

func TestUnitSafiloGenericSplit(t *testing.T) {
	text := "Item Description\nZEAL FOO 100 25 BLUE 50/20 140 1 10.00\nSOLO 49/19 135\nTotal Pieces: 2"

	res := vendors.NewSafilo().Parse(vendors.Content{PDFText: text})

	assert.Equal(t, []itemKey{
		{Brand: "ZEAL", Model: "FOO 100", Color: "BLUE", ColorCode: "25", Size: "50/20 140", Eye: "50", Bridge: "20", Temple: "140", Quantity: 1},
		{Brand: "SOLO", Size: "49/19 135", Eye: "49", Bridge: "19", Temple: "135", Quantity: 1},
	}, keys(res.Items), "should fall back to generic split without failing")
}

func TestUnitSafiloLookaheadWindow(t *testing.T) {
	text := "Item Description\nCA LONG\nLINE\nTHAT\nNEVER\nENDS 54/18 145 1\nCA 5001 001 RED 51/19 140 1"

	res := vendors.NewSafilo().Parse(vendors.Content{PDFText: text})

	require.NotEmpty(t, res.Items)
	assert.Equal(t, "5001", res.Items[len(res.Items)-1].Model, "should parse item after abandoned window")
	for _, item := range res.Items {
		assert.NotEqual(t, "LONG", item.Model, "should not join more than three continuation lines")
	}
}

func TestUnitParseWithoutAnchor(t *testing.T) {
	html := `<html><body><p>Order Number: 991</p><p>Your order has shipped.</p></body></html>`

	tests := map[string]struct {
		parser  vendors.Parser
		content vendors.Content
	}{
		"modern optical": {parser: vendors.NewModernOptical(), content: htmlContent(html)},
		"marchon":        {parser: vendors.NewMarchon(), content: htmlContent(html)},
		"luxottica":      {parser: vendors.NewLuxottica(), content: htmlContent(html)},
		"safilo":         {parser: vendors.NewSafilo(), content: vendors.Content{PDFText: "Order No: 991\nShipped"}},
		"empty content":  {parser: vendors.NewModernOptical(), content: vendors.Content{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var res models.ParseResult
			require.NotPanics(t, func() { res = tt.parser.Parse(tt.content) })

			assert.Empty(t, res.Items, "should return no items")
			assert.NotEmpty(t, res.Diagnostic, "should explain why nothing was parsed")
			if name != "empty content" {
				assert.Equal(t, "991", res.Order.OrderNumber, "should keep partially parsed header")
			}
		})
	}
}

func TestUnitRegistry(t *testing.T) {
	reg := vendors.DefaultRegistry()

	assert.Equal(t, []string{"luxottica", "marchon", "modernoptical", "safilo"}, reg.Codes())

	p, err := reg.Get("safilo")
	require.NoError(t, err)
	assert.Equal(t, vendors.SourcePDF, p.Source())

	_, err = reg.Get("unknown")
	assert.ErrorIs(t, err, platform.ErrNoParser)
}

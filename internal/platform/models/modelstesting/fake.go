package modelstesting

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var colors = []string{"BLACK", "TORTOISE", "GUNMETAL", "CRYSTAL", "HAVANA", "NAVY"}

// FakeLineItem returns models.LineItem of fully described frame with fake data.
func FakeLineItem(ops ...func(i *models.LineItem)) models.LineItem {
	eye := fmt.Sprint(48 + rand.Intn(10))
	bridge := fmt.Sprint(16 + rand.Intn(5))
	temple := fmt.Sprint(135 + 5*rand.Intn(3))

	item := models.LineItem{
		Brand:          strings.ToUpper(faker.Word()),
		Model:          strings.ToUpper(faker.Word()) + " " + fmt.Sprint(rand.Intn(900)+100),
		Color:          colors[rand.Intn(len(colors))],
		ColorCode:      fmt.Sprintf("%03d", rand.Intn(1000)),
		Size:           eye + "-" + bridge + "-" + temple,
		EyeSize:        eye,
		Bridge:         bridge,
		Temple:         temple,
		Quantity:       1 + rand.Intn(3),
		UPC:            fmt.Sprintf("%012d", rand.Int63n(1_000_000_000_000)),
		WholesalePrice: lo.ToPtr(decimal.New(int64(4000+rand.Intn(10000)), -2)),
		Material:       faker.Word(),
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}

// FakeLineItems returns n fake line items.
func FakeLineItems(n int, ops ...func(i *models.LineItem)) []models.LineItem {
	items := make([]models.LineItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, FakeLineItem(ops...))
	}
	return items
}

// FakeCatalogEntry returns models.CatalogEntry with fake data.
func FakeCatalogEntry(ops ...func(e *models.CatalogEntry)) models.CatalogEntry {
	item := FakeLineItem()
	entry := models.CatalogEntry{
		VendorID:        faker.Word(),
		VendorName:      faker.Name(),
		Brand:           item.Brand,
		Model:           item.Model,
		Color:           item.Color,
		ColorCode:       item.ColorCode,
		Size:            item.Size,
		EyeSize:         item.EyeSize,
		Bridge:          item.Bridge,
		Temple:          item.Temple,
		UPC:             item.UPC,
		WholesaleCost:   item.WholesalePrice,
		Material:        item.Material,
		ConfidenceScore: 50 + rand.Intn(46),
		TimesOrdered:    1,
		DataSource:      models.DataSourceAPI,
		LastSeenAt:      time.Now().UTC(),
	}

	for _, op := range ops {
		op(&entry)
	}

	return entry
}

// FakeResult returns models.Result of vendor order with n fake items.
func FakeResult(n int, ops ...func(r *models.Result)) models.Result {
	items := FakeLineItems(n)
	result := models.Result{
		MessageID: faker.UUIDHyphenated(),
		VendorID:  lo.ToPtr(faker.Word()),
		Vendor:    faker.Name(),
		Order: models.Order{
			OrderNumber:   fmt.Sprint(100000 + rand.Intn(900000)),
			CustomerName:  faker.Name(),
			OrderDate:     faker.Date(),
			AccountNumber: fmt.Sprint(rand.Intn(99999)),
			RepName:       faker.Name(),
			TotalPieces:   lo.SumBy(items, func(i models.LineItem) int { return i.Quantity }),
		},
		Items: items,
	}

	for _, op := range ops {
		op(&result)
	}

	return result
}

// FakeEmail returns models.Email with fake data and html body.
func FakeEmail(ops ...func(e *models.Email)) models.Email {
	email := models.Email{
		MessageID:  faker.UUIDHyphenated(),
		TenantID:   faker.UUIDHyphenated(),
		AccountID:  faker.UUIDHyphenated(),
		Sender:     faker.Email(),
		Subject:    faker.Sentence(),
		HTML:       "<html><body><p>" + faker.Paragraph() + "</p></body></html>",
		ReceivedAt: time.Now().UTC(),
	}

	for _, op := range ops {
		op(&email)
	}

	return email
}

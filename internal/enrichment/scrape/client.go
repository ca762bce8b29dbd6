// Package scrape searches public vendor catalog pages.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/fetcher"
	"github.com/MichalMitros/frame-order-parser/internal/platform/frame"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const searchPath = "/search"

// ErrNoBaseURL is returned for vendors without configured catalog url.
var ErrNoBaseURL = errors.New("vendor has no catalog base url")

// Fetcher fetches html pages.
type Fetcher interface {
	FetchPage(ctx context.Context, url string) (io.ReadCloser, error)
}

// Client reads product cards from vendor catalog search page.
// Every card is an element with data-product attribute holding elements of classes
// brand, model, color, color-code, size, upc, sku, price, msrp, material and stock.
type Client struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

// NewClient returns new Client limited to perSecond page fetches.
func NewClient(f Fetcher, perSecond float64) *Client {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Client{
		fetcher: f,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (c *Client) Kind() models.DataSource {
	return models.DataSourceWebScrape
}

// Search fetches search page of term. Missing page means no variants.
func (c *Client) Search(ctx context.Context, vendor models.Vendor, term string) ([]models.Variant, error) {
	base := strings.TrimRight(vendor.Enrichment.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoBaseURL, vendor.Code)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("can't wait for rate limiter: %w", err)
	}

	page, err := c.fetcher.FetchPage(ctx, base+searchPath+"?q="+url.QueryEscape(term))
	if errors.Is(err, fetcher.ErrPageNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't fetch search page: %w", err)
	}
	defer page.Close()

	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("can't parse search page: %w", err)
	}

	variants := make([]models.Variant, 0)
	doc.Find("[data-product]").Each(func(_ int, card *goquery.Selection) {
		text := func(class string) string {
			return strings.Join(strings.Fields(card.Find("."+class).First().Text()), " ")
		}

		size := frame.ParseSize(text("size"))
		v := models.Variant{
			Brand:          text("brand"),
			Model:          text("model"),
			Color:          text("color"),
			ColorCode:      text("color-code"),
			EyeSize:        size.Eye,
			Bridge:         size.Bridge,
			Temple:         size.Temple,
			UPC:            text("upc"),
			SKU:            text("sku"),
			Material:       text("material"),
			WholesalePrice: money(text("price")),
			MSRP:           money(text("msrp")),
		}
		if stock := strings.ToLower(text("stock")); stock != "" {
			available := !strings.Contains(stock, "out") && !strings.Contains(stock, "backorder")
			v.InStock = &available
		}
		variants = append(variants, v)
	})

	return variants, nil
}

func money(value string) *decimal.Decimal {
	value = strings.NewReplacer("$", "", ",", "", "USD", "").Replace(value)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &d
}

// Package vendorapi searches vendor product catalogs over their json search endpoints.
package vendorapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/platform/frame"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	searchPath       = "/products/search"
	defaultRetryMax  = 2
	defaultRateLimit = 2
	maxResponseSize  = 4 << 20

	// DefaultRetryWaitMin is shortest wait before retry.
	DefaultRetryWaitMin = 500 * time.Millisecond
	// DefaultRetryWaitMax is longest wait before retry.
	DefaultRetryWaitMax = 4 * time.Second
)

// ErrNoBaseURL is returned for vendors without configured api url.
var ErrNoBaseURL = errors.New("vendor has no api base url")

// Option is custom configuration of Client.
type Option func(c *Client)

// Client searches vendor product api. Transient failures are retried with exponential backoff.
type Client struct {
	http      *retryablehttp.Client
	limiter   *rate.Limiter
	apiKeys   map[string]string
	userAgent string
}

// NewClient returns new Client.
func NewClient(httpClient *http.Client, userAgent string, ops ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = httpClient
	rc.RetryMax = defaultRetryMax
	rc.RetryWaitMin = DefaultRetryWaitMin
	rc.RetryWaitMax = DefaultRetryWaitMax
	rc.Logger = nil

	c := &Client{
		http:      rc,
		limiter:   rate.NewLimiter(rate.Limit(defaultRateLimit), 1),
		apiKeys:   map[string]string{},
		userAgent: userAgent,
	}

	for _, op := range ops {
		op(c)
	}

	return c
}

func (c *Client) Kind() models.DataSource {
	return models.DataSourceAPI
}

// Search queries vendor search endpoint. Not found response means no variants.
func (c *Client) Search(ctx context.Context, vendor models.Vendor, term string) ([]models.Variant, error) {
	base := strings.TrimRight(vendor.Enrichment.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoBaseURL, vendor.Code)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("can't wait for rate limiter: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, base+searchPath+"?q="+url.QueryEscape(term), nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if key, ok := c.apiKeys[vendor.Code]; ok {
		req.Header.Set("X-Api-Key", key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("can't read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("response is not valid json")
	}

	return decodeVariants(body), nil
}

// decodeVariants reads "products" array, falling back to "data.items".
func decodeVariants(body []byte) []models.Variant {
	products := gjson.GetBytes(body, "products")
	if !products.Exists() {
		products = gjson.GetBytes(body, "data.items")
	}

	variants := make([]models.Variant, 0)
	products.ForEach(func(_, p gjson.Result) bool {
		v := models.Variant{
			Brand:     p.Get("brand").String(),
			Model:     p.Get("model").String(),
			Color:     p.Get("color").String(),
			ColorCode: p.Get("colorCode").String(),
			EyeSize:   p.Get("size.eye").String(),
			Bridge:    p.Get("size.bridge").String(),
			Temple:    p.Get("size.temple").String(),
			UPC:       p.Get("upc").String(),
			SKU:       p.Get("sku").String(),
			Material:  p.Get("material").String(),
		}

		// flat "54-18-145" size
		if size := p.Get("size"); size.Type == gjson.String {
			s := frame.ParseSize(size.String())
			v.EyeSize, v.Bridge, v.Temple = s.Eye, s.Bridge, s.Temple
		}

		v.WholesalePrice = amount(p.Get("price.wholesale"))
		v.MSRP = amount(p.Get("price.msrp"))
		if stock := p.Get("stock.available"); stock.Exists() {
			available := stock.Bool()
			v.InStock = &available
		}

		variants = append(variants, v)
		return true
	})

	return variants
}

func amount(r gjson.Result) *decimal.Decimal {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	d, err := decimal.NewFromString(r.String())
	if err != nil {
		return nil
	}
	return &d
}

// WithRetry sets number of retries and backoff bounds.
func WithRetry(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = retryMax
		c.http.RetryWaitMin = waitMin
		c.http.RetryWaitMax = waitMax
	}
}

// WithRateLimit sets maximal number of requests per second.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
		}
	}
}

// WithAPIKeys sets api keys by vendor code.
func WithAPIKeys(keys map[string]string) Option {
	return func(c *Client) {
		c.apiKeys = keys
	}
}

package models

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Email is inbound vendor order confirmation email model.
type Email struct {
	MessageID   string
	TenantID    string
	AccountID   string
	Sender      string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
	ReceivedAt  time.Time
}

// Attachment is email attachment model with base64 encoded content.
type Attachment struct {
	Filename    string
	ContentType string
	Content     string
}

// Decode returns decoded attachment bytes.
func (a Attachment) Decode() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(a.Content)
	if err != nil {
		return nil, fmt.Errorf("can't decode attachment %q: %w", a.Filename, err)
	}
	return raw, nil
}

// Tier is vendor detection tier.
type Tier string

const (
	TierDomain    Tier = "domain"
	TierSignature Tier = "signature"
	TierKeyword   Tier = "keyword"
)

// Strategy is vendor enrichment strategy.
type Strategy string

const (
	StrategyAPI       Strategy = "api"
	StrategyWebScrape Strategy = "web_scrape"
	StrategyNone      Strategy = "none"
)

// DataSource tells where catalog entry attributes come from.
type DataSource string

const (
	DataSourceAPI                DataSource = "api"
	DataSourceWebScrape          DataSource = "web_scrape"
	DataSourceVendorCatalogMatch DataSource = "vendor_catalog_match"
)

// Vendor is vendor identity model.
type Vendor struct {
	ID         string     `yaml:"id"`
	Code       string     `yaml:"code"`
	Name       string     `yaml:"name"`
	Parser     string     `yaml:"parser"`
	Active     bool       `yaml:"active"`
	Detection  Detection  `yaml:"detection"`
	Enrichment Enrichment `yaml:"enrichment"`
}

// Detection holds vendor detection signatures.
type Detection struct {
	Domains        []string `yaml:"domains"`
	Signatures     []string `yaml:"signatures"`
	Keywords       []string `yaml:"keywords"`
	MinKeywordHits int      `yaml:"min_keyword_hits"`
	Weights        Weights  `yaml:"weights"`
}

// Weights holds per-tier detection confidence.
type Weights struct {
	Domain    int `yaml:"domain"`
	Signature int `yaml:"signature"`
	Keyword   int `yaml:"keyword"`
}

// Of returns weight of provided tier.
func (w Weights) Of(tier Tier) int {
	switch tier {
	case TierDomain:
		return w.Domain
	case TierSignature:
		return w.Signature
	case TierKeyword:
		return w.Keyword
	default:
		return 0
	}
}

// Enrichment holds vendor enrichment source configuration.
type Enrichment struct {
	Strategy         Strategy          `yaml:"strategy"`
	BaseURL          string            `yaml:"base_url"`
	BrandAliases     map[string]string `yaml:"brand_aliases"`
	PrefixExpansions map[string]string `yaml:"prefix_expansions"`
}

// Order is parsed order header model.
type Order struct {
	OrderNumber     string `json:"order_number"`
	CustomerName    string `json:"customer_name"`
	CustomerCode    string `json:"customer_code,omitempty"`
	OrderDate       string `json:"order_date"`
	AccountNumber   string `json:"account_number"`
	RepName         string `json:"rep_name"`
	TotalPieces     int    `json:"total_pieces"`
	ReferenceNumber string `json:"reference_number"`
}

// LineItem is parsed order line item model.
type LineItem struct {
	Brand           string           `json:"brand"`
	Model           string           `json:"model"`
	Color           string           `json:"color"`
	ColorCode       string           `json:"color_code"`
	Size            string           `json:"size"`
	EyeSize         string           `json:"eye_size"`
	Bridge          string           `json:"bridge"`
	Temple          string           `json:"temple"`
	Quantity        int              `json:"quantity"`
	UPC             string           `json:"upc"`
	SKU             string           `json:"sku,omitempty"`
	WholesalePrice  *decimal.Decimal `json:"wholesale_price"`
	MSRP            *decimal.Decimal `json:"msrp"`
	InStock         *bool            `json:"in_stock"`
	Material        string           `json:"material"`
	APIVerified     bool             `json:"api_verified"`
	ConfidenceScore int              `json:"confidence_score"`

	Cached          bool       `json:"-"`
	NeedsEnrichment bool       `json:"-"`
	CacheIncomplete bool       `json:"-"`
	Enriched        bool       `json:"-"`
	DataSource      DataSource `json:"-"`
	MatchTier       string     `json:"-"`
	CatalogID       int        `json:"-"`
}

// CatalogEntry is shared cross-tenant frame catalog model.
type CatalogEntry struct {
	ID              int
	VendorID        string
	VendorName      string
	Brand           string
	Model           string
	Color           string
	ColorCode       string
	Size            string
	EyeSize         string
	Bridge          string
	Temple          string
	UPC             string
	WholesaleCost   *decimal.Decimal
	MSRP            *decimal.Decimal
	Material        string
	InStock         *bool
	ConfidenceScore int
	TimesOrdered    int32
	DataSource      DataSource
	LastSeenAt      time.Time
	CreatedAt       time.Time
}

// Variant is product variant returned by enrichment source.
type Variant struct {
	Brand          string
	Model          string
	Color          string
	ColorCode      string
	EyeSize        string
	Bridge         string
	Temple         string
	UPC            string
	SKU            string
	WholesalePrice *decimal.Decimal
	MSRP           *decimal.Decimal
	InStock        *bool
	Material       string
}

// EnrichmentResult is result of enriching single line item.
type EnrichmentResult struct {
	Found      bool
	Variant    *Variant
	Score      int
	DataSource DataSource
	Err        error
}

// ParseResult contains parsed order with its items and diagnostic if nothing was parsed.
type ParseResult struct {
	Order      Order
	Items      []LineItem
	Diagnostic string
}

// Stats holds per-email processing counters.
type Stats struct {
	ParsedItems   int `json:"parsed_items"`
	CacheHits     int `json:"cache_hits"`
	CacheMisses   int `json:"cache_misses"`
	EnrichedItems int `json:"enriched_items"`
	FailedEnrich  int `json:"failed_enrichments"`
	CachedNew     int `json:"cached_new"`
	CachedUpdated int `json:"cached_updated"`
	CacheSkipped  int `json:"cache_skipped"`
}

// Result is normalized pipeline output consumed by inventory lifecycle store.
type Result struct {
	MessageID  string     `json:"message_id"`
	VendorID   *string    `json:"vendorId"`
	Vendor     string     `json:"vendor"`
	Order      Order      `json:"order"`
	Items      []LineItem `json:"items"`
	Providers  []string   `json:"providers,omitempty"`
	Stats      Stats      `json:"stats"`
	Diagnostic string     `json:"diagnostic,omitempty"`
	OrderID    int        `json:"order_id,omitempty"`
}

// Run is single email processing run model.
type Run struct {
	ID            int
	MessageID     string
	CreatedAt     time.Time
	FinishedAt    *time.Time
	IsSuccess     *bool
	StatusMessage *string
	VendorName    *string
	ParsedItems   *int32
	CacheHits     *int32
	CacheMisses   *int32
	EnrichedItems *int32
	CachedNew     *int32
	CachedUpdated *int32
}

// ItemStatus is inventory item lifecycle status.
type ItemStatus string

const (
	StatusPending  ItemStatus = "pending"
	StatusCurrent  ItemStatus = "current"
	StatusSold     ItemStatus = "sold"
	StatusArchived ItemStatus = "archived"
)

// StoredOrder is order persisted in inventory store.
type StoredOrder struct {
	ID         int
	AccountID  string
	VendorID   *string
	VendorName string
	Order      Order
	CreatedAt  time.Time
}

// InventoryItem is tenant-scoped inventory row derived from line item.
type InventoryItem struct {
	ID         int
	OrderID    int
	AccountID  string
	Item       LineItem
	Status     ItemStatus
	ReceivedAt *time.Time
	SoldAt     *time.Time
	ArchivedAt *time.Time
	CreatedAt  time.Time
}

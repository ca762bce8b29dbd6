// Package pipeline turns single vendor order confirmation email into inventory order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/catalog"
	"github.com/MichalMitros/frame-order-parser/internal/detector"
	"github.com/MichalMitros/frame-order-parser/internal/enrichment"
	"github.com/MichalMitros/frame-order-parser/internal/normalizer"
	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/vendors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Runs --filename runs.go
//go:generate mockery --name Inventory --filename inventory.go
//go:generate mockery --name Extractor --filename extractor.go

// Detector classifies email to vendor.
type Detector interface {
	Detect(sender, subject, body string) (*detector.Match, error)
}

// Parsers returns vendor parser by its code.
type Parsers interface {
	Get(code string) (vendors.Parser, error)
}

// Extractor extracts order text from pdf attachments.
type Extractor interface {
	Extract(attachments []models.Attachment) (string, error)
}

// Reconciler checks parsed items against catalog.
type Reconciler interface {
	Check(ctx context.Context, vendorID *string, items []models.LineItem) catalog.CheckResult
}

// Enricher enriches items missing in catalog.
type Enricher interface {
	Enrich(ctx context.Context, vendor *models.Vendor, items []models.LineItem) enrichment.Outcome
}

// CatalogWriter writes items back to catalog.
type CatalogWriter interface {
	Cache(ctx context.Context, vendorID, vendorName string, items []models.LineItem) (catalog.CacheResult, error)
}

// Inventory is inventory lifecycle store.
type Inventory interface {
	// SaveOrder stores order with pending items. Already stored order is returned with created set to false.
	SaveOrder(ctx context.Context, accountID, tenantID string, result *models.Result) (order *models.StoredOrder, created bool, err error)
}

// Runs is processing runs storage.
type Runs interface {
	// StartRun creates new run if there is no unfinished run of the same message.
	StartRun(ctx context.Context, messageID string) (*models.Run, error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Components are stages used by Processor.
type Components struct {
	Detector  Detector
	Parsers   Parsers
	Extractor Extractor
	Engine    Reconciler
	Enricher  Enricher
	Writer    CatalogWriter
	Inventory Inventory
	Runs      Runs
}

// Option is custom configuration of Processor.
type Option func(p *Processor)

// Processor runs email through normalize, detect, parse, reconcile, enrich, cache and persist stages.
// Stages run strictly one after another.
type Processor struct {
	Components
	logger *zerolog.Logger
	clock  Clock
}

// NewProcessor returns new Processor.
func NewProcessor(components Components, logger *zerolog.Logger, ops ...Option) *Processor {
	proc := &Processor{
		Components: components,
		logger:     logger,
		clock:      systemClock{},
	}

	for _, op := range ops {
		op(proc)
	}

	return proc
}

// Process processes single email.
// Failures caused by the email itself are returned as *platform.ProcessingError, every other error
// comes from infrastructure and processing may be retried.
func (p *Processor) Process(ctx context.Context, email models.Email) (*models.Result, error) {
	run, err := p.Runs.StartRun(ctx, email.MessageID)
	if err != nil {
		return nil, fmt.Errorf("can't start processing: %w", err)
	}

	result, err := p.process(ctx, email)
	if result != nil {
		applyStats(run, result)
	}

	return result, p.finishProcessing(ctx, run, err)
}

func (p *Processor) process(ctx context.Context, email models.Email) (*models.Result, error) {
	logger := p.logger.With().Str("messageId", email.MessageID).Logger()

	if strings.TrimSpace(email.HTML) == "" && strings.TrimSpace(email.Text) == "" {
		return nil, platform.Fail(platform.StageValidate, "email has no body", platform.ErrEmptyBody)
	}

	content, providers := prepare(email)

	match, err := p.Detector.Detect(email.Sender, email.Subject, content.Text)
	if err != nil {
		return nil, platform.Fail(platform.StageDetect, "can't detect vendor", err)
	}
	vendor := match.Vendor

	logger = logger.With().Str("vendor", vendor.Name).Logger()
	logger.Debug().
		Str("tier", string(match.Tier)).
		Int("confidence", match.Confidence).
		Strs("evidence", match.Evidence).
		Msg("vendor detected")

	parser, err := p.Parsers.Get(vendor.Parser)
	if err != nil {
		return nil, platform.Fail(platform.StageParse, "vendor has no parser", err)
	}

	if parser.Source() == vendors.SourcePDF {
		content.PDFText, err = p.Extractor.Extract(email.Attachments)
		if err != nil {
			return nil, platform.Fail(platform.StageParse, "vendor order requires pdf attachment", err)
		}
	}

	parsed := parser.Parse(content)
	result := &models.Result{
		MessageID:  email.MessageID,
		VendorID:   lo.ToPtr(vendor.ID),
		Vendor:     vendor.Name,
		Order:      parsed.Order,
		Items:      parsed.Items,
		Providers:  providers,
		Diagnostic: parsed.Diagnostic,
	}
	result.Stats.ParsedItems = len(parsed.Items)

	logger = logger.With().Str("orderNumber", result.Order.OrderNumber).Logger()
	if len(parsed.Items) == 0 {
		logger.Warn().Str("diagnostic", parsed.Diagnostic).Msg("no items parsed")
		return result, nil
	}

	checked := p.Engine.Check(ctx, result.VendorID, result.Items)
	result.Stats.CacheHits = checked.CacheHits
	result.Stats.CacheMisses = checked.CacheMisses

	enriched := p.Enricher.Enrich(ctx, &vendor, checked.Items)
	result.Items = enriched.Items
	result.Stats.EnrichedItems = enriched.Enriched
	result.Stats.FailedEnrich = enriched.Failed

	cached, err := p.Writer.Cache(ctx, vendor.ID, vendor.Name, result.Items)
	if err != nil {
		logger.Warn().Err(err).Str("stage", string(platform.StageCache)).Msg("catalog partially written")
	}
	result.Stats.CachedNew = cached.Cached
	result.Stats.CachedUpdated = cached.Updated
	result.Stats.CacheSkipped = cached.Skipped

	order, created, err := p.Inventory.SaveOrder(ctx, email.AccountID, email.TenantID, result)
	if err != nil {
		return result, fmt.Errorf("can't persist order: %w", err)
	}
	result.OrderID = order.ID

	logger.Info().
		Int("parsedItems", result.Stats.ParsedItems).
		Int("cacheHits", result.Stats.CacheHits).
		Int("cacheMisses", result.Stats.CacheMisses).
		Int("enrichedItems", result.Stats.EnrichedItems).
		Int("orderId", order.ID).
		Bool("newOrder", created).
		Msg("email processed")

	return result, nil
}

// prepare normalizes html body and returns content for parsers with detected wrapping providers.
func prepare(email models.Email) (vendors.Content, []string) {
	if strings.TrimSpace(email.HTML) == "" {
		return vendors.Content{Text: email.Text}, nil
	}

	normalized := normalizer.Normalize(email.HTML)
	return vendors.Content{
		HTML: normalized.HTML,
		Text: normalizer.PlainText(normalized.HTML),
	}, normalized.Providers
}

func applyStats(run *models.Run, result *models.Result) {
	run.VendorName = lo.ToPtr(result.Vendor)
	run.ParsedItems = lo.ToPtr(int32(result.Stats.ParsedItems))
	run.CacheHits = lo.ToPtr(int32(result.Stats.CacheHits))
	run.CacheMisses = lo.ToPtr(int32(result.Stats.CacheMisses))
	run.EnrichedItems = lo.ToPtr(int32(result.Stats.EnrichedItems))
	run.CachedNew = lo.ToPtr(int32(result.Stats.CachedNew))
	run.CachedUpdated = lo.ToPtr(int32(result.Stats.CachedUpdated))
}

func (p *Processor) finishProcessing(ctx context.Context, run *models.Run, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = p.clock.Now()

	err := p.Runs.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish processing: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed processing: %w (fail reason: %w)", err, status)
	}

	return status
}

// IsEmailFatal tells if err was caused by the email itself, so retrying it won't help.
func IsEmailFatal(err error) bool {
	var procErr *platform.ProcessingError
	return errors.As(err, &procErr)
}

// WithClock sets Processor's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Processor) {
		p.clock = c
	}
}

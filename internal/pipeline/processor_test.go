package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/catalog"
	"github.com/MichalMitros/frame-order-parser/internal/catalog/catalogtesting"
	"github.com/MichalMitros/frame-order-parser/internal/detector"
	"github.com/MichalMitros/frame-order-parser/internal/enrichment"
	"github.com/MichalMitros/frame-order-parser/internal/pdftext"
	"github.com/MichalMitros/frame-order-parser/internal/pipeline"
	"github.com/MichalMitros/frame-order-parser/internal/pipeline/mocks"
	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/vendors"
	"github.com/MichalMitros/frame-order-parser/internal/vendors/testdata"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var nopLog = zerolog.Nop()

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() *time.Time {
	return &c.now
}

func components(t *testing.T, store catalog.Store, runs *mocks.Runs, inventory *mocks.Inventory) pipeline.Components {
	t.Helper()

	registry, err := detector.DefaultRegistry()
	require.NoError(t, err)

	return pipeline.Components{
		Detector:  detector.NewDetector(registry),
		Parsers:   vendors.DefaultRegistry(),
		Extractor: pdftext.NewExtractor(),
		Engine:    catalog.NewEngine(store, &nopLog),
		Enricher:  enrichment.NewEnricher(nil, &nopLog, enrichment.WithBatchPause(0)),
		Writer:    catalog.NewWriter(store, &nopLog),
		Inventory: inventory,
		Runs:      runs,
	}
}

func modernOpticalEmail() models.Email {
	return models.Email{
		MessageID: "msg-1",
		AccountID: "account-1",
		TenantID:  "tenant-1",
		Sender:    "Modern Optical <orders@modernoptical.com>",
		Subject:   "Order Confirmation 778812",
		HTML:      testdata.ModernOpticalHTML,
	}
}

func TestUnitProcessModernOptical(t *testing.T) {
	store := catalogtesting.NewMemoryStore()
	runs := mocks.NewRuns(t)
	inventory := mocks.NewInventory(t)
	finishedAt := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)

	email := modernOpticalEmail()
	runs.On("StartRun", mock.Anything, email.MessageID).
		Return(&models.Run{ID: 1, MessageID: email.MessageID}, nil).
		Times(2)
	runs.On("FinishRun", mock.Anything, mock.MatchedBy(func(run *models.Run) bool {
		return *run.IsSuccess && run.StatusMessage == nil && run.FinishedAt.Equal(finishedAt)
	})).Return(nil).Times(2)
	inventory.On("SaveOrder", mock.Anything, "account-1", "tenant-1", mock.AnythingOfType("*models.Result")).
		Return(&models.StoredOrder{ID: 7}, true, nil).Once()
	inventory.On("SaveOrder", mock.Anything, "account-1", "tenant-1", mock.AnythingOfType("*models.Result")).
		Return(&models.StoredOrder{ID: 7}, false, nil).Once()

	proc := pipeline.NewProcessor(
		components(t, store, runs, inventory),
		&nopLog,
		pipeline.WithClock(fixedClock{now: finishedAt}),
	)

	first, err := proc.Process(context.TODO(), email)
	require.NoError(t, err)

	assert.Equal(t, "Modern Optical", first.Vendor)
	assert.Equal(t, lo.ToPtr("modern-optical"), first.VendorID)
	assert.Equal(t, "778812", first.Order.OrderNumber)
	assert.Equal(t, 5, first.Order.TotalPieces, "should derive total pieces")
	require.Len(t, first.Items, 5)
	assert.Equal(t, "B.M.E.C.", first.Items[0].Brand)
	assert.Equal(t, "BIG AIR", first.Items[0].Model)
	assert.Equal(t, "BLACK", first.Items[0].Color)
	assert.Equal(t, "54", first.Items[0].Size)
	assert.Equal(t, 1, first.Items[0].Quantity)
	assert.Equal(t, 0, first.Stats.CacheHits)
	assert.Equal(t, 5, first.Stats.CacheMisses)
	assert.Equal(t, 5, first.Stats.CachedNew, "should cache every parsed frame")
	assert.Equal(t, 7, first.OrderID)
	assert.Len(t, store.Entries(), 5)

	second, err := proc.Process(context.TODO(), email)
	require.NoError(t, err)

	assert.Equal(t, 5, second.Stats.CacheHits, "warm catalog should serve every item")
	assert.Equal(t, 0, second.Stats.CacheMisses)
	assert.Equal(t, 0, second.Stats.CachedNew)
	assert.Len(t, store.Entries(), 5, "second run should not duplicate catalog entries")
	assert.True(t, lo.EveryBy(second.Items, func(i models.LineItem) bool { return i.Cached }))
	for _, entry := range store.Entries() {
		assert.Equal(t, int32(2), entry.TimesOrdered, "should count every order of frame")
	}
}

func TestUnitProcessFailures(t *testing.T) {
	tests := map[string]struct {
		email     models.Email
		wantStage platform.Stage
		wantErr   error
	}{
		"no body": {
			email:     models.Email{MessageID: "msg", Sender: "orders@modernoptical.com", HTML: "  "},
			wantStage: platform.StageValidate,
			wantErr:   platform.ErrEmptyBody,
		},
		"unknown vendor": {
			email:     models.Email{MessageID: "msg", Sender: "news@example.com", Text: "Weekly newsletter"},
			wantStage: platform.StageDetect,
			wantErr:   platform.ErrNoVendorMatch,
		},
		"pdf vendor without pdf": {
			email: models.Email{
				MessageID: "msg",
				Sender:    "orders@safilo.com",
				HTML:      "<p>Please find attached your order confirmation.</p>",
				Attachments: []models.Attachment{
					{Filename: "logo.png", ContentType: "image/png", Content: "iVBORw0KGgo="},
				},
			},
			wantStage: platform.StageParse,
			wantErr:   platform.ErrNoPDFAttachment,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			runs := mocks.NewRuns(t)
			inventory := mocks.NewInventory(t)

			runs.On("StartRun", mock.Anything, "msg").Return(&models.Run{ID: 1, MessageID: "msg"}, nil).Once()
			runs.On("FinishRun", mock.Anything, mock.MatchedBy(func(run *models.Run) bool {
				return !*run.IsSuccess && run.StatusMessage != nil && run.FinishedAt != nil
			})).Return(nil).Once()

			proc := pipeline.NewProcessor(components(t, catalogtesting.NewMemoryStore(), runs, inventory), &nopLog)

			res, err := proc.Process(context.TODO(), tt.email)

			assert.Nil(t, res)
			require.ErrorIs(t, err, tt.wantErr)
			var procErr *platform.ProcessingError
			require.ErrorAs(t, err, &procErr)
			assert.Equal(t, tt.wantStage, procErr.Stage)
			assert.True(t, pipeline.IsEmailFatal(err))
		})
	}
}

func TestUnitProcessPDFVendor(t *testing.T) {
	runs := mocks.NewRuns(t)
	inventory := mocks.NewInventory(t)
	extractor := mocks.NewExtractor(t)

	email := models.Email{
		MessageID:   "msg",
		Sender:      "orders@safilo.com",
		Text:        "Your order confirmation is attached.",
		Attachments: []models.Attachment{{Filename: "order.pdf", ContentType: "application/octet-stream"}},
	}

	runs.On("StartRun", mock.Anything, "msg").Return(&models.Run{ID: 1, MessageID: "msg"}, nil).Once()
	runs.On("FinishRun", mock.Anything, mock.MatchedBy(func(run *models.Run) bool {
		return *run.IsSuccess && *run.VendorName == "Safilo" && *run.ParsedItems == 4
	})).Return(nil).Once()
	extractor.On("Extract", email.Attachments).Return(testdata.SafiloText, nil).Once()
	inventory.On("SaveOrder", mock.Anything, "", "", mock.AnythingOfType("*models.Result")).
		Return(&models.StoredOrder{ID: 3}, true, nil).Once()

	comps := components(t, catalogtesting.NewMemoryStore(), runs, inventory)
	comps.Extractor = extractor

	res, err := pipeline.NewProcessor(comps, &nopLog).Process(context.TODO(), email)

	require.NoError(t, err)
	assert.Equal(t, "4500123456", res.Order.OrderNumber)
	assert.Len(t, res.Items, 4)
	assert.Equal(t, 4, res.Stats.CacheMisses)
}

func TestUnitProcessWithoutItems(t *testing.T) {
	runs := mocks.NewRuns(t)
	inventory := mocks.NewInventory(t)

	email := modernOpticalEmail()
	email.HTML = "<p>Modern Optical International</p><p>Order Number: 991</p><p>Your order has shipped.</p>"

	runs.On("StartRun", mock.Anything, email.MessageID).Return(&models.Run{ID: 1}, nil).Once()
	runs.On("FinishRun", mock.Anything, mock.MatchedBy(func(run *models.Run) bool {
		return *run.IsSuccess && *run.ParsedItems == 0
	})).Return(nil).Once()

	res, err := pipeline.NewProcessor(components(t, catalogtesting.NewMemoryStore(), runs, inventory), &nopLog).
		Process(context.TODO(), email)

	require.NoError(t, err, "missing content anchor is not a failure")
	assert.Empty(t, res.Items)
	assert.NotEmpty(t, res.Diagnostic)
	assert.Equal(t, "991", res.Order.OrderNumber)
	inventory.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitProcessInfrastructureErrors(t *testing.T) {
	t.Run("already running", func(t *testing.T) {
		runs := mocks.NewRuns(t)
		runs.On("StartRun", mock.Anything, "msg-1").Return(nil, platform.ErrAlreadyRunning).Once()

		proc := pipeline.NewProcessor(components(t, catalogtesting.NewMemoryStore(), runs, mocks.NewInventory(t)), &nopLog)
		_, err := proc.Process(context.TODO(), modernOpticalEmail())

		require.ErrorIs(t, err, platform.ErrAlreadyRunning)
		assert.False(t, pipeline.IsEmailFatal(err))
	})

	t.Run("persist error", func(t *testing.T) {
		runs := mocks.NewRuns(t)
		inventory := mocks.NewInventory(t)
		runs.On("StartRun", mock.Anything, "msg-1").Return(&models.Run{ID: 1}, nil).Once()
		runs.On("FinishRun", mock.Anything, mock.MatchedBy(func(run *models.Run) bool {
			return !*run.IsSuccess && *run.ParsedItems == 5
		})).Return(nil).Once()
		inventory.On("SaveOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, false, assert.AnError).Once()

		proc := pipeline.NewProcessor(components(t, catalogtesting.NewMemoryStore(), runs, inventory), &nopLog)
		_, err := proc.Process(context.TODO(), modernOpticalEmail())

		require.ErrorIs(t, err, assert.AnError)
		assert.False(t, pipeline.IsEmailFatal(err), "storage failure should be retried")
	})

	t.Run("finish error", func(t *testing.T) {
		runs := mocks.NewRuns(t)
		runs.On("StartRun", mock.Anything, "msg").Return(&models.Run{ID: 1}, nil).Once()
		runs.On("FinishRun", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		proc := pipeline.NewProcessor(components(t, catalogtesting.NewMemoryStore(), runs, mocks.NewInventory(t)), &nopLog)
		_, err := proc.Process(context.TODO(), models.Email{MessageID: "msg"})

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorIs(t, err, platform.ErrEmptyBody, "should keep fail reason")
	})
}

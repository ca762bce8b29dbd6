package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/enrichment/scrape"
	"github.com/MichalMitros/frame-order-parser/internal/fetcher"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPage = `<html><body>
<div class="results">
	<article data-product="1">
		<span class="brand">BMEC</span>
		<span class="model">BIG AIR</span>
		<span class="color">Black</span>
		<span class="color-code">01</span>
		<span class="size">54-18-145</span>
		<span class="upc">675254301234</span>
		<span class="price">$1,042.50</span>
		<span class="msrp"></span>
		<span class="material">Titanium</span>
		<span class="stock">In stock</span>
	</article>
	<article data-product="2">
		<span class="brand">BMEC</span>
		<span class="model">BIG AIR</span>
		<span class="size">56□18 145</span>
		<span class="stock">Backordered</span>
	</article>
</div>
</body></html>`

func TestUnitSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	client := scrape.NewClient(fetcher.NewFetcher(srv.Client(), "test"), 0)
	vendor := models.Vendor{Code: "modernoptical", Enrichment: models.Enrichment{BaseURL: srv.URL}}

	variants, err := client.Search(context.Background(), vendor, "BMEC BIG AIR")

	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "BMEC BIG AIR", gotQuery)
	assert.Equal(t, models.DataSourceWebScrape, client.Kind())

	first := variants[0]
	assert.Equal(t, "BIG AIR", first.Model)
	assert.Equal(t, "01", first.ColorCode)
	assert.Equal(t, "54", first.EyeSize)
	assert.Equal(t, "18", first.Bridge)
	assert.Equal(t, "145", first.Temple)
	assert.Equal(t, "675254301234", first.UPC)
	assert.Equal(t, "Titanium", first.Material)
	require.NotNil(t, first.WholesalePrice)
	assert.Equal(t, "1042.5", first.WholesalePrice.String())
	assert.Nil(t, first.MSRP)
	require.NotNil(t, first.InStock)
	assert.True(t, *first.InStock)

	second := variants[1]
	assert.Equal(t, "56", second.EyeSize)
	assert.Equal(t, "18", second.Bridge)
	assert.Empty(t, second.UPC)
	require.NotNil(t, second.InStock)
	assert.False(t, *second.InStock)
}

func TestUnitSearchErrors(t *testing.T) {
	tests := map[string]struct {
		status    int
		wantErr   error
		wantEmpty bool
	}{
		"missing page is empty result": {
			status:    http.StatusNotFound,
			wantEmpty: true,
		},
		"server error": {
			status:  http.StatusBadGateway,
			wantErr: fetcher.ErrStatusNotOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := scrape.NewClient(fetcher.NewFetcher(srv.Client(), "test"), 0)
			variants, err := client.Search(context.Background(), models.Vendor{Enrichment: models.Enrichment{BaseURL: srv.URL}}, "X")

			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantEmpty {
				assert.Empty(t, variants)
			}
		})
	}

	_, err := scrape.NewClient(nil, 0).Search(context.Background(), models.Vendor{Code: "marchon"}, "X")
	assert.ErrorIs(t, err, scrape.ErrNoBaseURL)
}

func TestUnitSearchRetriesUnavailableCatalog(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	f := fetcher.NewFetcher(srv.Client(), "test", fetcher.WithRetry(2, time.Millisecond, time.Millisecond))
	variants, err := scrape.NewClient(f, 0).Search(context.Background(), models.Vendor{Enrichment: models.Enrichment{BaseURL: srv.URL}}, "BIG AIR")

	require.NoError(t, err)
	assert.Len(t, variants, 2, "should read page after retry")
	assert.Equal(t, int32(2), calls.Load())
}

func TestUnitSearchGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := fetcher.NewFetcher(srv.Client(), "test", fetcher.WithRetry(2, time.Millisecond, time.Millisecond))
	_, err := scrape.NewClient(f, 0).Search(context.Background(), models.Vendor{Enrichment: models.Enrichment{BaseURL: srv.URL}}, "BIG AIR")

	assert.ErrorIs(t, err, fetcher.ErrStatusNotOK)
	assert.Equal(t, int32(3), calls.Load(), "should try once and retry twice")
}

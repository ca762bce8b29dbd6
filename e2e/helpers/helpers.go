package helpers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/detector"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
)

// CatalogCard is single product card served by mocked vendor catalog.
type CatalogCard struct {
	Brand     string
	Model     string
	Color     string
	ColorCode string
	Size      string
	UPC       string
	Price     string
	Material  string
	Stock     string
}

// PrepareCatalogServer mocks vendor catalog search page. Search returns cards which model is contained in query.
func PrepareCatalogServer(t *testing.T, cards ...CatalogCard) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/search" {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}

		query := strings.ToUpper(req.URL.Query().Get("q"))
		matching := lo.Filter(cards, func(c CatalogCard, _ int) bool {
			return strings.Contains(query, strings.ToUpper(c.Model))
		})

		wrt.Header().Add(contentType, "text/html; charset=utf-8")
		wrt.WriteHeader(http.StatusOK)
		_, _ = wrt.Write([]byte(searchPage(matching)))
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv
}

func searchPage(cards []CatalogCard) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="results">`)
	for ix, c := range cards {
		b.WriteString(`<article data-product="` + strconv.Itoa(ix+1) + `">`)
		span(&b, "brand", c.Brand)
		span(&b, "model", c.Model)
		span(&b, "color", c.Color)
		span(&b, "color-code", c.ColorCode)
		span(&b, "size", c.Size)
		span(&b, "upc", c.UPC)
		span(&b, "price", c.Price)
		span(&b, "material", c.Material)
		span(&b, "stock", c.Stock)
		b.WriteString(`</article>`)
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func span(b *strings.Builder, class, value string) {
	b.WriteString(`<span class="` + class + `">` + value + `</span>`)
}

// RegistryWithCatalog returns default vendor registry with catalog of vendor code pointed to baseURL.
func RegistryWithCatalog(t *testing.T, code, baseURL string) *detector.Registry {
	t.Helper()

	def, err := detector.DefaultRegistry()
	require.NoError(t, err, "can't load default registry")

	vendors := lo.Map(def.Active(), func(v models.Vendor, _ int) models.Vendor {
		if v.Code == code {
			v.Enrichment.BaseURL = baseURL
		}
		return v
	})

	registry, err := detector.NewRegistry(vendors...)
	require.NoError(t, err, "can't build registry")

	return registry
}

// WaitForMessage is blocking helper function, returns body of next delivery or fails after timeout.
func WaitForMessage(t *testing.T, deliveries <-chan amqp.Delivery, timeout time.Duration) []byte {
	t.Helper()

	select {
	case d, ok := <-deliveries:
		if !ok {
			require.FailNow(t, "deliveries channel closed")
		}
		return d.Body
	case <-time.After(timeout):
		require.FailNow(t, "no message received", "waited %s", timeout)
	}
	return nil
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue bound to routing keys and deleting it after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange string, routingKeys ...string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	for _, key := range routingKeys {
		if err := channel.QueueBind(queueName, key, exchange, false, nil); err != nil {
			require.FailNow(t, "can't bind queue", queueName, key, err)
		}
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, false)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

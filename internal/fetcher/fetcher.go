package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Fetcher fetches vendor catalog pages via http.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string, ops ...Option) *Fetcher {
	f := &Fetcher{
		client:    client,
		userAgent: userAgent,
	}

	for _, op := range ops {
		op(f)
	}

	return f
}

// WithRetry retries connection errors and retryable statuses up to retryMax times with exponential backoff.
// Status of last response is reported as usual when retries are exhausted.
func WithRetry(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(f *Fetcher) {
		rc := retryablehttp.NewClient()
		rc.HTTPClient = f.client
		rc.RetryMax = retryMax
		rc.RetryWaitMin = waitMin
		rc.RetryWaitMax = waitMax
		rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
		rc.Logger = nil

		f.client = rc.StandardClient()
	}
}

// FetchPage returns html page fetched from provided url, decompressed and decoded to UTF-8.
// The caller is responsible for closing returned ReadCloser.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (io.ReadCloser, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	body, err := pageBody(resp)
	if err != nil {
		_ = resp.Body.Close()
		return nil, err
	}

	return page{Reader: body, Closer: resp.Body}, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	_ = resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPageNotFound
	}
	return nil, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
}

// pageBody unwraps response body according to its content type and encoding.
func pageBody(resp *http.Response) (io.Reader, error) {
	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentTypeNotSupported, err)
	}

	var compressed bool
	switch mediaType {
	case "text/html", "application/xhtml+xml":
		compressed = resp.Header.Get("Content-Encoding") == "gzip"
	case "application/gzip", "application/x-gzip":
		compressed = true
	default:
		return nil, fmt.Errorf("%w: %s", ErrContentTypeNotSupported, mediaType)
	}

	var body io.Reader = resp.Body
	if compressed {
		if body, err = gzip.NewReader(resp.Body); err != nil {
			return nil, fmt.Errorf("can't decompress response: %w", err)
		}
	}

	charset := params["charset"]
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		return body, nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCharsetNotSupported, charset)
	}
	return transform.NewReader(body, enc.NewDecoder()), nil
}

// page reads decoded body, but closes raw response body.
type page struct {
	io.Reader
	io.Closer
}

package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned for responses other than 200 OK and 404 Not Found.
	ErrStatusNotOK = errors.New("unexpected response status")
	// ErrPageNotFound is returned when vendor page does not exist.
	ErrPageNotFound = errors.New("page not found")
	// ErrContentTypeNotSupported is returned when response is neither html nor gzip.
	ErrContentTypeNotSupported = errors.New("response content type not supported")
	// ErrCharsetNotSupported is returned when html page declares unknown charset.
	ErrCharsetNotSupported = errors.New("page charset not supported")
)

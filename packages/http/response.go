package http

import (
	"net/http"
	"slices"
	"time"

	"github.com/abdul-hamid-achik/hitcurl/packages/core/config"
)

type Response struct {
	StatusCode int
	Status     string
	Headers    config.Headers
	Body       []byte
	Duration   time.Duration
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// headersFromHTTP flattens h into a multimap. net/http does not keep the
// order names arrived in, so names are sorted; values keep their order.
func headersFromHTTP(h http.Header) config.Headers {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	var headers config.Headers
	for _, name := range names {
		for _, value := range h[name] {
			headers = append(headers, config.Header{Name: name, Value: value})
		}
	}
	return headers
}

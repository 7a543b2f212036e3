package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	neturl "net/url"

	"github.com/abdul-hamid-achik/hitcurl/packages/core/config"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Request is a fully specified outbound request
type Request struct {
	Method  string
	URL     string
	Headers config.Headers
	Body    []byte
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method: method,
		URL:    requestURL,
	}
}

func (r *Request) AddHeader(key, value string) *Request {
	r.Headers = append(r.Headers, config.Header{Name: key, Value: value})
	return r
}

// SetDefaultHeader adds the header only if none of that name is present
func (r *Request) SetDefaultHeader(key, value string) *Request {
	if !r.Headers.Has(key) {
		r.AddHeader(key, value)
	}
	return r
}

func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// BuildRequest combines a validated target with the request configuration.
// A JSON body wins over form data; form data is only sent with POST.
func BuildRequest(target *neturl.URL, cfg config.RequestConfig) (*Request, error) {
	if !cfg.Method.Supported() {
		return nil, &config.UnsupportedMethodError{Method: cfg.Method}
	}

	r := NewRequest(string(cfg.Method), target.String())
	for _, h := range cfg.Headers {
		r.AddHeader(h.Name, h.Value)
	}

	switch {
	case cfg.JSONBody != nil:
		body, err := CompactJSON(*cfg.JSONBody)
		if err != nil {
			return nil, &JSONBodyError{Err: err}
		}
		r.SetDefaultHeader("Content-Type", ContentTypeJSON)
		r.SetBody(body)
	case cfg.FormData != nil:
		r.SetDefaultHeader("Content-Type", ContentTypeForm)
		if cfg.Method == config.MethodPost {
			r.SetBody([]byte(*cfg.FormData))
		}
	}

	return r, nil
}

// CompactJSON validates text and strips insignificant whitespace
func CompactJSON(text string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("%w (offset %d)", err, syntaxErr.Offset)
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

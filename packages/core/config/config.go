package config

import (
	"fmt"
	"slices"
	"strings"
)

// Method is an HTTP verb supported by hitcurl
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
	MethodHead Method = "HEAD"
)

// ParseMethod normalizes a user supplied verb to upper case
func ParseMethod(s string) Method {
	return Method(strings.ToUpper(strings.TrimSpace(s)))
}

// Supported reports whether m is one of GET, POST or HEAD
func (m Method) Supported() bool {
	switch m {
	case MethodGet, MethodPost, MethodHead:
		return true
	}
	return false
}

// UnsupportedMethodError is returned when a verb other than GET, POST or HEAD
// is requested.
type UnsupportedMethodError struct {
	Method Method
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("Unsupported method: %s (expected GET, POST or HEAD).", e.Method)
}

type Header struct {
	Name  string
	Value string
}

// Headers is an ordered multimap. Repeated names are kept in insertion order.
type Headers []Header

// Has reports whether a header with the given name is present, ignoring case
func (h Headers) Has(name string) bool {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return true
		}
	}
	return false
}

// Values returns every value stored under name, ignoring case
func (h Headers) Values(name string) []string {
	var values []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			values = append(values, hdr.Value)
		}
	}
	return values
}

// RequestConfig is everything the command line says about the request to make
// and how to render its response.
type RequestConfig struct {
	URL             string
	Method          Method
	FormData        *string
	JSONBody        *string
	Headers         Headers
	HeadOnly        bool
	FollowRedirects bool
	Silent          bool
	OutFile         string
}

// NewRequestConfig returns the configuration used before any option is applied
func NewRequestConfig() RequestConfig {
	return RequestConfig{Method: MethodGet}
}

func (c RequestConfig) WithURL(url string) RequestConfig {
	c.URL = url
	return c
}

func (c RequestConfig) WithMethod(m Method) RequestConfig {
	c.Method = m
	return c
}

func (c RequestConfig) WithFormData(data string) RequestConfig {
	c.FormData = &data
	return c
}

// WithJSONBody attaches a JSON body and switches the method to POST
func (c RequestConfig) WithJSONBody(text string) RequestConfig {
	c.JSONBody = &text
	c.Method = MethodPost
	return c
}

// WithHeader appends a header. The receiver's header slice is never shared
// with the result.
func (c RequestConfig) WithHeader(name, value string) RequestConfig {
	c.Headers = append(slices.Clip(c.Headers), Header{Name: name, Value: value})
	return c
}

// WithHeadOnly switches to header-only rendering and forces HEAD
func (c RequestConfig) WithHeadOnly() RequestConfig {
	c.HeadOnly = true
	c.Method = MethodHead
	return c
}

func (c RequestConfig) WithFollowRedirects() RequestConfig {
	c.FollowRedirects = true
	return c
}

func (c RequestConfig) WithSilent() RequestConfig {
	c.Silent = true
	return c
}

func (c RequestConfig) WithOutFile(path string) RequestConfig {
	c.OutFile = path
	return c
}

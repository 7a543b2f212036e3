// Package http provides the HTTP side of hitcurl.
//
// It wraps the standard library's http package with:
//   - Request building from a config.RequestConfig
//   - Canonical compact JSON request bodies
//   - A bounded or disabled redirect policy
//   - Response collection with an ordered header multimap
//   - A single error kind for every connection failure
package http

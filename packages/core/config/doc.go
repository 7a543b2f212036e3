// Package config holds the request configuration produced from the command
// line and the transport defaults hitcurl runs with.
//
// It provides:
//   - RequestConfig, an immutable value updated through With* methods
//   - Headers, an ordered multimap of request or response headers
//   - Default transport settings (timeout, redirect cap, user agent)
package config

// Package output renders hitcurl's narration, responses and errors.
//
// A response is rendered in exactly one of three modes:
//   - Head-only: response headers, whatever the status
//   - Failure: a non-2xx status becomes a *StatusError
//   - Body: written to a file, or printed as sorted-key JSON or raw text
package output

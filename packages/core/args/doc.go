// Package args turns hitcurl's command-line tokens into a config.RequestConfig.
//
// Tokens are folded left to right: each option moves an immutable
// RequestConfig to its next state, so the last directive that touches a
// field wins. The first bare token is the URL and later bare tokens are
// ignored. A value-taking option given as the last token is ignored.
package args

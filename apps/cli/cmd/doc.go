// Package cmd implements the hitcurl CLI using Cobra.
//
// The root command takes a URL and curl-style options, sends one request
// and renders the response. Option parsing is left to package args so that
// options are applied strictly left to right; cobra only provides the
// command shell and the version subcommand.
//
// Every failure is returned up to run, which prints one message and maps the
// error to an exit code.
package cmd

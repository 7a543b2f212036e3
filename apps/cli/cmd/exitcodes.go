package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/hitcurl/packages/core/args"
	"github.com/abdul-hamid-achik/hitcurl/packages/core/config"
	"github.com/abdul-hamid-achik/hitcurl/packages/core/urlcheck"
	"github.com/abdul-hamid-achik/hitcurl/packages/http"
	"github.com/abdul-hamid-achik/hitcurl/packages/output"
)

// Exit codes for hitcurl CLI
const (
	// ExitSuccess indicates the response was rendered, or usage was shown
	ExitSuccess = 0

	// ExitHTTPFailure indicates a non-2xx response
	ExitHTTPFailure = 1

	// ExitConfigError indicates a bad URL, method or JSON body
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitOutputError indicates the response body could not be written to a file
	ExitOutputError = 5

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

func exitCode(err error) int {
	var (
		unknownFlag   *args.UnknownFlagError
		headerSyntax  *args.HeaderSyntaxError
		invalidHeader *args.InvalidHeaderError
		urlErr        *urlcheck.Error
		methodErr     *config.UnsupportedMethodError
		jsonErr       *http.JSONBodyError
		connectErr    *http.ConnectError
		statusErr     *output.StatusError
		fileErr       *output.OutputFileError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &unknownFlag), errors.As(err, &headerSyntax), errors.As(err, &invalidHeader):
		return ExitUsageError
	case errors.As(err, &urlErr), errors.As(err, &methodErr), errors.As(err, &jsonErr):
		return ExitConfigError
	case errors.As(err, &connectErr):
		return ExitNetworkError
	case errors.As(err, &statusErr):
		return ExitHTTPFailure
	case errors.As(err, &fileErr):
		return ExitOutputError
	default:
		return ExitUsageError
	}
}

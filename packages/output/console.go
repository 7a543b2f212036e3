package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/hitcurl/packages/core/config"
	"github.com/abdul-hamid-achik/hitcurl/packages/http"
	"github.com/fatih/color"
)

// BinaryPlaceholder stands in for header values that are not printable ASCII
const BinaryPlaceholder = "<binary>"

type ConsoleFormatter struct {
	writer io.Writer
	silent bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithSilent suppresses narration. Payloads and errors are still written.
func WithSilent(s bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.silent = s
	}
}

func (f *ConsoleFormatter) narrate(label, value string) {
	if f.silent {
		return
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	if value == "" {
		fmt.Fprintf(f.writer, "%s\n", cyan(label))
		return
	}
	fmt.Fprintf(f.writer, "%s %s\n", cyan(label), value)
}

func (f *ConsoleFormatter) FormatRequest(cfg config.RequestConfig) {
	f.narrate("Requesting URL:", cfg.URL)
	f.narrate("Method:", string(cfg.Method))
	if cfg.FormData != nil && *cfg.FormData != "" {
		f.narrate("Data:", *cfg.FormData)
	}
	if cfg.JSONBody != nil {
		f.narrate("JSON:", *cfg.JSONBody)
	}
}

// FormatResponse renders resp according to cfg. Head-only mode is checked
// before the status, so headers are shown even for failures.
func (f *ConsoleFormatter) FormatResponse(resp *http.Response, cfg config.RequestConfig) error {
	if cfg.HeadOnly {
		f.formatHeaders(resp.Headers)
		return nil
	}

	if !resp.IsSuccess() {
		return &StatusError{Code: resp.StatusCode}
	}

	if cfg.OutFile != "" {
		if err := writeBodyFile(cfg.OutFile, resp.Body); err != nil {
			return err
		}
		f.narrate("Response body saved to:", cfg.OutFile)
		return nil
	}

	if rendered, ok := RenderJSON(resp.Body); ok {
		f.narrate("Response body (JSON with sorted keys):", "")
		fmt.Fprint(f.writer, rendered)
		return nil
	}

	f.narrate("Response body:", "")
	fmt.Fprintln(f.writer, resp.BodyString())
	return nil
}

// formatHeaders prints headers in the order given. Responses arrive with
// names sorted, since net/http does not keep the order they were received in.
func (f *ConsoleFormatter) formatHeaders(headers config.Headers) {
	for _, h := range headers {
		value := h.Value
		if !printable(value) {
			value = BinaryPlaceholder
		}
		fmt.Fprintf(f.writer, "%s: %s\n", h.Name, value)
	}
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\t' && (c < 0x20 || c > 0x7e) {
			return false
		}
	}
	return true
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

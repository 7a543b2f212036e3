package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/hitcurl/packages/core/args"
	"github.com/abdul-hamid-achik/hitcurl/packages/core/config"
	"github.com/abdul-hamid-achik/hitcurl/packages/core/urlcheck"
	"github.com/abdul-hamid-achik/hitcurl/packages/http"
	"github.com/abdul-hamid-achik/hitcurl/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hitcurl <URL> [options]",
	Short: "Send one HTTP request and print the response.",
	Long: `hitcurl sends a single HTTP request and renders the response:
headers only, the raw body, or JSON with its top-level keys sorted.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               requestCommand,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if code := run(os.Args[1:], os.Stdout, os.Stderr); code != ExitSuccess {
		os.Exit(code)
	}
}

// run executes the command line and reports the exit code. It is the only
// place errors are printed.
func run(argv []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(argv)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	output.NewConsoleFormatter(output.WithWriter(stderr)).FormatError(err)
	return exitCode(err)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func requestCommand(cmd *cobra.Command, argv []string) error {
	cfg, err := args.Parse(argv)
	if errors.Is(err, args.ErrUsage) {
		fmt.Fprint(cmd.OutOrStdout(), args.Usage("hitcurl"))
		return nil
	}
	if err != nil {
		return err
	}

	console := output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithSilent(cfg.Silent),
	)
	console.FormatRequest(cfg)

	target, err := urlcheck.Validate(cfg.URL)
	if err != nil {
		return err
	}

	req, err := http.BuildRequest(target, cfg)
	if err != nil {
		return err
	}

	settings := config.DefaultConfig(version)
	client := http.NewClient(
		http.WithTimeout(settings.Timeout),
		http.WithFollowRedirects(cfg.FollowRedirects),
		http.WithMaxRedirects(settings.MaxRedirects),
		http.WithDefaultHeader("User-Agent", settings.UserAgent),
	)

	resp, err := client.Do(cmd.Context(), req)
	if err != nil {
		return err
	}

	return console.FormatResponse(resp, cfg)
}

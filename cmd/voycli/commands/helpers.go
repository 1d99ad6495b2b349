package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/voycli/voycli/internal/client"
	"github.com/voycli/voycli/internal/config"
	"github.com/voycli/voycli/pkg/voyager"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrCookiePairRequired  = errors.New("both li_at and JSESSIONID are required")
	ErrMessageTextRequired = errors.New("message text is required")
	ErrRecipientRequired   = errors.New("either --conversation or a profile URN is required")
	ErrKeywordsRequired    = errors.New("search keywords are required")
)

// newClient builds the domain client from flags and configuration. Flag
// cookies win; the --account flag (or VOYCLI_ACCOUNT) selects a named
// account for resolution.
func newClient() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if viper.GetBool("verbose") {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	return client.New(client.Options{
		Cookies: voyager.CookieSet{
			LiAt:       viper.GetString("cookie_li_at"),
			JSessionID: viper.GetString("cookie_jsessionid"),
		},
		Account: viper.GetString("account"),
		Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		Delay:   time.Duration(cfg.DelayMS) * time.Millisecond,
		Logger:  logger,
	})
}

// render writes value as JSON or YAML when requested, otherwise runs the
// table renderer.
func render(value any, table func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding JSON output: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		defer func() { _ = encoder.Close() }()

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding YAML output: %w", err)
		}

		return nil
	default:
		return table()
	}
}

// pageFlags wires --start/--count onto a command and returns the bound
// options.
func pageFlags(flags *pflag.FlagSet) *voyager.PageOptions {
	opts := &voyager.PageOptions{}
	flags.IntVar(&opts.Start, "start", 0, "pagination offset")
	flags.IntVar(&opts.Count, "count", 0, "page size (default 10, max 100)")

	return opts
}

// formatEpochMillis renders an upstream millisecond timestamp, or a dash
// when absent.
func formatEpochMillis(millis int64) string {
	if millis == 0 {
		return "-"
	}

	return time.UnixMilli(millis).Format("2006-01-02 15:04")
}

// truncate shortens long free-text cells for table output. Rune-safe:
// upstream text is routinely non-ASCII.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	return string(runes[:max-1]) + "…"
}

// pagingFooter prints the next-page hint under a table when more results
// exist.
func pagingFooter(paging *voyager.PagingInfo) {
	if paging == nil || !paging.HasNextPage() {
		return
	}

	fmt.Printf("\nMore results available: --start %d\n", paging.NextPageStart())
}

// Package auth resolves session credentials from a layered set of sources
// and builds the request headers derived from them.
package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/voycli/voycli/internal/config"
	"github.com/voycli/voycli/pkg/voyager"
)

// Environment variables checked at the second resolution tier. Both must be
// set for the tier to apply.
const (
	EnvLiAt       = "VOYCLI_LI_AT"
	EnvJSessionID = "VOYCLI_JSESSIONID"
)

// DefaultBrowserOrder is the fallback order for cookie extraction when no
// specific source is requested.
var DefaultBrowserOrder = []string{"firefox", "chrome", "chromium", "edge"}

// Extractor pulls a session cookie pair out of a browser's cookie store.
// Implementations live outside this package; failure modes are opaque and
// always catchable.
type Extractor func(source string) (voyager.CookieSet, error)

// Options narrows credential resolution. All fields are optional.
type Options struct {
	// Cookies is an explicitly supplied pair; it wins over every other
	// source when both fields are non-empty.
	Cookies voyager.CookieSet
	// Account selects a named account from configuration. When set and the
	// account does not exist, resolution fails immediately.
	Account string
	// Source requests a specific browser for cookie extraction instead of
	// the default fallback order.
	Source string
}

// Resolver walks the credential sources in priority order. Its
// collaborators are injected so resolution stays a pure function of its
// inputs plus ambient config and environment.
type Resolver struct {
	LoadConfig func() (*config.Config, error)
	Extract    Extractor
	LookupEnv  func(string) (string, bool)
}

// NewResolver builds a Resolver with the process-default collaborators.
func NewResolver(extract Extractor) *Resolver {
	return &Resolver{
		LoadConfig: config.Load,
		Extract:    extract,
		LookupEnv:  os.LookupEnv,
	}
}

// Resolve produces a validated cookie pair, trying in order: the explicit
// pair, the environment, a named account, legacy flat config credentials,
// and finally browser extraction. A pair with one empty field is treated as
// absent at every tier. It fails with an AuthenticationError when no source
// yields a complete pair.
func (r *Resolver) Resolve(opts Options) (voyager.CookieSet, error) {
	if opts.Cookies.Complete() {
		return opts.Cookies, nil
	}

	if cookies, ok := r.fromEnv(); ok {
		return cookies, nil
	}

	cfg, err := r.LoadConfig()
	if err != nil {
		return voyager.CookieSet{}, fmt.Errorf("loading configuration: %w", err)
	}

	cookies, done, err := r.fromAccount(cfg, opts.Account)
	if err != nil || done {
		return cookies, err
	}

	if cfg.LiAt != "" && cfg.JSessionID != "" {
		return voyager.CookieSet{LiAt: cfg.LiAt, JSessionID: cfg.JSessionID}, nil
	}

	source := opts.Source
	if source == "" {
		source = cfg.CookieSource
	}

	return r.fromBrowser(source)
}

func (r *Resolver) fromEnv() (voyager.CookieSet, bool) {
	liAt, _ := r.LookupEnv(EnvLiAt)
	jsession, _ := r.LookupEnv(EnvJSessionID)

	cookies := voyager.CookieSet{LiAt: liAt, JSessionID: jsession}

	return cookies, cookies.Complete()
}

// fromAccount resolves the named-account tier. The account name comes from
// the explicit option, falling back to the config-declared default. A name
// that does not match any configured account is a hard failure listing the
// available names, not a fall-through.
func (r *Resolver) fromAccount(cfg *config.Config, name string) (voyager.CookieSet, bool, error) {
	if name == "" {
		name = cfg.DefaultAccount
	}

	if name == "" {
		return voyager.CookieSet{}, false, nil
	}

	account, ok := cfg.Accounts[name]
	if !ok {
		available := strings.Join(cfg.AccountNames(), ", ")
		if available == "" {
			available = "none"
		}

		return voyager.CookieSet{}, false, &voyager.AuthenticationError{
			Message: fmt.Sprintf("account %q not found (available: %s)", name, available),
		}
	}

	cookies := voyager.CookieSet{LiAt: account.LiAt, JSessionID: account.JSessionID}
	if cookies.Complete() {
		return cookies, true, nil
	}

	if account.CookieSource != "" && r.Extract != nil {
		extracted, err := r.Extract(account.CookieSource)
		if err == nil && extracted.Complete() {
			return extracted, true, nil
		}
	}

	return voyager.CookieSet{}, false, nil
}

// fromBrowser is the last tier: extract from the requested browser, or try
// each browser in the default order. The extractor's failure is preserved
// inside the resulting AuthenticationError rather than swallowed.
func (r *Resolver) fromBrowser(source string) (voyager.CookieSet, error) {
	if r.Extract == nil {
		return voyager.CookieSet{}, &voyager.AuthenticationError{
			Message: "no credentials found in flags, environment, or configuration",
		}
	}

	sources := DefaultBrowserOrder
	if source != "" {
		sources = []string{source}
	}

	var lastErr error

	for _, browser := range sources {
		cookies, err := r.Extract(browser)
		if err != nil {
			lastErr = err

			continue
		}

		if cookies.Complete() {
			return cookies, nil
		}

		lastErr = &voyager.CookieExtractionError{Source: browser}
	}

	if lastErr != nil {
		return voyager.CookieSet{}, &voyager.AuthenticationError{
			Message: lastErr.Error(),
		}
	}

	return voyager.CookieSet{}, &voyager.AuthenticationError{
		Message: "no credentials found in flags, environment, configuration, or browsers",
	}
}

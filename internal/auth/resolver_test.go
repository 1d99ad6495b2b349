package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voycli/voycli/internal/auth"
	"github.com/voycli/voycli/internal/config"
	"github.com/voycli/voycli/pkg/voyager"
)

func newResolver(cfg *config.Config, env map[string]string, extract auth.Extractor) *auth.Resolver {
	return &auth.Resolver{
		LoadConfig: func() (*config.Config, error) {
			if cfg == nil {
				return &config.Config{}, nil
			}

			return cfg, nil
		},
		Extract: extract,
		LookupEnv: func(key string) (string, bool) {
			value, ok := env[key]

			return value, ok
		},
	}
}

func TestResolve_ExplicitPairWins(t *testing.T) {
	t.Parallel()

	resolver := newResolver(
		&config.Config{LiAt: "config-token", JSessionID: "config-session"},
		map[string]string{auth.EnvLiAt: "env-token", auth.EnvJSessionID: "env-session"},
		nil,
	)

	cookies, err := resolver.Resolve(auth.Options{
		Cookies: voyager.CookieSet{LiAt: "explicit-token", JSessionID: "explicit-session"},
	})

	require.NoError(t, err)
	assert.Equal(t, "explicit-token", cookies.LiAt)
}

func TestResolve_PartialExplicitPairFallsThrough(t *testing.T) {
	t.Parallel()

	resolver := newResolver(nil,
		map[string]string{auth.EnvLiAt: "env-token", auth.EnvJSessionID: "env-session"},
		nil,
	)

	cookies, err := resolver.Resolve(auth.Options{
		Cookies: voyager.CookieSet{LiAt: "explicit-token"},
	})

	require.NoError(t, err)
	assert.Equal(t, "env-token", cookies.LiAt)
	assert.Equal(t, "env-session", cookies.JSessionID)
}

func TestResolve_PartialEnvPairFallsThrough(t *testing.T) {
	t.Parallel()

	resolver := newResolver(
		&config.Config{LiAt: "config-token", JSessionID: "config-session"},
		map[string]string{auth.EnvLiAt: "env-token"},
		nil,
	)

	cookies, err := resolver.Resolve(auth.Options{})

	require.NoError(t, err)
	assert.Equal(t, "config-token", cookies.LiAt)
}

func TestResolve_NamedAccount(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Accounts: map[string]config.Account{
			"work": {LiAt: "work-token", JSessionID: "work-session"},
		},
	}

	cookies, err := newResolver(cfg, nil, nil).Resolve(auth.Options{Account: "work"})

	require.NoError(t, err)
	assert.Equal(t, "work-token", cookies.LiAt)
}

func TestResolve_UnknownAccountFailsFast(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		// Legacy credentials present: an unknown account name must NOT fall
		// through to them.
		LiAt:       "config-token",
		JSessionID: "config-session",
		Accounts: map[string]config.Account{
			"work":     {LiAt: "a", JSessionID: "b"},
			"personal": {LiAt: "c", JSessionID: "d"},
		},
	}

	_, err := newResolver(cfg, nil, nil).Resolve(auth.Options{Account: "missing"})

	require.Error(t, err)
	assert.True(t, voyager.IsAuthentication(err))
	assert.Contains(t, err.Error(), "personal, work")
}

func TestResolve_DefaultAccountUsed(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		DefaultAccount: "work",
		Accounts: map[string]config.Account{
			"work": {LiAt: "work-token", JSessionID: "work-session"},
		},
	}

	cookies, err := newResolver(cfg, nil, nil).Resolve(auth.Options{})

	require.NoError(t, err)
	assert.Equal(t, "work-token", cookies.LiAt)
}

func TestResolve_AccountBrowserSource(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Accounts: map[string]config.Account{
			"work": {CookieSource: "firefox"},
		},
	}

	extract := func(source string) (voyager.CookieSet, error) {
		assert.Equal(t, "firefox", source)

		return voyager.CookieSet{LiAt: "browser-token", JSessionID: "browser-session"}, nil
	}

	cookies, err := newResolver(cfg, nil, extract).Resolve(auth.Options{Account: "work"})

	require.NoError(t, err)
	assert.Equal(t, "browser-token", cookies.LiAt)
}

func TestResolve_LegacyConfigPair(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{LiAt: "legacy-token", JSessionID: "legacy-session"}

	cookies, err := newResolver(cfg, nil, nil).Resolve(auth.Options{})

	require.NoError(t, err)
	assert.Equal(t, "legacy-token", cookies.LiAt)
}

func TestResolve_BrowserFallbackOrder(t *testing.T) {
	t.Parallel()

	var tried []string

	extract := func(source string) (voyager.CookieSet, error) {
		tried = append(tried, source)
		if source == "chromium" {
			return voyager.CookieSet{LiAt: "t", JSessionID: "s"}, nil
		}

		return voyager.CookieSet{}, &voyager.CookieExtractionError{Source: source, Cause: errors.New("no store")}
	}

	cookies, err := newResolver(nil, nil, extract).Resolve(auth.Options{})

	require.NoError(t, err)
	assert.Equal(t, "t", cookies.LiAt)
	assert.Equal(t, []string{"firefox", "chrome", "chromium"}, tried)
}

func TestResolve_ExtractionFailurePreserved(t *testing.T) {
	t.Parallel()

	extract := func(source string) (voyager.CookieSet, error) {
		return voyager.CookieSet{}, &voyager.CookieExtractionError{
			Source: source,
			Cause:  errors.New("database is locked"),
		}
	}

	_, err := newResolver(nil, nil, extract).Resolve(auth.Options{Source: "firefox"})

	require.Error(t, err)
	assert.True(t, voyager.IsAuthentication(err))
	assert.Contains(t, err.Error(), "database is locked")
}

func TestResolve_NoSourcesFails(t *testing.T) {
	t.Parallel()

	_, err := newResolver(nil, nil, nil).Resolve(auth.Options{})

	require.Error(t, err)
	assert.True(t, voyager.IsAuthentication(err))
}

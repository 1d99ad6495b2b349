package browser

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voycli/voycli/pkg/voyager"
)

func writeCookieStore(t *testing.T, cookies map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cookies.sqlite")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE moz_cookies (name TEXT, value TEXT, host TEXT)`)
	require.NoError(t, err)

	for name, value := range cookies {
		_, err = db.Exec(
			`INSERT INTO moz_cookies (name, value, host) VALUES (?, ?, ?)`,
			name, value, ".www.linkedin.com",
		)
		require.NoError(t, err)
	}

	// An unrelated host must never leak into the result.
	_, err = db.Exec(
		`INSERT INTO moz_cookies (name, value, host) VALUES (?, ?, ?)`,
		"li_at", "wrong-site", ".example.com",
	)
	require.NoError(t, err)

	return path
}

func TestReadFirefoxCookies(t *testing.T) {
	path := writeCookieStore(t, map[string]string{
		"li_at":      "AQEDmock",
		"JSESSIONID": `"ajax:123456"`,
		"bcookie":    "v=2&abc",
	})

	cookies, err := readFirefoxCookies(path)
	require.NoError(t, err)

	assert.Equal(t, "AQEDmock", cookies.LiAt)
	assert.Equal(t, `"ajax:123456"`, cookies.JSessionID)
	assert.Equal(t, "v=2&abc", cookies.BCookie)
	assert.Empty(t, cookies.LiMc)
	assert.True(t, cookies.Complete())
}

func TestReadFirefoxCookies_IncompletePair(t *testing.T) {
	path := writeCookieStore(t, map[string]string{"li_at": "AQEDmock"})

	cookies, err := readFirefoxCookies(path)
	require.NoError(t, err)
	assert.False(t, cookies.Complete())
}

func TestExtract_ChromiumRejected(t *testing.T) {
	for _, source := range []string{"chrome", "chromium", "edge", "brave"} {
		_, err := Extract(source)
		require.Error(t, err)

		var extractionErr *voyager.CookieExtractionError
		require.ErrorAs(t, err, &extractionErr)
		assert.Equal(t, source, extractionErr.Source)
		assert.Contains(t, err.Error(), "encrypted")
	}
}

func TestExtract_UnknownBrowser(t *testing.T) {
	_, err := Extract("netscape")
	require.Error(t, err)

	var extractionErr *voyager.CookieExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, err.Error(), "unknown browser")
}

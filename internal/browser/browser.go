// Package browser extracts session cookies from local browser cookie stores.
// Only Firefox-family stores are readable: Chromium encrypts cookie values
// with an OS-keychain key, which this package does not attempt to unlock.
package browser

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/voycli/voycli/pkg/voyager"
)

const cookieHost = "linkedin.com"

// Extract pulls the session cookie pair from the named browser's cookie
// store. Supported sources: firefox. Chromium-family browsers (chrome,
// chromium, edge, brave) are recognized but rejected with a descriptive
// error because their stores are encrypted.
func Extract(source string) (voyager.CookieSet, error) {
	switch source {
	case "firefox":
		return extractFirefox()
	case "chrome", "chromium", "edge", "brave":
		return voyager.CookieSet{}, &voyager.CookieExtractionError{
			Source: source,
			Cause:  fmt.Errorf("cookie store is encrypted with an OS keychain key; export cookies manually or use firefox"),
		}
	default:
		return voyager.CookieSet{}, &voyager.CookieExtractionError{
			Source: source,
			Cause:  fmt.Errorf("unknown browser"),
		}
	}
}

func extractFirefox() (voyager.CookieSet, error) {
	dbPath, err := firefoxCookieDB()
	if err != nil {
		return voyager.CookieSet{}, &voyager.CookieExtractionError{Source: "firefox", Cause: err}
	}

	cookies, err := readFirefoxCookies(dbPath)
	if err != nil {
		return voyager.CookieSet{}, &voyager.CookieExtractionError{Source: "firefox", Cause: err}
	}

	if !cookies.Complete() {
		return voyager.CookieSet{}, &voyager.CookieExtractionError{Source: "firefox"}
	}

	return cookies, nil
}

// firefoxCookieDB finds the most recently used profile's cookies.sqlite,
// checking the regular, snap, and macOS profile roots.
func firefoxCookieDB() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}

	roots := []string{
		filepath.Join(home, ".mozilla", "firefox"),
		filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox"),
		filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"),
	}

	var (
		newest     string
		newestTime int64
	)

	for _, root := range roots {
		matches, _ := filepath.Glob(filepath.Join(root, "*", "cookies.sqlite"))
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}

			if modified := info.ModTime().UnixNano(); newest == "" || modified > newestTime {
				newest = match
				newestTime = modified
			}
		}
	}

	if newest == "" {
		return "", fmt.Errorf("no firefox profile with a cookie store found")
	}

	return newest, nil
}

// readFirefoxCookies queries the store for the session cookies. The database
// is copied to a temp file first: Firefox holds an exclusive lock on the
// original while running.
func readFirefoxCookies(dbPath string) (voyager.CookieSet, error) {
	copyPath, cleanup, err := copyToTemp(dbPath)
	if err != nil {
		return voyager.CookieSet{}, err
	}
	defer cleanup()

	db, err := sql.Open("sqlite", copyPath+"?mode=ro")
	if err != nil {
		return voyager.CookieSet{}, fmt.Errorf("opening cookie store: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT name, value FROM moz_cookies WHERE host LIKE ?`,
		"%"+cookieHost,
	)
	if err != nil {
		return voyager.CookieSet{}, fmt.Errorf("querying cookie store: %w", err)
	}
	defer rows.Close()

	var cookies voyager.CookieSet

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return voyager.CookieSet{}, fmt.Errorf("reading cookie row: %w", err)
		}

		switch name {
		case "li_at":
			cookies.LiAt = value
		case "JSESSIONID":
			cookies.JSessionID = value
		case "li_mc":
			cookies.LiMc = value
		case "bcookie":
			cookies.BCookie = value
		case "bscookie":
			cookies.BSCookie = value
		}
	}

	if err := rows.Err(); err != nil {
		return voyager.CookieSet{}, fmt.Errorf("reading cookie store: %w", err)
	}

	return cookies, nil
}

func copyToTemp(path string) (string, func(), error) {
	source, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("opening cookie store: %w", err)
	}
	defer source.Close()

	target, err := os.CreateTemp("", "voycli-cookies-*.sqlite")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp copy: %w", err)
	}

	cleanup := func() { os.Remove(target.Name()) }

	if _, err := io.Copy(target, source); err != nil {
		target.Close()
		cleanup()

		return "", nil, fmt.Errorf("copying cookie store: %w", err)
	}

	if err := target.Close(); err != nil {
		cleanup()

		return "", nil, fmt.Errorf("copying cookie store: %w", err)
	}

	return target.Name(), cleanup, nil
}

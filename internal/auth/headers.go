package auth

import (
	"fmt"
	"strings"

	"github.com/voycli/voycli/pkg/voyager"
)

// Header values the upstream expects on every request. The Accept string
// selects the normalized envelope encoding this client parses; the track
// header mimics the web client's device fingerprint.
const (
	AcceptNormalizedJSON = "application/vnd.linkedin.normalized+json+2.1"
	RestliProtocol       = "2.0.0"
	Lang                 = "en_US"
	UserAgent            = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	trackHeader = `{"clientVersion":"1.13.35","mpVersion":"1.13.35","osName":"web","timezoneOffset":0,"deviceFormFactor":"DESKTOP","mpName":"voyager-web","displayDensity":1,"displayWidth":1920,"displayHeight":1080}`
)

// CSRFToken derives the csrf-token header from the JSESSIONID cookie:
// surrounding quotes are stripped and the ajax: prefix is ensured.
func CSRFToken(jsessionID string) string {
	token := strings.Trim(jsessionID, `"`)
	if !strings.HasPrefix(token, "ajax:") {
		token = "ajax:" + token
	}

	return token
}

// CookieHeader renders the session cookies. The JSESSIONID keeps its quoted
// form on the wire even though the CSRF token strips it.
func CookieHeader(cookies voyager.CookieSet) string {
	jsession := strings.Trim(cookies.JSessionID, `"`)

	var b strings.Builder

	fmt.Fprintf(&b, `li_at=%s; JSESSIONID="%s"`, cookies.LiAt, jsession)

	if cookies.LiMc != "" {
		fmt.Fprintf(&b, "; li_mc=%s", cookies.LiMc)
	}

	if cookies.BCookie != "" {
		fmt.Fprintf(&b, "; bcookie=%s", cookies.BCookie)
	}

	if cookies.BSCookie != "" {
		fmt.Fprintf(&b, "; bscookie=%s", cookies.BSCookie)
	}

	return b.String()
}

// Headers builds the full header set for one authenticated request.
// pageInstance is the per-client tracking ID generated at construction.
func Headers(cookies voyager.CookieSet, pageInstance string) map[string]string {
	return map[string]string{
		"accept":                    AcceptNormalizedJSON,
		"cookie":                    CookieHeader(cookies),
		"csrf-token":                CSRFToken(cookies.JSessionID),
		"user-agent":                UserAgent,
		"x-li-lang":                 Lang,
		"x-li-track":                trackHeader,
		"x-li-page-instance":        "urn:li:page:d_flagship3_feed;" + pageInstance,
		"x-restli-protocol-version": RestliProtocol,
	}
}

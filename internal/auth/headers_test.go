package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voycli/voycli/internal/auth"
	"github.com/voycli/voycli/pkg/voyager"
)

func TestCSRFToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		jsessionID string
		want       string
	}{
		{name: "quoted value is stripped", jsessionID: `"quoted-session-id"`, want: "ajax:quoted-session-id"},
		{name: "already prefixed keeps single prefix", jsessionID: `"ajax:123456"`, want: "ajax:123456"},
		{name: "unquoted value", jsessionID: "plain", want: "ajax:plain"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, auth.CSRFToken(testCase.jsessionID))
		})
	}
}

func TestCookieHeader(t *testing.T) {
	t.Parallel()

	cookies := voyager.CookieSet{LiAt: "token", JSessionID: `"quoted-session-id"`}
	assert.Equal(t, `li_at=token; JSESSIONID="quoted-session-id"`, auth.CookieHeader(cookies))

	extended := voyager.CookieSet{
		LiAt:       "token",
		JSessionID: `"ajax:1"`,
		LiMc:       "mc",
		BCookie:    "b",
		BSCookie:   "bs",
	}
	assert.Equal(t,
		`li_at=token; JSESSIONID="ajax:1"; li_mc=mc; bcookie=b; bscookie=bs`,
		auth.CookieHeader(extended))
}

func TestHeaders(t *testing.T) {
	t.Parallel()

	cookies := voyager.CookieSet{LiAt: "token", JSessionID: `"quoted-session-id"`}
	headers := auth.Headers(cookies, "page-instance-id")

	assert.Equal(t, "ajax:quoted-session-id", headers["csrf-token"])
	assert.Equal(t, `li_at=token; JSESSIONID="quoted-session-id"`, headers["cookie"])
	assert.Equal(t, auth.AcceptNormalizedJSON, headers["accept"])
	assert.Equal(t, "2.0.0", headers["x-restli-protocol-version"])
	assert.Contains(t, headers["x-li-page-instance"], "page-instance-id")
	assert.NotEmpty(t, headers["user-agent"])
}

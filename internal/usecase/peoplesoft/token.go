package peoplesoft

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenPrefix is the structural marker every bridge-issued token starts
// with. The request gate recognizes tokens by this prefix alone; there is no
// signature and no server-side token store.
const TokenPrefix = "ps-mock-token-"

// DefaultSessionTimeout is the advertised token lifetime in seconds
// (30 minutes). Informational only, never checked against the clock.
const DefaultSessionTimeout = 1800

// newSessionToken mints an opaque bearer token. The issuance time keeps the
// value readable, the uuid guarantees no two logins ever mint the same one.
func newSessionToken(now time.Time) SessionToken {
	return SessionToken{
		Token:     fmt.Sprintf("%s%d-%s", TokenPrefix, now.UnixMilli(), uuid.New().String()),
		ExpiresIn: DefaultSessionTimeout,
		IssuedAt:  now,
	}
}

// HasTokenShape reports whether value carries the structural marker. This is
// the whole of token verification in the current trust model.
func HasTokenShape(value string) bool {
	return strings.HasPrefix(value, TokenPrefix)
}

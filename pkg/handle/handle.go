package handle

import (
	"regexp"
	"strings"
)

// handleRegexp matches a canonical social handle: "@" followed by 1-30
// characters from letters, digits, period, and underscore.
var handleRegexp = regexp.MustCompile(`^@[a-zA-Z0-9_.]{1,30}$`)

// Normalize converts raw user input into canonical "@handle" form.
// It trims surrounding whitespace and prepends "@" when missing. It never
// fails; the result may still be invalid and should be checked with IsValid.
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
//
// Examples:
//   - "bluebottle"   → "@bluebottle"
//   - " @joes.cafe " → "@joes.cafe"
func Normalize(input string) string {
	h := strings.TrimSpace(input)
	if !strings.HasPrefix(h, "@") {
		h = "@" + h
	}
	return h
}

// IsValid reports whether the candidate is a canonical handle: exactly one
// leading "@" and a 1-30 character tail of ASCII letters, digits, ".", or "_".
func IsValid(candidate string) bool {
	return handleRegexp.MatchString(candidate)
}

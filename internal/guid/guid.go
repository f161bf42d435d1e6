// Package guid generates and checks the 32-hex identifiers used as
// primary keys throughout a book.
package guid

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh 32-character lowercase hex GUID.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsValid reports whether s is a 32-character lowercase hex string.
func IsValid(s string) bool {
	if len(s) != 32 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

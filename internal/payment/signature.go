package payment

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign computes the gateway request signature. The protocol canonicalization
// is fixed: field names are sorted lexicographically, the field values (not
// the names) are concatenated in that order, the shared secret is appended as
// the final value, and the SHA-256 hex digest of the concatenation is the
// signature. The gateway recomputes the same digest, so this must be
// reproduced exactly.
func Sign(fields map[string]string, secret string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fields[k])
	}
	b.WriteString(secret)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

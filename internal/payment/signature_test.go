package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The canonicalization is a wire contract: keys sorted lexicographically,
// values only, secret last, SHA-256 hex. These vectors pin it bit-for-bit.
func TestSignCanonicalization(t *testing.T) {
	fields := map[string]string{
		"b": "2",
		"c": "3",
		"a": "1",
	}
	// sha256("123" + "s")
	assert.Equal(t,
		"ef6cf3da85d4d9c2a38aaa4ed37fb5ce3fceab77b1d12792a063bf47e362eb8d",
		Sign(fields, "s"))
}

func TestSignConcatenatesValuesNotKeys(t *testing.T) {
	fields := map[string]string{
		"zzz": "valueB",
		"aaa": "valueA",
	}
	// sha256("valueAvalueB" + "secret") — key names must not leak into the digest.
	assert.Equal(t,
		"f958448a55166be41ceb64cee8a559c35741c55cda2877fa02c6487685ae1281",
		Sign(fields, "secret"))
}

func TestSignKeyOrderIndependence(t *testing.T) {
	a := Sign(map[string]string{"x": "1", "y": "2"}, "s")
	b := Sign(map[string]string{"y": "2", "x": "1"}, "s")
	assert.Equal(t, a, b)
}

func TestSignSecretChangesDigest(t *testing.T) {
	fields := map[string]string{"x": "1"}
	assert.NotEqual(t, Sign(fields, "s1"), Sign(fields, "s2"))
}

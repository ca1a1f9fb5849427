package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// BytesEqual compares two slices of bytes by value.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

// CompositeID builds a fixed-length storage identifier from the given parts.
// Every part is length-prefixed before hashing, so distinct part lists can
// not collide on concatenation. Parts must be shorter than 256 bytes.
func CompositeID(parts [][]byte) []byte {
	buf := []byte{}
	for i := range parts {
		part := parts[i]
		buf = append(buf, byte(len(part)))
		buf = append(buf, part...)
	}

	return crypto.Sha256(buf)
}

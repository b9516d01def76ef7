// Package digest implements the truncated-hash primitives the rest of the
// hash-chain commitment scheme is built on: a 160-bit digest derived from
// BLAKE3, and the iterated application of that digest used to walk the
// operator's off-chain computation one step at a time.
package digest

import "lukechampine.com/blake3"

// Size is the length in bytes of a chain digest. Bitcoin Script only ever
// compares fixed 20-byte stack items for this scheme, so every digest is
// truncated to the same size RIPEMD160/HASH160 already uses on-chain.
const Size = 20

// H20 returns the first 20 bytes of the BLAKE3-256 hash of b.
func H20(b []byte) [Size]byte {
	full := blake3.Sum256(b)

	var out [Size]byte
	copy(out[:], full[:Size])
	return out
}

// Hn20 applies H20 n times, with Hn20(b, 0) defined as H20(b) itself. The
// step index domain for a chain of round count R is therefore [0, R], with
// step state s_i = Hn20(statement, i): the chain begins after the initial
// hash of the statement, it does not start at the statement itself.
func Hn20(b []byte, n uint32) [Size]byte {
	h := H20(b)
	for i := uint32(0); i < n; i++ {
		h = H20(h[:])
	}
	return h
}

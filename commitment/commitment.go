// Package commitment implements the per-step bit-commitment layer:
// deriving an operator's one-time Winternitz key from a commitment seed,
// and locking/unlocking a single (index, state) pair under it.
package commitment

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/lightninglabs/hashchain-disprove/digest"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
	"github.com/lightninglabs/hashchain-disprove/winternitzhash"
)

// MessageLen is the length in bytes of a bit-commitment message m_i: a
// 4-byte big-endian step index followed by a 20-byte step state.
const MessageLen = 4 + digest.Size

// SeedToSecret derives the one-time Winternitz secret owned by an operator
// commitment seed, using the standard Bitcoin 160-bit hash (RIPEMD160 over
// SHA256) rather than H20: the secret is an opaque key material value, not
// a point on the hash chain being committed to.
func SeedToSecret(seed []byte) winternitz.Digest {
	var secret winternitz.Digest
	copy(secret[:], btcutil.Hash160(seed))
	return secret
}

// SeedToPubkey derives the Winternitz public key an operator publishes for
// a commitment seed.
func SeedToPubkey(seed []byte) winternitz.PublicKey {
	return winternitz.GenPubkey(SeedToSecret(seed))
}

// encodeIndex serializes a step index as 4 big-endian bytes.
func encodeIndex(index uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], index)
	return b
}

// Message builds the 24-byte bit-commitment message m_i = encode_be32(i) ||
// s_i signed at step index i.
func Message(index uint32, state [digest.Size]byte) []byte {
	idx := encodeIndex(index)

	m := make([]byte, 0, MessageLen)
	m = append(m, idx[:]...)
	m = append(m, state[:]...)
	return m
}

// EncodeMinimalByte emulates Bitcoin Script's minimal-integer push encoding
// for a single byte: an empty witness item for 0, a one-byte item for
// 1..0x7f, and a two-byte item (the byte followed by a 0x00 sign-guard) for
// 0x80..0xff. This must match exactly, byte for byte, or the in-script
// comparison against CheckSigVerify's canonically-pushed bytes fails.
func EncodeMinimalByte(b byte) []byte {
	switch {
	case b == 0:
		return []byte{}
	case b <= 0x7f:
		return []byte{b}
	default:
		return []byte{b, 0x00}
	}
}

// DecodeMinimalByte is the inverse of EncodeMinimalByte, used to parse
// witness items back into the byte they encode.
func DecodeMinimalByte(item []byte) byte {
	switch len(item) {
	case 0:
		return 0
	case 1:
		return item[0]
	default:
		return item[0]
	}
}

// CommitUnlock builds the witness items for a single bit-commitment at
// step index, signed by secret over statement: 20 state-byte items
// (least-significant-position first), 4 index-byte items
// (least-significant-position first), and N Winternitz signature items, in
// that order, bottom of the witness stack first.
func CommitUnlock(secret winternitz.Digest, statement []byte, index uint32) [][]byte {
	state := digest.Hn20(statement, index)

	items := make([][]byte, 0, digest.Size+4+winternitz.N)
	for i := digest.Size - 1; i >= 0; i-- {
		items = append(items, EncodeMinimalByte(state[i]))
	}

	idx := encodeIndex(index)
	for i := 3; i >= 0; i-- {
		items = append(items, EncodeMinimalByte(idx[i]))
	}

	message := Message(index, state)
	return winternitzhash.PushSigWitness(items, secret, message)
}

// CommitLock returns the Script fragment locking a bit-commitment at step
// index under pubkey: it runs the signed-message duplicator over the full
// 24-byte message while exposing only the 4-byte index, then asserts that
// index equals the expected one.
func CommitLock(pubkey winternitz.PublicKey, index uint32) ([]byte, error) {
	return commitLock(pubkey, index, 4)
}

// CommitLockFull is CommitLock's sibling used where the caller needs the
// full 24-byte message (index and state) left on the stack afterwards
// rather than just the index — the hash-chain step lock checks an index
// this way and then recomputes a hash over the exposed state bytes.
func CommitLockFull(pubkey winternitz.PublicKey, index uint32) ([]byte, error) {
	return commitLock(pubkey, index, MessageLen)
}

func commitLock(pubkey winternitz.PublicKey, index uint32, num int) ([]byte, error) {
	dup, err := winternitzhash.CheckSigDup(pubkey, MessageLen, num)
	if err != nil {
		return nil, err
	}

	builder := txscript.NewScriptBuilder()
	builder.AddOps(dup)

	// Regardless of num, the duplicator leaves the index bytes on top of
	// the preserved range (index bytes precede state bytes in m_i), so
	// the same index-equality check applies whether 4 or 24 bytes were
	// preserved.
	idx := encodeIndex(index)
	for _, b := range idx {
		builder.AddInt64(int64(b))
		builder.AddOp(txscript.OP_EQUALVERIFY)
	}

	return builder.Script()
}

// Verify is the Go-native equivalent of running CommitUnlock's witness
// through CommitLock: it parses the witness items, checks the Winternitz
// signature and index, and returns the witnessed step state on success.
func Verify(pubkey winternitz.PublicKey, items [][]byte, index uint32) ([digest.Size]byte, error) {
	var state [digest.Size]byte

	if len(items) != digest.Size+4+winternitz.N {
		log.Debugf("Verify: got %d witness items, want %d", len(items),
			digest.Size+4+winternitz.N)
		return state, ErrCommitmentMismatch
	}

	for i := 0; i < digest.Size; i++ {
		state[digest.Size-1-i] = DecodeMinimalByte(items[i])
	}

	var idxBytes [4]byte
	for i := 0; i < 4; i++ {
		idxBytes[3-i] = DecodeMinimalByte(items[digest.Size+i])
	}

	sigItems := items[digest.Size+4:]
	sig := make(winternitz.Signature, winternitz.N)
	for i, item := range sigItems {
		if len(item) != digest.Size {
			log.Debugf("Verify: signature item %d has wrong length %d",
				i, len(item))
			return state, ErrCommitmentMismatch
		}
		copy(sig[i][:], item)
	}

	message := make([]byte, 0, MessageLen)
	message = append(message, idxBytes[:]...)
	message = append(message, state[:]...)

	exposed, err := winternitzhash.VerifyDup(pubkey, sig, message, 4)
	if err != nil {
		log.Debugf("Verify: duplicator rejected witness at index %d: %v",
			index, err)
		return state, ErrCommitmentMismatch
	}

	wantIdx := encodeIndex(index)
	for i := range wantIdx {
		if exposed[i] != wantIdx[i] {
			log.Debugf("Verify: witnessed index does not match "+
				"expected index %d", index)
			return state, ErrCommitmentMismatch
		}
	}

	return state, nil
}

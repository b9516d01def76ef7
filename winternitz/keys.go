package winternitz

import (
	"encoding/binary"

	"github.com/lightninglabs/hashchain-disprove/digest"
)

// Digest is a single 20-byte value signed or chained by this package: a
// digit-chain element, a public key block, or the message itself.
type Digest = [DigestSize]byte

// PublicKey is the flat vector of N 20-byte hash-chain tips produced by
// GenPubkey: pubkey[i] is the top of digit chain i.
type PublicKey []Digest

// Signature is the flat vector of N 20-byte chain elements revealed by
// Sign: sig[i] is digit chain i's element at the depth of the signed
// message's i-th digit.
type Signature []Digest

// Bytes serializes a public key as the flat 20*N byte sequence.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, 0, len(pk)*DigestSize)
	for _, block := range pk {
		out = append(out, block[:]...)
	}
	return out
}

// ParsePublicKey deserializes a flat byte sequence into a PublicKey,
// asserting its length is exactly N*DigestSize bytes.
func ParsePublicKey(b []byte) (PublicKey, error) {
	if len(b) != N*DigestSize {
		log.Debugf("ParsePublicKey: got %d bytes, want %d", len(b),
			N*DigestSize)
		return nil, ErrInvalidPubkeyLength
	}

	pk := make(PublicKey, N)
	for i := 0; i < N; i++ {
		copy(pk[i][:], b[i*DigestSize:(i+1)*DigestSize])
	}
	return pk, nil
}

// chainBase derives the bottom (secret) element of digit chain index from
// the one-time secret. Domain-separating on the digit index keeps the N
// chains independent even though they share a single secret.
func chainBase(secret Digest, index int) Digest {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(index))

	preimage := make([]byte, 0, DigestSize+len(idx))
	preimage = append(preimage, secret[:]...)
	preimage = append(preimage, idx[:]...)
	return digest.H20(preimage)
}

// walk applies H20 to h exactly steps times, returning h unchanged when
// steps is 0.
func walk(h Digest, steps int) Digest {
	for i := 0; i < steps; i++ {
		h = digest.H20(h[:])
	}
	return h
}

// GenPubkey derives a Winternitz public key from a 20-byte secret: for each
// of the N digit chains it walks the chain base all the way to depth
// MaxDigitValue, the chain's public tip.
func GenPubkey(secret Digest) PublicKey {
	pk := make(PublicKey, N)
	for i := 0; i < N; i++ {
		pk[i] = walk(chainBase(secret, i), MaxDigitValue)
	}
	return pk
}

// digitsOf decomposes a 20-byte message into its MessageDigits nibbles
// followed by ChecksumDigits checksum nibbles, most significant first. The
// checksum is the sum, over the message digits, of MaxDigitValue minus the
// digit's value: anyone holding a signature can raise a revealed message
// digit by hashing its chain element further, but that lowers the checksum,
// and lowering a checksum digit needs a chain element below the one
// revealed, which only the holder of the secret can produce.
func digitsOf(msg Digest) []uint8 {
	digits := make([]uint8, 0, N)
	for _, b := range msg {
		digits = append(digits, b>>DigitBits, b&MaxDigitValue)
	}

	var checksum uint32
	for _, d := range digits {
		checksum += uint32(MaxDigitValue) - uint32(d)
	}

	checksumDigitsBuf := make([]uint8, ChecksumDigits)
	for i := ChecksumDigits - 1; i >= 0; i-- {
		checksumDigitsBuf[i] = uint8(checksum & MaxDigitValue)
		checksum >>= DigitBits
	}

	return append(digits, checksumDigitsBuf...)
}

// Sign produces a Winternitz signature over msg under secret. secret must
// never sign two distinct messages, on pain of breaking the scheme's
// soundness: this function has no way to enforce that across calls and
// trusts the caller.
func Sign(secret Digest, msg Digest) Signature {
	digits := digitsOf(msg)

	sig := make(Signature, N)
	for i, d := range digits {
		sig[i] = walk(chainBase(secret, i), int(d))
	}
	return sig
}

// Verify checks that sig is a valid Winternitz signature over msg under
// pubkey, by re-walking each revealed chain element to its chain's maximum
// depth and comparing against the published tip. This is the Go-native
// equivalent of CheckSigVerify's on-chain behavior, used to validate the
// scheme's invariants without a Script interpreter.
func Verify(pubkey PublicKey, msg Digest, sig Signature) bool {
	if len(pubkey) != N || len(sig) != N {
		log.Debugf("Verify: pubkey/signature length mismatch "+
			"(pubkey=%d, sig=%d, want %d)", len(pubkey), len(sig), N)
		return false
	}

	digits := digitsOf(msg)
	for i, d := range digits {
		tip := walk(sig[i], MaxDigitValue-int(d))
		if tip != pubkey[i] {
			log.Debugf("Verify: chain %d failed to reach its "+
				"published tip", i)
			return false
		}
	}
	return true
}

package winternitz

import (
	"bytes"
	"testing"
)

func testSecret(t *testing.T) Digest {
	t.Helper()
	var s Digest
	copy(s[:], []byte("0123456789abcdefghij"))
	return s
}

func TestPublicKeyRoundTrip(t *testing.T) {
	secret := testSecret(t)
	pk := GenPubkey(secret)

	if len(pk.Bytes()) != N*DigestSize {
		t.Fatalf("public key serialized to %d bytes, want %d", len(pk.Bytes()), N*DigestSize)
	}

	parsed, err := ParsePublicKey(pk.Bytes())
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	for i := range pk {
		if parsed[i] != pk[i] {
			t.Fatalf("round trip mismatch at digit %d", i)
		}
	}
}

func TestParsePublicKeyLengthMismatch(t *testing.T) {
	_, err := ParsePublicKey(make([]byte, N*DigestSize-1))
	if err != ErrInvalidPubkeyLength {
		t.Fatalf("got err %v, want ErrInvalidPubkeyLength", err)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	secret := testSecret(t)
	pk := GenPubkey(secret)

	var msg Digest
	copy(msg[:], []byte("some 20 byte message"))

	sig := Sign(secret, msg)
	if !Verify(pk, msg, sig) {
		t.Fatalf("Verify rejected a freshly produced signature")
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	secret := testSecret(t)
	pk := GenPubkey(secret)

	var msg, other Digest
	copy(msg[:], []byte("some 20 byte message"))
	copy(other[:], []byte("a different message!"))

	sig := Sign(secret, msg)
	if Verify(pk, other, sig) {
		t.Fatalf("Verify accepted a signature for the wrong message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	secret := testSecret(t)
	pk := GenPubkey(secret)

	var otherSecret Digest
	copy(otherSecret[:], []byte("zyxwvutsrqponmlkjihg"))
	otherPK := GenPubkey(otherSecret)

	var msg Digest
	copy(msg[:], []byte("some 20 byte message"))

	sig := Sign(secret, msg)
	if Verify(otherPK, msg, sig) {
		t.Fatalf("Verify accepted a signature under the wrong public key")
	}
}

func TestSigWitnessMatchesSign(t *testing.T) {
	secret := testSecret(t)
	var msg Digest
	copy(msg[:], []byte("some 20 byte message"))

	sig := Sign(secret, msg)

	var items [][]byte
	items = SigWitness(items, secret, msg)
	if len(items) != N {
		t.Fatalf("SigWitness produced %d items, want %d", len(items), N)
	}
	for i, block := range sig {
		if !bytes.Equal(items[i], block[:]) {
			t.Fatalf("witness item %d = %x, want %x", i, items[i], block)
		}
	}
}

func TestDigitsOfIsChecksummed(t *testing.T) {
	var msg Digest
	copy(msg[:], []byte("some 20 byte message"))

	digits := digitsOf(msg)
	if len(digits) != N {
		t.Fatalf("digitsOf returned %d digits, want %d", len(digits), N)
	}
	for _, d := range digits {
		if d > MaxDigitValue {
			t.Fatalf("digit value %d exceeds MaxDigitValue %d", d, MaxDigitValue)
		}
	}
}

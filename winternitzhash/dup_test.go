package winternitzhash

import (
	"bytes"
	"testing"

	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

func testSecret(t *testing.T) winternitz.Digest {
	t.Helper()
	var s winternitz.Digest
	copy(s[:], []byte("0123456789abcdefghij"))
	return s
}

func TestVerifyDupExposesLeadingBytes(t *testing.T) {
	secret := testSecret(t)
	pk := winternitz.GenPubkey(secret)

	message := make([]byte, 24)
	copy(message, []byte("0001020304050607deadbeefcafebabe0000"))
	message = message[:24]

	sig := SignHash(secret, message)

	preserved, err := VerifyDup(pk, sig, message, 4)
	if err != nil {
		t.Fatalf("VerifyDup(num=4): %v", err)
	}
	if !bytes.Equal(preserved, message[:4]) {
		t.Fatalf("preserved = %x, want %x", preserved, message[:4])
	}

	preserved, err = VerifyDup(pk, sig, message, 24)
	if err != nil {
		t.Fatalf("VerifyDup(num=24): %v", err)
	}
	if !bytes.Equal(preserved, message) {
		t.Fatalf("preserved = %x, want %x", preserved, message)
	}
}

func TestVerifyDupRejectsTamperedMessage(t *testing.T) {
	secret := testSecret(t)
	pk := winternitz.GenPubkey(secret)

	message := make([]byte, 24)
	copy(message, []byte("0001020304050607deadbeefcafebabe0000"))
	sig := SignHash(secret, message)

	tampered := append([]byte(nil), message...)
	tampered[23] ^= 0xff

	if _, err := VerifyDup(pk, sig, tampered, 4); err != ErrSignatureMismatch {
		t.Fatalf("got err %v, want ErrSignatureMismatch", err)
	}
}

func TestVerifyDupRejectsUnsupportedShape(t *testing.T) {
	secret := testSecret(t)
	pk := winternitz.GenPubkey(secret)

	message := make([]byte, 24)
	sig := SignHash(secret, message)

	if _, err := VerifyDup(pk, sig, message, 7); err != ErrUnsupportedShape {
		t.Fatalf("got err %v, want ErrUnsupportedShape", err)
	}
	if _, err := VerifyDup(pk, sig, message[:10], 4); err != ErrUnsupportedShape {
		t.Fatalf("got err %v, want ErrUnsupportedShape for short input", err)
	}
}

func TestCheckSigDupBuildsForSupportedShapes(t *testing.T) {
	secret := testSecret(t)
	pk := winternitz.GenPubkey(secret)

	if _, err := CheckSigDup(pk, 24, 4); err != nil {
		t.Fatalf("CheckSigDup(24,4): %v", err)
	}
	if _, err := CheckSigDup(pk, 24, 24); err != nil {
		t.Fatalf("CheckSigDup(24,24): %v", err)
	}
	if _, err := CheckSigDup(pk, 24, 7); err != ErrUnsupportedShape {
		t.Fatalf("got err %v, want ErrUnsupportedShape", err)
	}
}

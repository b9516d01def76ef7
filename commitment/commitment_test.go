package commitment

import (
	"bytes"
	"testing"

	"github.com/lightninglabs/hashchain-disprove/digest"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

func TestSeedToPubkeyAndSecretAgree(t *testing.T) {
	seed := []byte("operator-seed-ascii")
	secret := SeedToSecret(seed)
	pubkey := SeedToPubkey(seed)

	if len(pubkey.Bytes()) == 0 {
		t.Fatalf("empty public key")
	}
	if secret == ([digest.Size]byte{}) {
		t.Fatalf("secret derived to all zero bytes")
	}
	if !bytes.Equal(pubkey.Bytes(), winternitz.GenPubkey(secret).Bytes()) {
		t.Fatalf("SeedToPubkey does not match GenPubkey(SeedToSecret)")
	}
}

func TestCommitRoundTrip(t *testing.T) {
	const round = 5
	seed := []byte("operator-seed-ascii")
	secret := SeedToSecret(seed)
	pubkey := SeedToPubkey(seed)
	statement := []byte("OPERATOR_STATEMENT")

	for i := uint32(0); i <= round; i++ {
		items := CommitUnlock(secret, statement, i)

		state, err := Verify(pubkey, items, i)
		if err != nil {
			t.Fatalf("Verify(index=%d): %v", i, err)
		}

		want := digest.Hn20(statement, i)
		if state != want {
			t.Fatalf("Verify(index=%d) state = %x, want %x", i, state, want)
		}
	}
}

func TestCommitLockBuilds(t *testing.T) {
	seed := []byte("operator-seed-ascii")
	pubkey := SeedToPubkey(seed)

	if _, err := CommitLock(pubkey, 3); err != nil {
		t.Fatalf("CommitLock: %v", err)
	}
}

func TestVerifyRejectsWrongIndex(t *testing.T) {
	seed := []byte("operator-seed-ascii")
	secret := SeedToSecret(seed)
	pubkey := SeedToPubkey(seed)
	statement := []byte("OPERATOR_STATEMENT")

	items := CommitUnlock(secret, statement, 2)
	if _, err := Verify(pubkey, items, 3); err != ErrCommitmentMismatch {
		t.Fatalf("got err %v, want ErrCommitmentMismatch", err)
	}
}

func TestVerifyRejectsForgedState(t *testing.T) {
	seed := []byte("operator-seed-ascii")
	secret := SeedToSecret(seed)
	pubkey := SeedToPubkey(seed)
	statement := []byte("OPERATOR_STATEMENT")

	items := CommitUnlock(secret, statement, 2)
	// Corrupt the last state-byte witness item (it is pushed first, so
	// it is items[0] — see CommitUnlock's least-significant-position
	// ordering).
	items[0] = []byte{0x42}

	if _, err := Verify(pubkey, items, 2); err != ErrCommitmentMismatch {
		t.Fatalf("got err %v, want ErrCommitmentMismatch", err)
	}
}

func TestMinimalByteEncodingRoundTrip(t *testing.T) {
	for b := 0; b <= 0xff; b++ {
		item := EncodeMinimalByte(byte(b))
		switch {
		case b == 0:
			if len(item) != 0 {
				t.Fatalf("byte 0 encoded to %v, want empty item", item)
			}
		case b <= 0x7f:
			if len(item) != 1 || item[0] != byte(b) {
				t.Fatalf("byte %#x encoded to %v, want [%#x]", b, item, b)
			}
		default:
			if len(item) != 2 || item[0] != byte(b) || item[1] != 0x00 {
				t.Fatalf("byte %#x encoded to %v, want [%#x 0x00]", b, item, b)
			}
		}

		if got := DecodeMinimalByte(item); got != byte(b) {
			t.Fatalf("DecodeMinimalByte(EncodeMinimalByte(%#x)) = %#x", b, got)
		}
	}
}

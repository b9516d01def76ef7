package digest

import (
	"bytes"
	"testing"
)

func TestH20Length(t *testing.T) {
	h := H20([]byte("operator-statement"))
	if len(h) != Size {
		t.Fatalf("H20 returned %d bytes, want %d", len(h), Size)
	}
}

func TestHn20ZeroIsH20(t *testing.T) {
	statement := []byte("operator-statement")

	got := Hn20(statement, 0)
	want := H20(statement)
	if !bytes.Equal(got[:], want[:]) {
		t.Fatalf("Hn20(x, 0) = %x, want H20(x) = %x", got, want)
	}
}

func TestHn20ChainLaw(t *testing.T) {
	statement := []byte("operator-statement")

	for i := uint32(0); i < 8; i++ {
		si := Hn20(statement, i)
		siPlus1 := Hn20(statement, i+1)
		want := H20(si[:])

		if !bytes.Equal(siPlus1[:], want[:]) {
			t.Fatalf("Hn20(x, %d+1) = %x, want H20(Hn20(x, %d)) = %x",
				i, siPlus1, i, want)
		}
	}
}

func TestHn20Deterministic(t *testing.T) {
	statement := []byte("some fixed statement")

	a := Hn20(statement, 5)
	b := Hn20(statement, 5)
	if !bytes.Equal(a[:], b[:]) {
		t.Fatalf("Hn20 is not deterministic: %x != %x", a, b)
	}
}

func TestH20DiffersOnDifferentInput(t *testing.T) {
	a := H20([]byte("x"))
	b := H20([]byte("y"))
	if bytes.Equal(a[:], b[:]) {
		t.Fatalf("H20 collided on distinct short inputs")
	}
}

package ircodecs

import (
	"reflect"
	"testing"
)

func TestBitByteArrayAppend(t *testing.T) {
	a := NewBitByteArray()

	if a.HasData() {
		t.Fatalf("new array should have no data")
	}

	padding := a.Append(0xFF, 0)
	if padding != 0 {
		t.Errorf("padding after full byte: got %d, want 0", padding)
	}
	if a.Len() != 1 || a.Get(0) != 0xFF {
		t.Errorf("unexpected state after first append: %v", a.Bytes())
	}

	padding = a.Append(0xF0, 4)
	if padding != 4 {
		t.Errorf("padding after second append: got %d, want 4", padding)
	}
	if !reflect.DeepEqual(a.Bytes(), []byte{0xFF, 0xF0}) {
		t.Errorf("unexpected bytes: %v", a.Bytes())
	}
}

func TestBitByteArrayExtend(t *testing.T) {
	a := NewBitByteArray()
	padding := a.Extend([]byte{0x00, 0x00, 0x14}, 5)
	if padding != 5 {
		t.Errorf("padding: got %d, want 5", padding)
	}

	b := NewBitByteArray()
	b.Extend([]byte{0xE8, 0x48, 0x00}, 5)
	padding = a.Extend(b.Bytes(), b.Padding())
	_ = padding
}

func TestBitByteArrayCloseByte(t *testing.T) {
	a := NewBitByteArray()
	a.Append(0xF0, 4)
	if a.Padding() != 4 {
		t.Fatalf("setup: padding got %d, want 4", a.Padding())
	}

	old := a.CloseByte()
	if old == 0 {
		t.Errorf("CloseByte: expected nonzero prior cursor")
	}
	if a.Padding() != 0 {
		t.Errorf("after CloseByte, padding should be 0, got %d", a.Padding())
	}

	a.Append(0xFF, 0)
	if a.Len() != 2 {
		t.Errorf("after CloseByte, append should start a new byte, got len %d", a.Len())
	}
}

func TestBitByteArrayMatchesEliasFanoReference(t *testing.T) {
	// Reproduces __encode_lower([0, 5, 475712], 19), a known-good
	// reference vector, by driving BitByteArray directly.
	lower := NewBitByteArray()
	for _, n := range []uint32{0, 5, 475712} {
		shifted := n << 5
		lower.Extend(toBytes(3, shifted), 5)
	}
	want := []byte{0, 0, 0, 0, 23, 161, 32, 0}
	if !reflect.DeepEqual(lower.Bytes(), want) {
		t.Errorf("lower bytes: got %v, want %v", lower.Bytes(), want)
	}
	if lower.Padding() != 7 {
		t.Errorf("lower padding: got %d, want 7", lower.Padding())
	}
}

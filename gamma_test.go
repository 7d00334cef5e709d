package ircodecs

import (
	"reflect"
	"testing"
)

func TestGammaEncode(t *testing.T) {
	var vectors = []struct {
		in      uint32
		out     []byte
		padding int
	}{
		{1, []byte{0x00}, 7},
		{2, []byte{0x80}, 5},
		{3, []byte{0xA0}, 5},
		{4, []byte{0xC0}, 3},
		{7, []byte{0xD8}, 3},
		{8, []byte{0xE0}, 1},
		{9, []byte{0xE2}, 1},
		{1000, []byte{0xFF, 0xBD, 0x00}, 5},
	}

	for i, v := range vectors {
		got, padding, err := GammaEncode(v.in)
		if err != nil {
			t.Fatalf("test %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(got, v.out) {
			t.Errorf("test %d, GammaEncode(%d): got %v, want %v", i, v.in, got, v.out)
		}
		if padding != v.padding {
			t.Errorf("test %d, GammaEncode(%d): padding got %d, want %d", i, v.in, padding, v.padding)
		}
	}
}

func TestGammaEncodeZeroError(t *testing.T) {
	if _, _, err := GammaEncode(0); err != ErrInvalidInput {
		t.Errorf("GammaEncode(0): got %v, want %v", err, ErrInvalidInput)
	}
}

func TestGammaRoundTrip(t *testing.T) {
	numbers := []uint32{1, 2, 3, 4, 7, 8, 9, 1000}

	bba := NewBitByteArray()
	for _, n := range numbers {
		encoded, padding, err := GammaEncode(n)
		if err != nil {
			t.Fatalf("encode %d: %v", n, err)
		}
		bba.Extend(encoded, padding)
	}

	decoded, err := GammaDecode(bba.Bytes(), len(numbers))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, numbers) {
		t.Errorf("round trip: got %v, want %v", decoded, numbers)
	}
}

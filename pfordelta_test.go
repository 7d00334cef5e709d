package ircodecs

import (
	"reflect"
	"testing"
)

func TestPForDeltaEncode(t *testing.T) {
	numbers := []uint32{1, 1, 1, 1 << 20, 1, 1, 1}

	got := PForDeltaEncode(numbers)
	want := []uint32{1, 3992977408, 3, 524288}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPForDeltaRoundTrip(t *testing.T) {
	numbers := []uint32{1, 1, 1, 1 << 20, 1, 1, 1}

	encoded := PForDeltaEncode(numbers)
	decoded, err := PForDeltaDecode(encoded, len(numbers))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, numbers) {
		t.Errorf("got %v, want %v", decoded, numbers)
	}
}

func TestPForDeltaRoundTripNoExceptions(t *testing.T) {
	numbers := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	encoded := PForDeltaEncode(numbers)
	decoded, err := PForDeltaDecode(encoded, len(numbers))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, numbers) {
		t.Errorf("got %v, want %v", decoded, numbers)
	}
}

func TestPForDeltaEncodeEmptyError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on empty input")
		}
	}()
	PForDeltaEncode(nil)
}

func TestFindOptimalB(t *testing.T) {
	numbers := []uint32{1, 1, 1, 1, 1, 1, 1}
	if got := findOptimalB(numbers); got != 1 {
		t.Errorf("all-ones list: got b=%d, want 1", got)
	}
}

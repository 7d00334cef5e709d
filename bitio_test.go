package ircodecs

import "testing"

func TestWriteReadBits8(t *testing.T) {
	var vectors = []struct {
		values []uint32
		widths []int
	}{
		{[]uint32{5}, []int{3}},
		{[]uint32{1, 2, 3}, []int{1, 2, 2}},
		{[]uint32{0xFF, 0x0F, 0xF0}, []int{8, 8, 8}},
		{[]uint32{1, 0, 1, 0, 1, 0, 1, 0, 1}, []int{1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{[]uint32{300, 4095}, []int{9, 12}},
	}

	for i, v := range vectors {
		totalBits := 0
		for _, w := range v.widths {
			totalBits += w
		}
		array := make([]byte, divCeil(totalBits, 8))

		offset := 0
		for j, val := range v.values {
			offset = WriteBits8(array, offset, val, v.widths[j])
		}

		offset = 0
		for j, val := range v.values {
			mask := simple16Masks[v.widths[j]]
			got := ReadBits8(array, offset, v.widths[j])
			if got != val&mask {
				t.Errorf("test %d, value %d: got %d, want %d", i, j, got, val&mask)
			}
			offset += v.widths[j]
		}
	}
}

func TestWriteReadBits32(t *testing.T) {
	var vectors = []struct {
		values []uint32
		widths []int
	}{
		{[]uint32{5}, []int{3}},
		{[]uint32{1, 2, 3}, []int{10, 10, 10}},
		{[]uint32{0xDEADBEEF}, []int{32}},
		{[]uint32{1, 1 << 20, 3}, []int{5, 25, 2}},
		{[]uint32{7, 7, 7, 7, 7}, []int{7, 7, 7, 7, 7}},
	}

	for i, v := range vectors {
		totalBits := 0
		for _, w := range v.widths {
			totalBits += w
		}
		array := make([]uint32, divCeil(totalBits, 32))

		offset := 0
		for j, val := range v.values {
			offset = WriteBits32(array, offset, val, v.widths[j])
		}

		offset = 0
		for j, val := range v.values {
			mask := simple16Masks[v.widths[j]]
			got := ReadBits32(array, offset, v.widths[j])
			if got != val&mask {
				t.Errorf("test %d, value %d: got %d, want %d", i, j, got, val&mask)
			}
			offset += v.widths[j]
		}
	}
}

func TestReadBits32SpansWords(t *testing.T) {
	array := make([]uint32, 2)
	WriteBits32(array, 0, 0, 30)
	WriteBits32(array, 30, 0x3FFFFFFF, 30)

	got := ReadBits32(array, 30, 30)
	if got != 0x3FFFFFFF {
		t.Errorf("spanning read: got %#x, want %#x", got, 0x3FFFFFFF)
	}
}

package ircodecs

// BitByteArray is a mutable, bit-addressable byte buffer with an embedded
// bit cursor in [0,7] pointing into the currently-last byte.
//
// Invariants: if the cursor is 0, every existing byte is fully used and
// the next Append allocates a new byte; if the cursor is k>0, the last
// byte has k bits used from the MSB side and 8-k free on the LSB side.
// Padding() is (8-cursor) when cursor>0, else 0.
type BitByteArray struct {
	stream     []byte
	bitPointer uint
}

// NewBitByteArray returns an empty BitByteArray.
func NewBitByteArray() *BitByteArray {
	return &BitByteArray{}
}

// Len returns the number of bytes in the array.
func (a *BitByteArray) Len() int { return len(a.stream) }

// HasData reports whether the array holds any bytes.
func (a *BitByteArray) HasData() bool { return len(a.stream) > 0 }

// Bytes returns the raw underlying byte slice.
func (a *BitByteArray) Bytes() []byte { return a.stream }

// Get returns the byte at index i.
func (a *BitByteArray) Get(i int) byte { return a.stream[i] }

// Set assigns the byte at index i.
func (a *BitByteArray) Set(i int, v byte) { a.stream[i] = v }

// CloseByte forces the bit cursor to 0, so the next Append starts a fresh
// byte. Returns the cursor position prior to closing.
func (a *BitByteArray) CloseByte() uint {
	old := a.bitPointer
	a.bitPointer = 0
	return old
}

// Padding returns the number of unused low bits in the final byte.
func (a *BitByteArray) Padding() int {
	if a.bitPointer == 0 {
		return 0
	}
	return int(8 - a.bitPointer)
}

// recomputeBitPointer advances the cursor by the offset implied by
// padding — the number of meaningful bits just appended.
func (a *BitByteArray) recomputeBitPointer(padding int) {
	validatePadding(padding)
	if padding == 0 {
		return
	}
	offset := uint(8 - padding)
	a.bitPointer = (a.bitPointer + offset) & 7
}

// hasToWriteCarried reports whether the carried remainder of an appended
// byte contains meaningful bits once the current cursor offset and the
// appended byte's own padding are taken into account.
func hasToWriteCarried(bytePadding int, bytearrayOffset uint) bool {
	toWrite := int(bytearrayOffset) - bytePadding
	return toWrite > 0
}

// Append writes up to 8 bits (8-padding) of element to the buffer at the
// current bit cursor. element is left-aligned: its high (8-padding) bits
// are the meaningful ones. Returns the array's new padding.
func (a *BitByteArray) Append(element byte, padding int) int {
	validatePadding(padding)

	offset := a.bitPointer

	if offset == 0 {
		a.stream = append(a.stream, element)
		a.recomputeBitPointer(padding)
		return a.Padding()
	}

	toLastByte := shiftRight8(element, offset)
	a.stream[len(a.stream)-1] += toLastByte

	carried := shiftLeft8(element, 8-offset)

	if hasToWriteCarried(padding, offset) {
		a.stream = append(a.stream, carried)
	}

	a.recomputeBitPointer(padding)
	return a.Padding()
}

// Extend appends each byte of elements, using padding=0 for every byte
// except the last, which uses the given padding. Returns the array's new
// padding.
func (a *BitByteArray) Extend(elements []byte, padding int) int {
	validatePadding(padding)

	for i, b := range elements {
		p := 0
		if i == len(elements)-1 {
			p = padding
		}
		a.Append(b, p)
	}
	return a.Padding()
}

// ToLeft shifts the entire bit stream left by places bits, dropping the
// leading places bits.
//
// Source anomaly (see spec.md design notes): the sub-byte portion of the
// shift (places%8) is computed but its result is discarded before use, so
// only whole-byte shifts (places/8 leading bytes dropped) ever take
// effect; this mirrors that behavior exactly rather than "fixing" it,
// since it's unclear from the original whether the zeroing is deliberate.
func (a *BitByteArray) ToLeft(places int) int {
	newStart := places >> 3
	if newStart > len(a.stream) {
		newStart = len(a.stream)
	}
	a.stream = a.stream[newStart:]

	toMove := places & 7
	toMove = 0 // disabled — see doc comment above.

	if toMove == 0 {
		return a.Padding()
	}

	for i := range a.stream {
		b := a.stream[i]
		shifted := shiftLeft8(b, uint(toMove))
		a.stream[i] = shifted

		if i == 0 {
			continue
		}
		carried := shiftRight8(b, uint(8-toMove))
		a.stream[i-1] += carried
	}

	if a.Padding()+toMove >= 8 {
		a.stream = a.stream[:len(a.stream)-1]
	}

	newPadding := (a.Padding() + toMove) & 7
	a.bitPointer = 8 - uint(newPadding)

	return a.Padding()
}

package ircodecs

// BitPackingEncode packs numbers into fixed-width b-bit slots, where b is
// chosen as the bit length of the largest number. The header is a
// Variable-Byte encoding of b-1.
func BitPackingEncode(numbers []uint32) (encoded []byte, padding int, err error) {
	defer errRecover(&err)

	if len(numbers) == 0 {
		panic(ErrInvalidInput)
	}

	maxNumber := numbers[0]
	for _, n := range numbers[1:] {
		if n > maxNumber {
			maxNumber = n
		}
	}

	b := bitLen32(maxNumber)
	if b == 0 {
		b = 1
	}

	bitsRequired := b * len(numbers)
	bytesRequired := divCeil(bitsRequired, 8)

	slots := make([]byte, bytesRequired)
	offset := 0
	for _, n := range numbers {
		WriteBits8(slots, offset, n, b)
		offset += b
	}

	header := VBEncode(uint32(b - 1))
	encoded = append(append([]byte{}, header...), slots...)

	padding = 8 - (bitsRequired % 8)
	if padding == 8 {
		padding = 0
	}

	return encoded, padding, nil
}

// BitPackingDecode decodes count numbers packed by BitPackingEncode. The
// element count is needed by the caller since no padding-only boundary can
// disambiguate the final slot's value from trailing zero bits.
func BitPackingDecode(encoded []byte, count int) (decoded []uint32, err error) {
	defer errRecover(&err)

	bMinusOne, offset, verr := VBDecodeNumber(encoded, 0)
	if verr != nil {
		panic(verr)
	}
	b := int(bMinusOne) + 1
	if divCeil(offset+count*b, 8) > len(encoded) {
		panic(ErrBufferUnderrun)
	}

	decoded = make([]uint32, count)
	for i := 0; i < count; i++ {
		decoded[i] = ReadBits8(encoded, offset+i*b, b)
	}
	return decoded, nil
}

// EstimatedSizeBitPacking returns the exact encoded size, in bits, of
// numbers under Bit-Packing, including the VB-encoded b header.
func EstimatedSizeBitPacking(numbers []uint32) int {
	maxNumber := numbers[0]
	for _, n := range numbers[1:] {
		if n > maxNumber {
			maxNumber = n
		}
	}
	b := bitLen32(maxNumber)
	if b == 0 {
		b = 1
	}
	size := b * len(numbers)
	size += EstimatedSizeVB([]uint32{uint32(b)})
	return size
}

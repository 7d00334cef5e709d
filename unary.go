package ircodecs

// readSinceMasks[k] masks the low (8-k) bits of a byte — the bits at and
// after bit index k (MSB-first).
var readSinceMasks = [9]byte{0xFF, 0x7F, 0x3F, 0x1F, 0x0F, 0x07, 0x03, 0x01, 0x00}

// readMSBMasks[k] isolates the single bit at index k (MSB-first); index 8
// is a sentinel that never matches.
var readMSBMasks = [9]byte{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00}

// UnaryEncode encodes number in unary: number ones followed by a zero
// terminator. If optimize is true, the leading one is omitted (the
// decoder re-adds 1 to every decoded value); encoding 0 in optimized mode
// is an error, since there would be nothing left to represent it.
func UnaryEncode(number uint32, optimize bool) (encoded []byte, padding int, err error) {
	defer errRecover(&err)

	bytesRequired := divCeil(int(number)+1, 8)

	padding = 8 - (int(number) % 8) - 1
	if padding == 8 {
		padding = 0
	}

	encoded = make([]byte, bytesRequired)
	for i := range encoded {
		encoded[i] = 0xFF
	}
	encoded[len(encoded)-1] = shiftLeft8(encoded[len(encoded)-1], uint(padding+1))

	if optimize {
		if number == 0 {
			panic(ErrInvalidInput)
		}

		if padding == 7 {
			encoded = encoded[:len(encoded)-1]
		}

		encoded[len(encoded)-1] = shiftLeft8(encoded[len(encoded)-1], 1)

		if padding < 7 {
			padding++
		} else {
			padding = 0
		}
	}

	return encoded, padding, nil
}

// UnaryDecode decodes count unary numbers from encoded starting at
// bitOffset. isOptimized must match how the stream was encoded.
func UnaryDecode(encoded []byte, count int, isOptimized bool, bitOffset int) (decoded []uint32, err error) {
	defer errRecover(&err)

	decoded = make([]uint32, 0, count)

	base := uint32(0)
	if isOptimized {
		base = 1
	}
	number := base

	byteIndex := bitOffset >> 3
	bitIndex := uint(bitOffset & 7)

	for n := 0; n < count; n++ {
		if byteIndex >= len(encoded) {
			panic(ErrBufferUnderrun)
		}
		readMask := readSinceMasks[bitIndex]
		read := encoded[byteIndex] & readMask

		if read == readMask {
			number += uint32(8 - bitIndex)
			byteIndex++

			for byteIndex < len(encoded) && encoded[byteIndex] == 0xFF {
				number += 8
				byteIndex++
			}

			if byteIndex >= len(encoded) {
				panic(ErrBufferUnderrun)
			}
			read = encoded[byteIndex]
			bitIndex = 0
		}

		for bitIndex < 8 && read&readMSBMasks[bitIndex] != 0 {
			number++
			bitIndex++
		}

		decoded = append(decoded, number)
		number = base

		bitIndex = (bitIndex + 1) & 7
		if bitIndex == 0 {
			byteIndex++
		}
	}

	return decoded, nil
}

// EstimatedSizeUnary returns the exact encoded size, in bits, of numbers
// under unary. When optimized is false, every number also carries the bit
// for its leading one.
func EstimatedSizeUnary(numbers []uint32, optimized bool) int {
	size := 0
	for _, n := range numbers {
		size += int(n)
	}
	if !optimized {
		size += len(numbers)
	}
	return size
}

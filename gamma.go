package ircodecs

// toVB encodes number (>0) as a plain base-256 big-endian binary string
// with no terminator, after dropping its leading 1 bit — the payload of
// an Elias-Gamma code. Returns the encoded bytes and the padding of the
// final byte.
func toVB(number uint32) (encoded []byte, padding int) {
	requiredBits := bitLen32(number)
	number -= 1 << uint(requiredBits-1)

	newRequiredBits := requiredBits - 1
	requiredBytes := divCeil(newRequiredBits, 8)

	padding = 8 - (newRequiredBits & 7)
	if padding == 8 {
		padding = 0
	}

	number <<= uint(padding)
	encoded = toBytes(requiredBytes, number)
	return encoded, padding
}

// mergeGammaEncodes concatenates a unary size prefix with a binary payload
// into a single byte slice, returning the merged padding.
func mergeGammaEncodes(unaryEncode []byte, unaryPadding int, vbEncode []byte, vbPadding int) ([]byte, int) {
	merged := NewBitByteArray()
	merged.Extend(unaryEncode, unaryPadding)
	padding := merged.Extend(vbEncode, vbPadding)
	return merged.Bytes(), padding
}

// GammaEncode encodes a single positive number as Elias-Gamma: B =
// floor(log2(number)) unary-encoded, followed by the low B bits of
// number-2^B.
func GammaEncode(number uint32) (encoded []byte, padding int, err error) {
	defer errRecover(&err)

	if number == 0 {
		panic(ErrInvalidInput)
	}

	vbEncoded, vbPadding := toVB(number)

	size := len(vbEncoded)*8 - vbPadding

	uEncoded, uPadding, uerr := UnaryEncode(uint32(size), false)
	if uerr != nil {
		panic(uerr)
	}

	encoded, padding = mergeGammaEncodes(uEncoded, uPadding, vbEncoded, vbPadding)
	return encoded, padding, nil
}

// GammaDecode decodes count Elias-Gamma numbers from the start of encoded.
func GammaDecode(encoded []byte, count int) (decoded []uint32, err error) {
	defer errRecover(&err)

	decoded = make([]uint32, 0, count)
	offset := 0

	for i := 0; i < count; i++ {
		sizeList, uerr := UnaryDecode(encoded, 1, false, offset)
		if uerr != nil {
			panic(uerr)
		}
		vbSize := int(sizeList[0])

		offset += vbSize + 1
		if divCeil(offset+vbSize, 8) > len(encoded) {
			panic(ErrBufferUnderrun)
		}

		number := ReadBits8(encoded, offset, vbSize)
		number += 1 << uint(vbSize)

		decoded = append(decoded, number)
		offset += vbSize
	}

	return decoded, nil
}

// EstimatedSizeGamma returns the exact encoded size, in bits, of numbers
// under Elias-Gamma. Every number must be positive.
func EstimatedSizeGamma(numbers []uint32) int {
	size := 0
	for _, n := range numbers {
		size += (bitLen32(n)-1)*2 + 1
	}
	return size
}

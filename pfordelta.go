package ircodecs

// pforHeaderSize is the width, in bits, of the PForDelta header word.
const pforHeaderSize = 32

// pforBHeaderSize is the width, in bits, reserved for b-1 in the header.
const pforBHeaderSize = 5

// estimatePForSize estimates the encoded size, in bits, of numbers under
// NewPFor with slot width b, assuming (worst case) a full 32-bit word per
// exception.
func estimatePForSize(numbers []uint32, b int) int {
	maxNumber := simple16Masks[b]
	size := pforHeaderSize + len(numbers)*b

	exceptionCount := 0
	for _, n := range numbers {
		if n > maxNumber {
			exceptionCount++
		}
	}
	size += exceptionCount * 32
	return size
}

// findOptimalB picks the slot width b (1..32) that minimizes
// estimatePForSize, preferring the smallest b on ties.
func findOptimalB(numbers []uint32) int {
	optimalB := 1
	optimalSize := estimatePForSize(numbers, optimalB)

	for b := 2; b <= 32; b++ {
		size := estimatePForSize(numbers, b)
		if size < optimalSize {
			optimalB = b
			optimalSize = size
		}
	}
	return optimalB
}

// PForDeltaEncode encodes numbers using the NewPFor variant of PForDelta:
// a uniform b-bit slot per value, with values that overflow b bits
// recorded as (index, high-bits) exceptions in a Simple-16-compressed side
// channel.
func PForDeltaEncode(numbers []uint32) []uint32 {
	if len(numbers) == 0 {
		panic(ErrInvalidInput)
	}

	b := findOptimalB(numbers)
	mask := simple16Masks[b]

	var exceptionIndexes, exceptions []uint32

	numbersPerInt := 32 / b
	encodedSize := divCeil(len(numbers), numbersPerInt)
	encoded := make([]uint32, encodedSize)

	offset := 0
	for i, number := range numbers {
		if number > mask {
			exceptionIndexes = append(exceptionIndexes, uint32(i))
			exceptions = append(exceptions, number>>uint(b))
			number &= mask
		}
		WriteBits32(encoded, offset, number, b)
		offset += b
	}

	usedInts := divCeil(offset, 32)
	encoded = encoded[:usedInts]

	header := uint32(b-1)<<uint(32-pforBHeaderSize) + uint32(len(exceptions))
	result := make([]uint32, 0, 1+len(encoded)+len(exceptionIndexes)*2)
	result = append(result, header)
	result = append(result, encoded...)

	exceptionStream := append(append([]uint32{}, exceptionIndexes...), exceptions...)
	result = append(result, Simple16Encode(exceptionStream)...)

	return result
}

// pforHeader splits a PForDelta header word into (b, exceptionCount).
func pforHeader(headerWord uint32) (b int, exceptionCount int) {
	offset := 32 - pforBHeaderSize
	b = int(headerWord>>uint(offset)) + 1
	exceptionCount = int(headerWord & simple16Masks[offset])
	return b, exceptionCount
}

// mergePForExceptions folds (index, high-bits) exception pairs back into
// decoded, reconstructing the original values that overflowed b bits.
func mergePForExceptions(decoded []uint32, exceptions []uint32, b int) {
	middle := len(exceptions) / 2
	indexes := exceptions[:middle]
	highBits := exceptions[middle:]

	for k, idx := range indexes {
		decoded[idx] += highBits[k] << uint(b)
	}
}

// PForDeltaDecode decodes count numbers from a NewPFor-encoded stream.
func PForDeltaDecode(encoded []uint32, count int) (decoded []uint32, err error) {
	defer errRecover(&err)

	if len(encoded) == 0 {
		panic(ErrBufferUnderrun)
	}

	b, exceptionCount := pforHeader(encoded[0])
	slots := encoded[1:]
	if divCeil(count*b, 32) > len(slots) {
		panic(ErrBufferUnderrun)
	}

	decoded = make([]uint32, count)
	offset := 0
	for i := 0; i < count; i++ {
		decoded[i] = ReadBits32(slots, offset, b)
		offset += b
	}

	if exceptionCount > 0 {
		intsRead := divCeil(offset, 32)
		if intsRead > len(slots) {
			panic(ErrBufferUnderrun)
		}
		exceptions, serr := Simple16Decode(slots[intsRead:], false)
		if serr != nil {
			panic(serr)
		}
		if len(exceptions) < exceptionCount*2 {
			panic(ErrFormatError)
		}
		exceptions = exceptions[:exceptionCount*2]
		mergePForExceptions(decoded, exceptions, b)
	}

	return decoded, nil
}

package ircodecs

// simple16Formats lists, for each of the 16 Simple-16 formats (indexed
// 0..15), the bit width of each slot it packs into a 32-bit word. Ordered
// by format index; see simple16FormatKeysDescending for the order in
// which encode tries them.
var simple16Formats = [16][]int{
	0:  {28},
	1:  {14, 14},
	2:  {10, 9, 9},
	3:  {7, 7, 7, 7},
	4:  {5, 5, 6, 6, 6},
	5:  {6, 6, 6, 5, 5},
	6:  {4, 4, 5, 5, 5, 5},
	7:  {5, 5, 5, 5, 4, 4},
	8:  {4, 4, 4, 4, 4, 4, 4},
	9:  {3, 4, 4, 4, 4, 3, 3, 3},
	10: {4, 3, 3, 3, 3, 3, 3, 3, 3},
	11: {2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
	12: {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2},
	13: {1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1},
	14: {2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	15: {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// simple16FormatKeysDescending is the format table's keys in the order
// encode tries them: most-restrictive layout (most slots) first.
var simple16FormatKeysDescending = [16]int{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}

// simple16Masks[n] masks the low n bits (0<=n<=32).
var simple16Masks [33]uint32

func init() {
	for n := 0; n <= 32; n++ {
		simple16Masks[n] = uint32((uint64(1) << uint(n)) - 1)
	}
}

// findOptimalFormat returns the first format, in simple16FormatKeysDescending
// order (most slots first), whose slots can hold the next values of numbers
// from start, together with that format's slot count. Only as many values
// as remain are checked, so a short tail can take a format with more slots
// than values left; Simple16Encode leaves those unused slots zero.
func findOptimalFormat(numbers []uint32, start int) (format int, slotsUsed int) {
	for _, f := range simple16FormatKeysDescending {
		slots := simple16Formats[f]
		slotsSize := len(slots)
		if slotsSize > len(numbers)-start {
			slotsSize = len(numbers) - start
		}

		fits := true
		for i := 0; i < slotsSize; i++ {
			if numbers[start+i] > simple16Masks[slots[i]] {
				fits = false
				break
			}
		}
		if fits {
			return f, len(slots)
		}
	}
	panic(ErrFormatError)
}

// Simple16Encode packs numbers into a sequence of 32-bit words, each
// tagged in its top 4 bits with the format used to pack it.
func Simple16Encode(numbers []uint32) []uint32 {
	var encoded []uint32
	start := 0
	for start < len(numbers) {
		format, numbersToEncode := findOptimalFormat(numbers, start)
		end := start + numbersToEncode
		if end > len(numbers) {
			end = len(numbers)
		}
		toEncode := numbers[start:end]
		start += numbersToEncode

		bitsToMove := 28
		batch := uint32(format) << uint(bitsToMove)

		slots := simple16Formats[format]
		for i := range toEncode {
			bitsToMove -= slots[i]
			batch += toEncode[i] << uint(bitsToMove)
		}

		encoded = append(encoded, batch)
	}
	return encoded
}

// decodeSimple16Batch unpacks a single 32-bit word using the given format.
func decodeSimple16Batch(batch uint32, format int) []uint32 {
	slots := simple16Formats[format]
	numbers := make([]uint32, len(slots))
	offset := 0
	for i, bits := range slots {
		offset += bits
		numbers[i] = (batch >> uint(28-offset)) & simple16Masks[bits]
	}
	return numbers
}

// Simple16Decode decodes a Simple-16 stream. When stripTrailingZeros is
// true (the historical default), every trailing zero value is removed from
// the returned list: the final batch's unused slots, and also any zeros
// that were genuinely at the end of the input. Callers that need the exact
// original length (e.g. PForDelta) must pass false and re-slice to the
// known count themselves.
func Simple16Decode(encoded []uint32, stripTrailingZeros bool) (numbers []uint32, err error) {
	defer errRecover(&err)

	for _, batch := range encoded {
		format := int((batch >> 28) & simple16Masks[5])
		if format >= len(simple16Formats) {
			panic(ErrFormatError)
		}
		numbers = append(numbers, decodeSimple16Batch(batch, format)...)
	}

	if stripTrailingZeros {
		for len(numbers) > 0 && numbers[len(numbers)-1] == 0 {
			numbers = numbers[:len(numbers)-1]
		}
	}

	return numbers, nil
}

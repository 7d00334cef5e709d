package ircodecs

import (
	"math"
	"sort"
)

// bvEncode encodes numbers (sorted, non-decreasing) as a characteristic
// bit-vector: one bit per value in [0, numbers[len-1]], set iff that value
// is present.
func bvEncode(numbers []uint32) (encoded []byte, padding int) {
	maxNumber := numbers[len(numbers)-1]
	encoded = make([]byte, divCeil(int(maxNumber)+1, 8))

	for _, n := range numbers {
		arrayIndex := n >> 3
		bitIndex := n & 7
		encoded[arrayIndex] |= readMSBMasks[bitIndex]
	}

	rem := (maxNumber + 1) & 7
	padding = 8 - int(rem)
	if padding == 8 {
		padding = 0
	}
	return encoded, padding
}

// bvDecode decodes nums values from a characteristic bit-vector starting
// at bit offset. Whole 0xFF bytes are expanded as runs without a bit-by-bit
// scan.
func bvDecode(encoded []byte, nums int, offset int) []uint32 {
	decoded := make([]uint32, 0, nums)

	arrayIndex := offset >> 3
	bitIndex := offset & 7
	number := 0
	maxNumber := (len(encoded)-arrayIndex)*8 - bitIndex

	for number < maxNumber {
		if bitIndex == 0 && encoded[arrayIndex] == 0xFF {
			for k := 0; k < 8; k++ {
				decoded = append(decoded, uint32(number+k))
			}
			number += 8
			arrayIndex++
			bitIndex = 0
			continue
		}

		for readBit := bitIndex; readBit < 8; readBit++ {
			if encoded[arrayIndex]&readMSBMasks[readBit] != 0 {
				decoded = append(decoded, uint32(number))
			}
			number++
		}
		arrayIndex++
		bitIndex = 0
	}

	if len(decoded) > nums {
		decoded = decoded[:nums]
	}
	return decoded
}

// deltaEncodeSinceMin rewrites sorted (non-decreasing, non-empty) so its
// first element can be stripped off and encoded separately while the
// remainder stays monotone: see EliasFanoEncode's head-rewrite comment for
// why.
func deltaEncodeSinceMin(sorted []uint32) []uint32 {
	if sorted[0] == 0 {
		rewritten := make([]uint32, 0, len(sorted)+1)
		rewritten = append(rewritten, 0)
		rewritten = append(rewritten, sorted...)
		return rewritten
	}

	d := make([]uint32, len(sorted))
	d[0] = sorted[0]
	for i := 1; i < len(sorted); i++ {
		d[i] = sorted[i] - sorted[0]
	}

	lead := int64(d[0])
	firstTail := int64(d[1])

	// Computed in int64 rather than uint32: lead and firstTail are both
	// gaps and can legitimately be 0 (a duplicate value right at the
	// head of the input), in which case firstTail-1 goes negative and
	// must compare correctly against lead-1 rather than wrapping around.
	fanoFirst := firstTail - 1
	if lead-1 < fanoFirst {
		fanoFirst = lead - 1
	}
	vbPrefix := uint32(lead - fanoFirst)

	// The gap list reappears here in full (starting at d[1], the same
	// gap that fanoFirst was derived from) rather than being truncated:
	// fanoFirst only rewrites what vbPrefix absorbs from d[0], it doesn't
	// replace d[1]'s own entry in the tail.
	rewritten := make([]uint32, 0, len(d)+2)
	rewritten = append(rewritten, vbPrefix, uint32(fanoFirst))
	rewritten = append(rewritten, d[1:]...)
	return rewritten
}

// deltaDecodeSinceMin inverts deltaEncodeSinceMin: the first two elements
// sum to the original first number, and every later element is added to
// that sum.
func deltaDecodeSinceMin(rewritten []uint32) []uint32 {
	num1 := rewritten[0] + rewritten[1]
	decoded := make([]uint32, 0, len(rewritten)-1)
	decoded = append(decoded, num1)
	for _, n := range rewritten[2:] {
		decoded = append(decoded, num1+n)
	}
	return decoded
}

// encodeUpper gap-encodes upperNumbers and unary-encodes (unoptimized)
// each resulting gap into a single BitByteArray.
func encodeUpper(upperNumbers []uint32) (*BitByteArray, error) {
	gaps, err := GapsEncode(upperNumbers)
	if err != nil {
		return nil, err
	}

	bba := NewBitByteArray()
	for _, g := range gaps {
		encoded, padding, err := UnaryEncode(g, false)
		if err != nil {
			return nil, err
		}
		bba.Extend(encoded, padding)
	}
	return bba, nil
}

// encodeLower packs each of lowerNumbers into exactly l bits, left-aligned
// per byte, into a single BitByteArray.
func encodeLower(lowerNumbers []uint32, l int) *BitByteArray {
	padding := 8 - (l % 8)
	if padding == 8 {
		padding = 0
	}

	requiredBytes := divCeil(l, 8)

	bba := NewBitByteArray()
	for _, n := range lowerNumbers {
		shifted := n << uint(padding)
		b := toBytes(requiredBytes, shifted)
		bba.Extend(b, padding)
	}
	return bba
}

// mergeEliasFanoEncodes appends upper onto lower, prefixes the result with
// the one-byte l header, and returns the merged frame plus its padding.
// The lower stream comes first because its length is fixed (l bits per
// element), so the decoder can compute where the upper stream starts from
// l and the element count alone and walk both streams in a single loop.
func mergeEliasFanoEncodes(l int, lower *BitByteArray, upper *BitByteArray) ([]byte, int) {
	lower.Extend(upper.Bytes(), upper.Padding())

	padding := lower.Padding()
	encoded := append([]byte{byte(l)}, lower.Bytes()...)
	return encoded, padding
}

// EliasFanoEncode encodes a sorted, non-decreasing list of numbers as
// Elias-Fano: a single number is Variable-Byte only; a dense tail (more
// elements than a quarter of its max value) falls back to a characteristic
// bit-vector; otherwise the tail is split at bit l into a gap+unary-coded
// upper stream and a fixed-width lower stream.
func EliasFanoEncode(numbers []uint32) (encoded []byte, padding int, err error) {
	defer errRecover(&err)

	if len(numbers) == 0 {
		panic(ErrInvalidInput)
	}
	if len(numbers) == 1 {
		return VBEncode(numbers[0]), 0, nil
	}

	sorted := append([]uint32{}, numbers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	// Head rewrite: split the delta-since-min stream's first two elements
	// into (vbPrefix, fanoFirst) so vbPrefix can be stripped off and
	// Variable-Byte-encoded on its own while fanoFirst rejoins the tail,
	// preserving the tail's monotonicity for Elias-Fano/bit-vector coding.
	rewritten := deltaEncodeSinceMin(sorted)
	firstNumber := rewritten[0]
	tail := rewritten[1:]

	m := len(tail)
	maxNumber := tail[m-1]

	if uint32(m) > maxNumber>>2 {
		vbEncoded := VBEncode(firstNumber)
		bvEncoded, bvPadding := bvEncode(tail)

		encoded = make([]byte, 0, len(vbEncoded)+1+len(bvEncoded))
		encoded = append(encoded, vbEncoded...)
		encoded = append(encoded, 0xFF)
		encoded = append(encoded, bvEncoded...)
		return encoded, bvPadding, nil
	}

	l := int(math.Ceil(math.Log2(float64(maxNumber) / float64(m))))
	mask := simple16Masks[l]

	upperNumbers := make([]uint32, m)
	lowerNumbers := make([]uint32, m)
	for i, n := range tail {
		lower := n & mask
		upper := (n - lower) >> uint(l)
		upperNumbers[i] = upper
		lowerNumbers[i] = lower
	}

	upperBBA, uerr := encodeUpper(upperNumbers)
	if uerr != nil {
		panic(uerr)
	}
	lowerBBA := encodeLower(lowerNumbers, l)

	merged, mergedPadding := mergeEliasFanoEncodes(l, lowerBBA, upperBBA)

	vbEncoded := VBEncode(firstNumber)
	encoded = make([]byte, 0, len(vbEncoded)+len(merged))
	encoded = append(encoded, vbEncoded...)
	encoded = append(encoded, merged...)
	return encoded, mergedPadding, nil
}

// EliasFanoDecode decodes count numbers from an Elias-Fano-encoded stream.
func EliasFanoDecode(encoded []byte, count int) (decoded []uint32, err error) {
	defer errRecover(&err)

	if count <= 0 {
		panic(ErrInvalidInput)
	}
	if count == 1 {
		return VBDecode(encoded)
	}

	firstNumber, offset, verr := VBDecodeNumber(encoded, 0)
	if verr != nil {
		panic(verr)
	}

	byteIndex := offset >> 3
	if byteIndex >= len(encoded) {
		panic(ErrBufferUnderrun)
	}
	l := encoded[byteIndex]
	offset += 8

	rewritten := make([]uint32, 0, count+1)
	rewritten = append(rewritten, firstNumber)

	if l == 0xFF {
		rewritten = append(rewritten, bvDecode(encoded, count, offset)...)
		return deltaDecodeSinceMin(rewritten), nil
	}

	lBits := int(l)
	lowerOffset := offset
	upperOffset := offset + lBits*count
	if divCeil(upperOffset, 8) > len(encoded) {
		panic(ErrBufferUnderrun)
	}

	delta := uint32(0)
	for i := 0; i < count; i++ {
		lower := ReadBits8(encoded, lowerOffset, lBits)

		upperGap, uerr := UnaryDecode(encoded, 1, false, upperOffset)
		if uerr != nil {
			panic(uerr)
		}
		gap := upperGap[0]
		delta += gap

		rewritten = append(rewritten, (delta<<uint(lBits))+lower)

		lowerOffset += lBits
		upperOffset += int(gap) + 1
	}

	return deltaDecodeSinceMin(rewritten), nil
}

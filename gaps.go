package ircodecs

// GapsEncode encodes numbers as gaps: the first output element is
// numbers[0], followed by the difference of each element from its
// predecessor. numbers must be non-decreasing and non-empty.
func GapsEncode(numbers []uint32) (gaps []uint32, err error) {
	defer errRecover(&err)

	if len(numbers) == 0 {
		panic(ErrInvalidInput)
	}

	gaps = make([]uint32, len(numbers))
	gaps[0] = numbers[0]
	for i := 1; i < len(numbers); i++ {
		if numbers[i] < numbers[i-1] {
			panic(ErrInvalidInput)
		}
		gaps[i] = numbers[i] - numbers[i-1]
	}
	return gaps, nil
}

// GapsDecode inverts GapsEncode: the running prefix sum of gaps.
func GapsDecode(gaps []uint32) (numbers []uint32, err error) {
	defer errRecover(&err)

	if len(gaps) == 0 {
		panic(ErrInvalidInput)
	}

	numbers = make([]uint32, len(gaps))
	numbers[0] = gaps[0]
	for i := 1; i < len(gaps); i++ {
		numbers[i] = numbers[i-1] + gaps[i]
	}
	return numbers, nil
}

package xstrconv

// Atoi converts the decimal prefix of s to int32.
//
// It never fails: garbage gives 0, a digit run followed by anything else
// gives the value of the run. Rules applied at every position:
//   - a digit is appended to the value;
//   - '0' is appended too and counted as a leading zero;
//   - a non digit at the very first position takes a zero-valued place;
//   - a space is skipped while no zero was seen and the value is still 0;
//   - anything else stops the scan.
//
// There's no sign handling and no overflow detection, the value wraps
// like any other int32 arithmetic.
func Atoi(s string) int32 {
	var (
		value int32
		zeros int
	)

	total := Length(s)
	for cursor := 0; cursor < total; cursor++ {
		c := s[cursor]
		digit := Classify(c)

		switch {
		case digit.Ok && digit.Value == 0:
			zeros++
		case digit.Ok:
		case cursor == 0:
			// first character is never a stop point
		case c == ' ' && zeros == 0 && value == 0:
			continue
		default:
			// value only ever holds the consumed places, nothing to rescale
			return value
		}

		value = value*10 + int32(digit.Value)
	}

	return value
}

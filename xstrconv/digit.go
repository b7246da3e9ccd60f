package xstrconv

// Digit is the result of classifying a single character.
// Ok is false for anything outside '0'..'9', in that case Value is 0.
type Digit struct {
	Value int
	Ok    bool
}

var notADigit = Digit{}

// Classify returns the decimal value of c if it's an ASCII digit.
func Classify(c byte) Digit {
	if c < '0' || c > '9' {
		return notADigit
	}

	return Digit{Value: int(c - '0'), Ok: true}
}

// DigitValue returns the decimal value of c or 0 if c isn't a digit.
// It doesn't distinguish '0' from a non digit, use Classify for that.
func DigitValue(c byte) int {
	return Classify(c).Value
}

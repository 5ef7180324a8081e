package document

// CheckDigit computes one verification digit: each digit of prefix is
// multiplied by the weight at the same position, and the sum modulo 11 maps
// to 0 when below 2 and to 11 minus the remainder otherwise.
//
// Positions beyond the shorter of prefix and weights are ignored.
func CheckDigit(prefix Digits, weights Weights) int {
	sum := 0
	for i, d := range prefix {
		if i >= len(weights) {
			break
		}
		sum += d * weights[i]
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// checkDigits computes both verification digits for base, the document
// without its last two positions. The second digit is computed over base
// followed by the first one.
func checkDigits(base Digits, l layout) (int, int) {
	first := CheckDigit(base, l.first)

	extended := make(Digits, len(base), len(base)+1)
	copy(extended, base)
	second := CheckDigit(append(extended, first), l.second)

	return first, second
}

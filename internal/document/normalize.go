package document

import "fmt"

// Normalize turns input into the digit sequence of a document of type t.
//
// When masked is false the input must be exactly t.Len() ASCII digits. When
// masked is true it must follow the punctuation template of t byte by byte.
// Any deviation yields an error wrapping ErrInvalidFormat.
func Normalize(t Type, input string, masked bool) (Digits, error) {
	l, err := layoutOf(t)
	if err != nil {
		return nil, err
	}
	if masked {
		return parseMasked(input, l)
	}
	return parseBare(input, l.size)
}

func parseBare(input string, size int) (Digits, error) {
	if len(input) != size {
		return nil, fmt.Errorf("%w: expected %d digits, got %d bytes", ErrInvalidFormat, size, len(input))
	}

	digits := make(Digits, size)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if !isDigit(c) {
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidFormat, c, i)
		}
		digits[i] = int(c - '0')
	}
	return digits, nil
}

func parseMasked(input string, l layout) (Digits, error) {
	if len(input) != len(l.template) {
		return nil, fmt.Errorf("%w: expected mask %s, got %d bytes", ErrInvalidFormat, l.template, len(input))
	}

	digits := make(Digits, 0, l.size)
	for i := 0; i < len(l.template); i++ {
		c, want := input[i], l.template[i]
		if want != 'd' {
			if c != want {
				return nil, fmt.Errorf("%w: expected %q at position %d, got %q", ErrInvalidFormat, want, i, c)
			}
			continue
		}
		if !isDigit(c) {
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidFormat, c, i)
		}
		digits = append(digits, int(c-'0'))
	}
	return digits, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

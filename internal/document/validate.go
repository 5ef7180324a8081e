package document

import (
	"fmt"
	"unicode/utf8"
)

// Check validates doc as a document of type t and returns nil when it is
// valid. Repeated-digit numbers are rejected with ErrRepeatedDigits unless
// ignoreRepeated is set.
func Check(t Type, doc string, masked, ignoreRepeated bool) error {
	l, err := layoutOf(t)
	if err != nil {
		return err
	}

	digits, err := Normalize(t, doc, masked)
	if err != nil {
		return err
	}

	if !ignoreRepeated && digits.Repeated() {
		return ErrRepeatedDigits
	}

	n := l.size
	first, second := checkDigits(digits[:n-2], l)
	if digits[n-2] != first || digits[n-1] != second {
		return fmt.Errorf("%w: expected %d%d, got %d%d",
			ErrCheckDigitMismatch, first, second, digits[n-2], digits[n-1])
	}
	return nil
}

// Validate is Check collapsed to a boolean.
func Validate(t Type, doc string, masked, ignoreRepeated bool) bool {
	return Check(t, doc, masked, ignoreRepeated) == nil
}

// Is reports whether doc is a valid document of type t in either the bare
// or the masked form. Repeated-digit numbers are always rejected.
func Is(t Type, doc string) bool {
	return Validate(t, doc, IsMasked(t, doc), false)
}

// IsBare reports whether doc has the shape of a bare document of type t.
// The check digits are not verified.
func IsBare(t Type, doc string) bool {
	_, err := Normalize(t, doc, false)
	return err == nil
}

// IsMasked reports whether doc has the shape of a masked document of type t.
// The check digits are not verified.
func IsMasked(t Type, doc string) bool {
	_, err := Normalize(t, doc, true)
	return err == nil
}

// Detect returns the type of the first document type doc is valid for.
func Detect(doc string) (Type, bool) {
	for _, t := range Types {
		if Is(t, doc) {
			return t, true
		}
	}
	return "", false
}

// boundaryString reports whether s can cross into the validators from a
// foreign caller: valid UTF-8 without an embedded NUL.
func boundaryString(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return false
		}
	}
	return true
}

package document

import (
	"fmt"
	"math/rand"
	"strings"
)

// Mask formats a bare document of type t with its punctuation. It fails with
// ErrInvalidFormat when doc is not bare. Check digits are not verified.
func Mask(t Type, doc string) (string, error) {
	l, err := layoutOf(t)
	if err != nil {
		return "", err
	}

	digits, err := Normalize(t, doc, false)
	if err != nil {
		return "", fmt.Errorf("cannot mask %s: %w", t, err)
	}
	return applyTemplate(digits, l.template), nil
}

// Unmask drops every byte of doc that is not an ASCII digit.
func Unmask(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))
	for i := 0; i < len(doc); i++ {
		if isDigit(doc[i]) {
			b.WriteByte(doc[i])
		}
	}
	return b.String()
}

// Generate returns a random valid bare document of type t. It panics if t is
// not supported.
func Generate(t Type) string {
	l, err := layoutOf(t)
	if err != nil {
		panic(err)
	}
	return generate(l).String()
}

// GenerateMasked returns a random valid masked document of type t. It panics
// if t is not supported.
func GenerateMasked(t Type) string {
	l, err := layoutOf(t)
	if err != nil {
		panic(err)
	}
	return applyTemplate(generate(l), l.template)
}

func generate(l layout) Digits {
	base := make(Digits, l.size-2)
	for {
		for i := range base {
			base[i] = rand.Intn(10)
		}

		first, second := checkDigits(base, l)
		digits := append(append(Digits{}, base...), first, second)
		if !digits.Repeated() {
			return digits
		}
	}
}

func applyTemplate(digits Digits, template string) string {
	var b strings.Builder
	b.Grow(len(template))
	next := 0
	for i := 0; i < len(template); i++ {
		if template[i] != 'd' {
			b.WriteByte(template[i])
			continue
		}
		b.WriteByte(byte('0' + digits[next]))
		next++
	}
	return b.String()
}

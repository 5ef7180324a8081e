package document

import (
	"fmt"
	"strings"
)

// Type identifies a document kind.
type Type string

const (
	TypeCPF  Type = "cpf"
	TypeCNPJ Type = "cnpj"
)

// Types lists every supported document type in detection order.
var Types = []Type{TypeCPF, TypeCNPJ}

// ParseType converts a case-insensitive name into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// Valid reports whether t is a supported document type.
func (t Type) Valid() bool {
	_, ok := layouts[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Len returns the number of digits of a document of type t, or 0 if t is
// not supported.
func (t Type) Len() int {
	return layouts[t].size
}

// Digits is a normalized document: one int in 0..9 per position.
type Digits []int

// Repeated reports whether every digit is the same.
func (d Digits) Repeated() bool {
	if len(d) == 0 {
		return false
	}
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}

func (d Digits) String() string {
	var b strings.Builder
	b.Grow(len(d))
	for _, v := range d {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

// Weights is a check digit weight table, applied to the digits from the
// first position onwards.
type Weights []int

var (
	CPFFirstWeights  = Weights{10, 9, 8, 7, 6, 5, 4, 3, 2}
	CPFSecondWeights = Weights{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	CNPJFirstWeights  = Weights{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	CNPJSecondWeights = Weights{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// layout describes one document type. In template every 'd' is a digit slot
// and any other byte is literal punctuation.
type layout struct {
	size     int
	template string
	first    Weights
	second   Weights
}

var layouts = map[Type]layout{
	TypeCPF: {
		size:     11,
		template: "ddd.ddd.ddd-dd",
		first:    CPFFirstWeights,
		second:   CPFSecondWeights,
	},
	TypeCNPJ: {
		size:     14,
		template: "dd.ddd.ddd/dddd-dd",
		first:    CNPJFirstWeights,
		second:   CNPJSecondWeights,
	},
}

func layoutOf(t Type) (layout, error) {
	l, ok := layouts[t]
	if !ok {
		return layout{}, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
	return l, nil
}

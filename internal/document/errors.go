package document

import "errors"

var (
	// ErrInvalidFormat is returned when the input is not a well-formed
	// document: wrong length, a non-digit in a digit slot or a mask mismatch.
	ErrInvalidFormat = errors.New("invalid document format")

	// ErrRepeatedDigits is returned for placeholder numbers such as
	// 00000000000 whose digits are all the same.
	ErrRepeatedDigits = errors.New("document digits are all the same")

	// ErrCheckDigitMismatch is returned when the document is well formed but
	// its trailing digits differ from the computed check digits.
	ErrCheckDigitMismatch = errors.New("check digits do not match")

	// ErrUnknownType is returned for a document type other than cpf or cnpj.
	ErrUnknownType = errors.New("unknown document type")
)

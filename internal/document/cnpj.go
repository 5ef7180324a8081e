package document

// CheckCNPJ validates a CNPJ and reports why it is invalid. Repeated-digit
// numbers such as 00000000000000 are always rejected.
func CheckCNPJ(doc string, masked bool) error {
	return Check(TypeCNPJ, doc, masked, false)
}

// ValidateCNPJ reports whether doc is a valid CNPJ. Malformed input and wrong
// check digits both return false.
func ValidateCNPJ(doc string, masked bool) bool {
	return CheckCNPJ(doc, masked) == nil
}

// CNPJValidateStr is the foreign-callable form of ValidateCNPJ. Strings that
// are not valid UTF-8 or carry a NUL byte are rejected.
func CNPJValidateStr(doc string, masked bool) bool {
	return boundaryString(doc) && ValidateCNPJ(doc, masked)
}

// IsCNPJ reports whether doc is a valid CNPJ, masked or not.
func IsCNPJ(doc string) bool {
	return Is(TypeCNPJ, doc)
}

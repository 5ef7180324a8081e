package document

// CheckCPF validates a CPF and reports why it is invalid.
func CheckCPF(doc string, masked, ignoreRepeated bool) error {
	return Check(TypeCPF, doc, masked, ignoreRepeated)
}

// ValidateCPF reports whether doc is a valid CPF. Malformed input and wrong
// check digits both return false.
func ValidateCPF(doc string, masked, ignoreRepeated bool) bool {
	return Validate(TypeCPF, doc, masked, ignoreRepeated)
}

// CPFValidateStr is the foreign-callable form of ValidateCPF. Strings that
// are not valid UTF-8 or carry a NUL byte are rejected.
func CPFValidateStr(doc string, masked, ignoreRepeated bool) bool {
	return boundaryString(doc) && ValidateCPF(doc, masked, ignoreRepeated)
}

// IsCPF reports whether doc is a valid CPF, masked or not.
func IsCPF(doc string) bool {
	return Is(TypeCPF, doc)
}

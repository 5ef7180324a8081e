package main

/*
#include <stdbool.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// callCPF runs cpf_validate_str the way a C caller does. A nil doc is passed
// as NULL. intact reports whether the caller's buffer still holds doc.
func callCPF(doc *string, masked, ignoreRepeated bool) (valid, intact bool) {
	buf, release := cString(doc)
	defer release()

	valid = bool(cpf_validate_str(buf, C.bool(masked), C.bool(ignoreRepeated)))
	return valid, unchanged(buf, doc)
}

// callCNPJ runs cnpj_validate_str the way a C caller does.
func callCNPJ(doc *string, masked bool) (valid, intact bool) {
	buf, release := cString(doc)
	defer release()

	valid = bool(cnpj_validate_str(buf, C.bool(masked)))
	return valid, unchanged(buf, doc)
}

func cString(doc *string) (*C.char, func()) {
	if doc == nil {
		return nil, func() {}
	}
	buf := C.CString(*doc)
	return buf, func() { C.free(unsafe.Pointer(buf)) }
}

func unchanged(buf *C.char, doc *string) bool {
	if doc == nil {
		return buf == nil
	}
	return C.GoString(buf) == *doc
}

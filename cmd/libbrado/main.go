// Command libbrado builds the validators as a C shared library:
//
//	go build -buildmode=c-shared -o libbrado.so ./cmd/libbrado
//
// The generated header declares
//
//	bool cpf_validate_str(const char *document, bool is_masked, bool ignore_repeated);
//	bool cnpj_validate_str(const char *document, bool is_masked);
//
// The document buffer is copied and never written. A NULL pointer is
// rejected instead of dereferenced.
package main

/*
#include <stdbool.h>
*/
import "C"

import (
	"github.com/prefeitura-rio/brado/internal/document"
)

//export cpf_validate_str
func cpf_validate_str(doc *C.char, isMasked C.bool, ignoreRepeated C.bool) C.bool {
	if doc == nil {
		return C.bool(false)
	}
	return C.bool(document.CPFValidateStr(C.GoString(doc), bool(isMasked), bool(ignoreRepeated)))
}

//export cnpj_validate_str
func cnpj_validate_str(doc *C.char, isMasked C.bool) C.bool {
	if doc == nil {
		return C.bool(false)
	}
	return C.bool(document.CNPJValidateStr(C.GoString(doc), bool(isMasked)))
}

func main() {}

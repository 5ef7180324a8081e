package observability

import (
	"github.com/prefeitura-rio/brado/internal/document"
	"github.com/prefeitura-rio/brado/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF for logging, keeping only the first and third groups.
// Input may be bare or masked.
func MaskCPF(cpf string) string {
	digits := document.Unmask(cpf)
	if len(digits) != document.TypeCPF.Len() {
		return "***.***.***-**"
	}
	return digits[:3] + ".***." + digits[6:9] + "-**"
}

// MaskCNPJ masks a CNPJ for logging, keeping the first two digits and the
// branch number.
func MaskCNPJ(cnpj string) string {
	digits := document.Unmask(cnpj)
	if len(digits) != document.TypeCNPJ.Len() {
		return "**.***.***/****-**"
	}
	return digits[:2] + ".***.***/" + digits[8:12] + "-**"
}

// MaskDocument masks doc according to its declared type
func MaskDocument(t document.Type, doc string) string {
	switch t {
	case document.TypeCPF:
		return MaskCPF(doc)
	case document.TypeCNPJ:
		return MaskCNPJ(doc)
	default:
		return "********"
	}
}

// Package validators exposes document checks as go-playground/validator tags.
package validators

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/brado/internal/document"
)

const (
	// CPFTag validates a string field as a CPF, bare or masked
	CPFTag = "cpf"
	// CNPJTag validates a string field as a CNPJ, bare or masked
	CNPJTag = "cnpj"
)

// CPF reports whether the field holds a valid CPF
func CPF(fl validator.FieldLevel) bool {
	return document.IsCPF(fl.Field().String())
}

// CNPJ reports whether the field holds a valid CNPJ
func CNPJ(fl validator.FieldLevel) bool {
	return document.IsCNPJ(fl.Field().String())
}

// Register adds the document tags to v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(CPFTag, CPF); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", CPFTag, err)
	}
	if err := v.RegisterValidation(CNPJTag, CNPJ); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", CNPJTag, err)
	}
	return nil
}

// RegisterWithGin adds the document tags to gin's binding validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

package models

import (
	"errors"

	"github.com/prefeitura-rio/brado/internal/document"
)

// Validation outcomes reported in responses and metric labels
const (
	ReasonValid              = "valid"
	ReasonInvalidFormat      = "invalid_format"
	ReasonRepeatedDigits     = "repeated_digits"
	ReasonCheckDigitMismatch = "check_digit_mismatch"
)

// ValidationRequest represents a validation request carried in a JSON body
type ValidationRequest struct {
	Type           string `json:"type" binding:"required,oneof=cpf cnpj" example:"cpf"`
	Document       string `json:"document" binding:"required" example:"639.292.470-11"`
	Masked         bool   `json:"masked" example:"true"`
	IgnoreRepeated bool   `json:"ignore_repeated" example:"false"`
}

// ValidationResponse represents the outcome of a document validation
type ValidationResponse struct {
	Type     string `json:"type" example:"cpf"`
	Document string `json:"document" example:"639.292.470-11"`
	Valid    bool   `json:"valid" example:"true"`
	Reason   string `json:"reason" example:"valid"`
}

// FormatRequest asks for the bare and masked forms of already valid documents
type FormatRequest struct {
	CPF  string `json:"cpf,omitempty" binding:"omitempty,cpf" example:"63929247011"`
	CNPJ string `json:"cnpj,omitempty" binding:"omitempty,cnpj" example:"05.200.851/0001-00"`
}

// FormattedDocument holds both representations of a document
type FormattedDocument struct {
	Bare   string `json:"bare" example:"63929247011"`
	Masked string `json:"masked" example:"639.292.470-11"`
}

// FormatResponse represents the formatted documents of a FormatRequest
type FormatResponse struct {
	CPF  *FormattedDocument `json:"cpf,omitempty"`
	CNPJ *FormattedDocument `json:"cnpj,omitempty"`
}

// GenerateResponse represents a generated document
type GenerateResponse struct {
	Type     string `json:"type" example:"cnpj"`
	Document string `json:"document" example:"05200851000100"`
	Masked   bool   `json:"masked" example:"false"`
}

// ReasonFromError maps a validation error to its outcome label
func ReasonFromError(err error) string {
	switch {
	case err == nil:
		return ReasonValid
	case errors.Is(err, document.ErrRepeatedDigits):
		return ReasonRepeatedDigits
	case errors.Is(err, document.ErrCheckDigitMismatch):
		return ReasonCheckDigitMismatch
	default:
		return ReasonInvalidFormat
	}
}

// NewFormattedDocument builds both forms of a bare or masked document
func NewFormattedDocument(t document.Type, doc string) (*FormattedDocument, error) {
	bare := document.Unmask(doc)
	masked, err := document.Mask(t, bare)
	if err != nil {
		return nil, err
	}
	return &FormattedDocument{Bare: bare, Masked: masked}, nil
}

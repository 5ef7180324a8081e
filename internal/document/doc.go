// Package document validates Brazilian taxpayer registry numbers: CPF for
// individuals and CNPJ for companies.
//
// Both documents end with two check digits computed from the preceding digits
// with a weighted sum modulo 11. Inputs are accepted either bare (digits only)
// or masked with the conventional punctuation:
//
//	CPF   639.292.470-11      63929247011
//	CNPJ  05.200.851/0001-00  05200851000100
//
// The Validate* and *ValidateStr functions only answer valid or invalid. Use
// the Check* functions when the reason matters.
package document

package domain

import "strings"

// PostalCode é um CEP normalizado: exatamente 8 dígitos ASCII.
type PostalCode string

const postalCodeLen = 8

// ParsePostalCode normaliza e valida a entrada do usuário.
//
// Remove espaços nas pontas e todos os hífens; o resultado precisa ter
// exatamente 8 caracteres, todos entre '0' e '9'.
func ParsePostalCode(raw string) (PostalCode, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	if len(s) != postalCodeLen {
		return "", NewInvalidFormatError(raw)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", NewInvalidFormatError(raw)
		}
	}
	return PostalCode(s), nil
}

func (p PostalCode) String() string { return string(p) }

// Formatted devolve o CEP no formato de exibição NNNNN-NNN.
func (p PostalCode) Formatted() string {
	if len(p) != postalCodeLen {
		return string(p)
	}
	return string(p[:5]) + "-" + string(p[5:])
}

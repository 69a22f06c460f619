package tools

const CPF_LENGTH = 11

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsCpfValid checks the CPF format only: eleven digits, no check digits.
func IsCpfValid(cpf string) bool {
	return len(cpf) == CPF_LENGTH && IsDigits(cpf)
}

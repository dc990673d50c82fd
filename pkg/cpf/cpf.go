// Package cpf validates Brazilian individual taxpayer identifiers (CPF).
package cpf

// IsValid reports whether s is a valid CPF: exactly 11 digits whose two
// trailing check digits match the weighted mod-11 checksum. Sequences of a
// single repeated digit satisfy the arithmetic but are not issued, so they
// are rejected up front.
func IsValid(s string) bool {
	if len(s) != 11 {
		return false
	}

	digits := make([]int, 11)
	uniform := true
	for i := 0; i < 11; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			uniform = false
		}
	}
	if uniform {
		return false
	}

	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

// checkDigit computes a CPF check digit over the given prefix. The first
// digit weighs positions with 10..2, the second with 11..2; remainders that
// would produce 10 or 11 collapse to 0.
func checkDigit(prefix []int) int {
	sum := 0
	for i, d := range prefix {
		sum += d * (len(prefix) + 1 - i)
	}
	d := 11 - sum%11
	if d >= 10 {
		d = 0
	}
	return d
}

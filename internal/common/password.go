package common

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// PolicyLevel selects which complexity rules apply. The service wires
// PolicyBasic everywhere; PolicyStrict additionally requires a symbol.
type PolicyLevel int

const (
	PolicyBasic PolicyLevel = iota
	PolicyStrict
)

// IsComplex reports whether password meets the basic policy:
// at least 8 characters with one uppercase, one lowercase and one digit.
func IsComplex(password string) bool {
	return IsComplexLevel(password, PolicyBasic)
}

func IsComplexLevel(password string, level PolicyLevel) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if level == PolicyStrict && !hasSymbol {
		return false
	}
	return hasUpper && hasLower && hasDigit
}

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func CheckPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

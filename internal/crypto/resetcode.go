package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// LegacyResetCode is the fixed code issued by StaticResetCode
const LegacyResetCode = "RELOCATE-RESET-2025"

// ResetCodeGenerator выдает код для сброса пароля
type ResetCodeGenerator interface {
	NewResetCode() (string, error)
}

// StaticResetCode always issues the same code.
// Anyone who knows a username and the constant can reset the password;
// use RandomResetCode outside of local development.
type StaticResetCode string

// NewResetCode implements ResetCodeGenerator
func (c StaticResetCode) NewResetCode() (string, error) {
	return string(c), nil
}

// RandomResetCode issues numeric codes of Digits length from crypto/rand
type RandomResetCode struct {
	Digits int
}

// NewResetCode implements ResetCodeGenerator
func (g RandomResetCode) NewResetCode() (string, error) {
	digits := g.Digits
	if digits <= 0 {
		digits = 6
	}

	code := make([]byte, digits)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate reset code: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}

	return string(code), nil
}

package utils

import (
	"fmt"
	"math/rand"
)

const codeCharset = "0123456789"

// GenerateRandomCode returns a numeric code of the given length, used for
// MFA and password-reset mail.
func GenerateRandomCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(code)
}

// GenerateMFACode returns a zero-padded 6-digit code.
func GenerateMFACode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

package auth

import (
	"crypto/rand"
	"math/big"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ResetTokenLength is the length of password reset tokens.
const ResetTokenLength = 32

// GenerateRandomToken returns an n-character token drawn from a
// cryptographically unpredictable source. Used for reset and refresh tokens.
func GenerateRandomToken(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tokenAlphabet[idx.Int64()]
	}
	return string(buf), nil
}

// GenerateResetToken returns a fresh password reset token.
func GenerateResetToken() (string, error) {
	return GenerateRandomToken(ResetTokenLength)
}

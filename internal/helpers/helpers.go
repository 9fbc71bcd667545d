package helpers

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// HashPassword produces a salted bcrypt hash. The salt is random per call,
// so hashing the same plaintext twice yields different outputs.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("cannot hash an empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// A malformed hash compares as false rather than erroring out.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// EmailSlug lowercases a display name and strips whitespace so it can be
// used as the local part of a generated email address.
func EmailSlug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

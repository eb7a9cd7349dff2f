package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SecretSize is the length in bytes of a generated signing secret.
const SecretSize = 32

// GenerateSecret генерирует случайный секрет для подписи токенов
// Возвращает base64 (URL-safe) строку
func GenerateSecret() (string, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(secret), nil
}

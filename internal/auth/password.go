package auth

import "golang.org/x/crypto/bcrypt"

// Границы длины пароля в байтах. bcrypt не принимает больше 72 байт.
const (
	MinPasswordBytes = 8
	MaxPasswordBytes = 72
)

// PasswordLengthOK проверяет длину пароля в байтах.
func PasswordLengthOK(plain string) bool {
	return len(plain) >= MinPasswordBytes && len(plain) <= MaxPasswordBytes
}

// HashPassword хэширует пароль bcrypt'ом.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword возвращает ошибку, если пароль не совпадает с хэшем.
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}

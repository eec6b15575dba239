package pkg

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypts a secret with the cost used for the app access secret.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return BytesToString(bytes), err
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
// The login handler checks the app access secret with it.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

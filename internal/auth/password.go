package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext secret with the configured bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a plaintext secret against its stored hash.
// A non-nil error means the credentials do not match; callers report it
// generically and never distinguish it from an unknown principal.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

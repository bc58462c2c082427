package service

// PasswordHasher verifies the admin password against its stored hash.
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext matches the stored hash.
	Compare(hashed, password string) error
}

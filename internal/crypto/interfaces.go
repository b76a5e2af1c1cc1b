package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted digests and
// checks candidates against them. Plaintext is never stored.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Two calls with the same
	// input produce different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// is a mismatch, not an error.
	Verify(plaintext, digest string) bool
}

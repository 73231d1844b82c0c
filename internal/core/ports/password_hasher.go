package ports

// PasswordHasher hashes and verifies credentials. Hash salts every call, so
// two hashes of the same password differ; equality comparison of hashes is
// never a valid password check. Verify reports a plain boolean — a malformed
// stored hash counts as a failed verification, not an error, so hash-format
// problems are indistinguishable from a wrong password.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

package contract

// IHasher hashes passwords one-way and token strings for storage.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashString hashes long strings such as JWT tokens (SHA-256, not bcrypt).
	HashString(s string) string
	CheckHash(s, hash string) bool
}

package contract

// IUUIDGenerator generates new unique identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator produces random material such as OAuth state strings and
// fallback usernames.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
	// GenerateUsername builds a fallback username for accounts registered
	// without one.
	GenerateUsername() string
}

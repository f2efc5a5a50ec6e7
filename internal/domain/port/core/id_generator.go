package core

// IDGenerator produces unique transaction identifiers
type IDGenerator interface {
	// NewID returns a fresh identifier; it never returns a value twice
	NewID() string
}

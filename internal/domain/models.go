package domain

import "time"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// NormFloat64 returns a standard normally distributed float64.
	NormFloat64() float64
}

// Session is one user's walk through the page flow. It lives only in memory.
type Session struct {
	ID        string
	StackID   string
	Selection Selection
	CreatedAt time.Time
	UpdatedAt time.Time
}

package ports

import "go.trai.ch/forge/internal/core/domain"

// LockfileStore defines the interface for persisting resolved dependency pins.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockfileStore interface {
	// Read retrieves the current lockfile.
	// Returns nil, nil if no lockfile exists yet.
	Read() (*domain.Lockfile, error)

	// Write stores the lockfile.
	Write(lock domain.Lockfile) error
}

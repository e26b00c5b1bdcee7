package service

import "context"

// TokenStore is a location holding opaque session token files. Only the
// Connect client interprets file contents.
type TokenStore interface {
	// Exists reports whether the store has been created.
	Exists(ctx context.Context) bool
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// WriteFile creates the store on first use.
	WriteFile(ctx context.Context, name string, data []byte) error
	Location() string
}

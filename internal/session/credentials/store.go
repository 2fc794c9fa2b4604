// Package credentials persists the single bearer token across process
// restarts. The token is opaque bytes to this package; no validation happens
// here.
package credentials

// Store is the durable home of the bearer token. Exactly one token exists;
// Save overwrites any prior value.
type Store interface {
	Save(token string) error
	// Load returns the last saved token. ok is false when no token is
	// persisted; that is a normal state, not an error.
	Load() (token string, ok bool, err error)
	// Clear removes any persisted token. Clearing an empty store is a no-op.
	Clear() error
}

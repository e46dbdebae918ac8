package store

// Store persists the complete account set. Every Save replaces whatever was
// stored before; there are no incremental writes.
type Store interface {
	// Load returns the stored snapshot, or an empty one when nothing has been
	// saved yet.
	Load() (Snapshot, error)
	Save(snap Snapshot) error
	Close() error
}

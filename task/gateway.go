package task

// Gateway persists registry snapshots. A gateway instance is injected into
// the Manager at construction so embedders and tests can substitute their
// own backing store.
type Gateway interface {
	// Save writes the snapshot, replacing any prior document. Save must be
	// atomic with respect to partial writes.
	Save(snapshot *Snapshot) error

	// Load reads the most recently saved snapshot. It returns ErrNoDocument
	// when nothing has been saved, and ErrCorruptDocument when the stored
	// document does not match the expected shape.
	Load() (*Snapshot, error)

	// Clear removes the stored document. Clearing an absent document is not
	// an error.
	Clear() error
}

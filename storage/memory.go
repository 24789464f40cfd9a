package storage

import (
	"encoding/json"
	"fmt"

	"github.com/gf-haseeb/taskdeck/task"
)

// Memory is an in-process gateway. It keeps the last saved snapshot as an
// independent copy, so later registry mutations don't leak into it.
type Memory struct {
	snapshot *task.Snapshot

	// SaveErr, when set, makes Save fail without storing. Tests use it to
	// exercise the save-failure path.
	SaveErr error
}

var _ task.Gateway = (*Memory)(nil)

// NewMemory returns an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{}
}

// Save stores a deep copy of the snapshot.
func (g *Memory) Save(snapshot *task.Snapshot) error {
	if g.SaveErr != nil {
		return g.SaveErr
	}
	copied, err := cloneSnapshot(snapshot)
	if err != nil {
		return err
	}
	g.snapshot = copied
	return nil
}

// Load returns a deep copy of the last saved snapshot, or task.ErrNoDocument
// if nothing has been saved.
func (g *Memory) Load() (*task.Snapshot, error) {
	if g.snapshot == nil {
		return nil, task.ErrNoDocument
	}
	return cloneSnapshot(g.snapshot)
}

// Clear drops the stored snapshot.
func (g *Memory) Clear() error {
	g.snapshot = nil
	return nil
}

// cloneSnapshot deep-copies a snapshot through its JSON encoding, the same
// representation the durable gateway round-trips through.
func cloneSnapshot(snapshot *task.Snapshot) (*task.Snapshot, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	var copied task.Snapshot
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &copied, nil
}

package task

import (
	"errors"
	"fmt"
	"time"
)

// Manager is the main entry point for applications. It wraps a Registry with
// a persistence Gateway and saves the full state after every mutation.
//
// Durability is decoupled from the logical operation: when a save fails the
// in-memory mutation stays committed and the save error is returned alongside
// the operation's result. Callers that need strict durability should retry
// Save alone.
type Manager struct {
	registry *Registry
	gateway  Gateway
}

// NewManager loads state from the gateway and returns a manager. A missing
// document is treated as an empty initial state, not an error.
func NewManager(gateway Gateway) (*Manager, error) {
	if gateway == nil {
		return nil, fmt.Errorf("gateway is required")
	}

	m := &Manager{gateway: gateway}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Registry exposes the underlying registry for read-only use.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Reload replaces the in-memory state with the persisted document.
func (m *Manager) Reload() error {
	snapshot, err := m.gateway.Load()
	if errors.Is(err, ErrNoDocument) {
		m.registry = NewRegistry()
		return nil
	}
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	registry, err := NewRegistryFromSnapshot(snapshot)
	if err != nil {
		return err
	}
	m.registry = registry
	return nil
}

// Save persists the current state through the gateway.
func (m *Manager) Save() error {
	if err := m.gateway.Save(m.registry.Snapshot()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Clear removes the persisted document and resets to an empty registry.
func (m *Manager) Clear() error {
	if err := m.gateway.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	m.registry = NewRegistry()
	return nil
}

// CreateList creates a new list and saves.
func (m *Manager) CreateList(name, description string) (*List, error) {
	l, err := m.registry.CreateList(name, description)
	if err != nil {
		return nil, err
	}
	return l, m.Save()
}

// DeleteList removes a list and its metadata and saves.
func (m *Manager) DeleteList(id int) error {
	if err := m.registry.DeleteList(id); err != nil {
		return err
	}
	return m.Save()
}

// RenameList changes a list's name and saves.
func (m *Manager) RenameList(id int, name string) error {
	if err := m.registry.RenameList(id, name); err != nil {
		return err
	}
	return m.Save()
}

// SetStrategy switches the ordering strategy and saves.
func (m *Manager) SetStrategy(strategy Strategy) error {
	if err := m.registry.SetStrategy(strategy); err != nil {
		return err
	}
	return m.Save()
}

// Strategy returns the active ordering strategy.
func (m *Manager) Strategy() Strategy {
	return m.registry.Strategy()
}

// MoveList places a list at a new manual position and saves.
func (m *Manager) MoveList(id, position int) error {
	if err := m.registry.MoveList(id, position); err != nil {
		return err
	}
	return m.Save()
}

// Lists returns all lists arranged per the active ordering strategy.
func (m *Manager) Lists() []*List {
	return m.registry.OrderedLists()
}

// List returns the list with the given ID.
func (m *Manager) List(id int) (*List, error) {
	l, ok := m.registry.List(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrListNotFound, id)
	}
	return l, nil
}

// AddTask creates a task in a list and saves.
func (m *Manager) AddTask(listID int, title string, opts AddTaskOptions) (*Task, error) {
	t, err := m.registry.AddTask(listID, title, opts)
	if err != nil {
		return nil, err
	}
	return t, m.Save()
}

// Task returns a task from a list.
func (m *Manager) Task(listID, taskID int) (*Task, error) {
	return m.registry.Task(listID, taskID)
}

// Tasks returns tasks from a list, filtered and sorted per the filter.
func (m *Manager) Tasks(listID int, filter TaskFilter) ([]*Task, error) {
	return m.registry.Tasks(listID, filter)
}

// UpdateTask applies the options to a task and saves.
func (m *Manager) UpdateTask(listID, taskID int, opts UpdateTaskOptions) (*Task, error) {
	t, err := m.registry.UpdateTask(listID, taskID, opts)
	if err != nil {
		return nil, err
	}
	return t, m.Save()
}

// SetTaskStatus updates just a task's status and saves.
func (m *Manager) SetTaskStatus(listID, taskID int, status Status) (*Task, error) {
	return m.UpdateTask(listID, taskID, UpdateTaskOptions{Status: &status})
}

// DeleteTask removes a task from a list and saves.
func (m *Manager) DeleteTask(listID, taskID int) error {
	if err := m.registry.DeleteTask(listID, taskID); err != nil {
		return err
	}
	return m.Save()
}

// MoveTask relocates a task between lists and saves. On a save failure the
// returned task is non-nil and the move stays applied.
func (m *Manager) MoveTask(sourceListID, taskID, targetListID int) (*Task, error) {
	t, err := m.registry.MoveTask(sourceListID, taskID, targetListID)
	if err != nil {
		return nil, err
	}
	return t, m.Save()
}

// ClearCompleted removes all completed tasks from a list and saves. Returns
// how many tasks were removed.
func (m *Manager) ClearCompleted(listID int) (int, error) {
	l, ok := m.registry.List(listID)
	if !ok {
		return 0, fmt.Errorf("%w: id %d", ErrListNotFound, listID)
	}
	removed := l.ClearCompleted()
	if removed == 0 {
		return 0, nil
	}
	m.registry.modifiedAt = time.Now()
	return removed, m.Save()
}

// Search returns tasks across all lists matching the query.
func (m *Manager) Search(query string, field SearchField) ([]SearchResult, error) {
	return m.registry.Search(query, field)
}

// Statistics computes aggregate counts over all lists and tasks.
func (m *Manager) Statistics() Statistics {
	return m.registry.Statistics()
}

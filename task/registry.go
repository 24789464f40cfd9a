package task

import (
	"fmt"
	"strings"
	"time"
)

// ListMeta holds per-list ordering metadata, kept separately from the list
// itself. CreatedAt is recorded independently of the list's own timestamp so
// creation-order sorting survives a restore that rewrites list fields.
type ListMeta struct {
	// CustomIndex encodes the user-chosen position. Only the manual strategy
	// reads it, but it is maintained under every strategy so switching back
	// to manual restores the old order.
	CustomIndex int `json:"custom_index"`

	// CreatedAt is when the list was registered.
	CreatedAt time.Time `json:"created_at"`
}

// Registry owns all lists, their ordering metadata, and the active ordering
// strategy. It assigns list and task IDs monotonically; IDs are never reused.
//
// Registry is not safe for concurrent use. The manager and CLI drive it from
// a single goroutine.
type Registry struct {
	lists      []*List
	meta       map[int]ListMeta
	strategy   Strategy
	createdAt  time.Time
	modifiedAt time.Time
	nextListID int
	nextTaskID int
}

// NewRegistry returns an empty registry using the default ordering strategy.
func NewRegistry() *Registry {
	now := time.Now()
	return &Registry{
		meta:       make(map[int]ListMeta),
		strategy:   DefaultStrategy,
		createdAt:  now,
		modifiedAt: now,
		nextListID: 1,
		nextTaskID: 1,
	}
}

// Strategy returns the active ordering strategy.
func (r *Registry) Strategy() Strategy {
	return r.strategy
}

// SetStrategy switches the active ordering strategy. Existing custom indices
// are preserved, so switching away from manual and back restores the old
// manual order.
func (r *Registry) SetStrategy(strategy Strategy) error {
	normalized, err := NormalizeStrategy(strategy)
	if err != nil {
		return err
	}
	r.strategy = normalized
	r.modifiedAt = time.Now()
	return nil
}

// ListCount returns the number of lists in the registry.
func (r *Registry) ListCount() int {
	return len(r.lists)
}

// List returns the list with the given ID, or false if not present.
func (r *Registry) List(id int) (*List, bool) {
	for _, l := range r.lists {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// Meta returns the ordering metadata for a list, or false if not present.
func (r *Registry) Meta(id int) (ListMeta, bool) {
	m, ok := r.meta[id]
	return m, ok
}

// AllLists returns a copy of the lists in creation order, ignoring the
// active ordering strategy.
func (r *Registry) AllLists() []*List {
	return append([]*List(nil), r.lists...)
}

// OrderedLists returns the lists arranged per the active ordering strategy.
// The order is recomputed on every call.
func (r *Registry) OrderedLists() []*List {
	return orderedLists(r.strategy, r.lists, r.meta)
}

// CreateList creates a new list and registers its ordering metadata. The new
// list is placed last in manual order regardless of the active strategy.
func (r *Registry) CreateList(name, description string) (*List, error) {
	if err := ValidateListName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	l := &List{
		ID:          r.nextListID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	r.nextListID++

	r.lists = append(r.lists, l)
	r.meta[l.ID] = ListMeta{
		CustomIndex: r.maxCustomIndex() + 1,
		CreatedAt:   now,
	}
	r.modifiedAt = now
	return l, nil
}

// maxCustomIndex returns the highest custom index in use, or -1 when the
// registry holds no metadata.
func (r *Registry) maxCustomIndex() int {
	max := -1
	for _, m := range r.meta {
		if m.CustomIndex > max {
			max = m.CustomIndex
		}
	}
	return max
}

// DeleteList removes a list and its metadata. Other lists keep their custom
// indices; manual order is renumbered only by MoveList.
func (r *Registry) DeleteList(id int) error {
	for i, l := range r.lists {
		if l.ID == id {
			r.lists = append(r.lists[:i], r.lists[i+1:]...)
			delete(r.meta, id)
			r.modifiedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrListNotFound, id)
}

// RenameList changes a list's name.
func (r *Registry) RenameList(id int, name string) error {
	if err := ValidateListName(name); err != nil {
		return err
	}
	l, ok := r.List(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrListNotFound, id)
	}
	l.Name = strings.TrimSpace(name)
	now := time.Now()
	l.ModifiedAt = now
	r.modifiedAt = now
	return nil
}

// MoveList places a list at the given position (0-indexed) in the manual
// order. All other lists keep their relative order, and custom indices are
// renumbered 0..N-1. Only valid under the manual strategy.
func (r *Registry) MoveList(id, position int) error {
	if r.strategy != StrategyManual {
		return fmt.Errorf("%w: active strategy is %q", ErrManualOnly, r.strategy)
	}
	if _, ok := r.List(id); !ok {
		return fmt.Errorf("%w: id %d", ErrListNotFound, id)
	}
	if position < 0 || position >= len(r.lists) {
		return fmt.Errorf("%w: position must be between 0 and %d", ErrInvalidPosition, len(r.lists)-1)
	}

	ordered := orderedLists(StrategyManual, r.lists, r.meta)

	var moved *List
	sequence := make([]*List, 0, len(ordered))
	for _, l := range ordered {
		if l.ID == id {
			moved = l
			continue
		}
		sequence = append(sequence, l)
	}
	sequence = append(sequence[:position], append([]*List{moved}, sequence[position:]...)...)

	for i, l := range sequence {
		m := r.meta[l.ID]
		m.CustomIndex = i
		r.meta[l.ID] = m
	}
	r.modifiedAt = time.Now()
	return nil
}

// AddTaskOptions configures a new task. Zero values fall back to defaults.
type AddTaskOptions struct {
	// Description provides additional context.
	Description string

	// Status is the initial state. Defaults to StatusTodo.
	Status Status

	// Priority is the importance level. Defaults to PriorityMedium.
	Priority Priority

	// DueDate is an optional deadline.
	DueDate *time.Time

	// Tags categorize the task. Normalized to lowercase, deduplicated.
	Tags []string
}

// AddTask creates a task in the given list.
func (r *Registry) AddTask(listID int, title string, opts AddTaskOptions) (*Task, error) {
	l, ok := r.List(listID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrListNotFound, listID)
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	if opts.Status == "" {
		opts.Status = DefaultStatus
	}
	status, err := normalizeStatusInput(opts.Status)
	if err != nil {
		return nil, err
	}

	if opts.Priority == "" {
		opts.Priority = DefaultPriority
	}
	priority, err := normalizePriorityInput(opts.Priority)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Task{
		ID:          r.nextTaskID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(opts.Description),
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if opts.DueDate != nil {
		due := *opts.DueDate
		t.DueDate = &due
	}
	for _, tag := range opts.Tags {
		if err := t.AddTag(tag); err != nil {
			return nil, err
		}
	}
	t.ModifiedAt = now
	r.nextTaskID++

	l.attach(t, now)
	r.modifiedAt = now
	return t, nil
}

// Task returns a task from a list.
func (r *Registry) Task(listID, taskID int) (*Task, error) {
	l, ok := r.List(listID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrListNotFound, listID)
	}
	t, ok := l.Task(taskID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d in list %d", ErrTaskNotFound, taskID, listID)
	}
	return t, nil
}

// Tasks returns tasks from a list, filtered and sorted per the filter.
func (r *Registry) Tasks(listID int, filter TaskFilter) ([]*Task, error) {
	l, ok := r.List(listID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrListNotFound, listID)
	}
	return l.FilteredTasks(filter)
}

// UpdateTaskOptions configures fields to update on a task. Nil pointers mean
// "don't update this field".
type UpdateTaskOptions struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     **time.Time
	Tags        *[]string
}

// UpdateTask applies the options to a task. Validation happens before any
// field is written, so a failed update leaves the task unchanged.
func (r *Registry) UpdateTask(listID, taskID int, opts UpdateTaskOptions) (*Task, error) {
	t, err := r.Task(listID, taskID)
	if err != nil {
		return nil, err
	}

	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Status != nil {
		normalized, err := normalizeStatusInput(*opts.Status)
		if err != nil {
			return nil, err
		}
		opts.Status = &normalized
	}
	if opts.Priority != nil {
		normalized, err := normalizePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}
	if opts.Tags != nil {
		for _, tag := range *opts.Tags {
			if strings.TrimSpace(tag) == "" {
				return nil, ErrEmptyTag
			}
		}
	}

	if opts.Title != nil {
		t.Title = strings.TrimSpace(*opts.Title)
	}
	if opts.Description != nil {
		t.Description = strings.TrimSpace(*opts.Description)
	}
	if opts.Status != nil {
		t.Status = *opts.Status
	}
	if opts.Priority != nil {
		t.Priority = *opts.Priority
	}
	if opts.DueDate != nil {
		if *opts.DueDate == nil {
			t.DueDate = nil
		} else {
			due := **opts.DueDate
			t.DueDate = &due
		}
	}
	if opts.Tags != nil {
		t.Tags = nil
		for _, tag := range *opts.Tags {
			if err := t.AddTag(tag); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now()
	t.ModifiedAt = now
	r.modifiedAt = now
	return t, nil
}

// DeleteTask removes a task from a list entirely.
func (r *Registry) DeleteTask(listID, taskID int) error {
	l, ok := r.List(listID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrListNotFound, listID)
	}
	now := time.Now()
	if _, ok := l.detach(taskID, now); !ok {
		return fmt.Errorf("%w: id %d in list %d", ErrTaskNotFound, taskID, listID)
	}
	r.modifiedAt = now
	return nil
}

// MoveTask relocates a task from one list to another. The task keeps its ID
// and every field except ModifiedAt. Preconditions are checked in order
// before any mutation, so a failed move leaves both lists unchanged:
//
//  1. the source list must exist
//  2. the target list must exist
//  3. source and target must differ
//  4. the task must exist in the source list
func (r *Registry) MoveTask(sourceListID, taskID, targetListID int) (*Task, error) {
	source, ok := r.List(sourceListID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrSourceListNotFound, sourceListID)
	}
	target, ok := r.List(targetListID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrTargetListNotFound, targetListID)
	}
	if sourceListID == targetListID {
		return nil, fmt.Errorf("%w: id %d", ErrSameList, sourceListID)
	}
	if _, ok := source.Task(taskID); !ok {
		return nil, fmt.Errorf("%w: id %d in list %d", ErrTaskNotFound, taskID, sourceListID)
	}

	now := time.Now()
	t, _ := source.detach(taskID, now)
	target.attach(t, now)
	t.ModifiedAt = now
	r.modifiedAt = now
	return t, nil
}

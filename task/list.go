package task

import (
	"fmt"
	"sort"
	"time"
)

// List represents a named group of tasks.
type List struct {
	// ID is a unique identifier assigned by the owning Registry.
	ID int `json:"id"`

	// Name is the display name of the list (max 100 chars, not unique).
	Name string `json:"name"`

	// Description provides additional context about the list.
	Description string `json:"description"`

	// CreatedAt is when the list was created.
	CreatedAt time.Time `json:"created_at"`

	// ModifiedAt is when the list or its membership was last modified.
	ModifiedAt time.Time `json:"modified_at"`

	// Tasks holds the list's tasks in insertion order. Display order is
	// computed on read via SortField.
	Tasks []*Task `json:"tasks"`
}

// SortField selects how tasks within a list are sorted for display.
type SortField string

const (
	// SortByCreated sorts tasks oldest first. This is the default.
	SortByCreated SortField = "created_at"

	// SortByModified sorts tasks least recently modified first.
	SortByModified SortField = "modified_at"

	// SortByPriority sorts tasks highest priority first.
	SortByPriority SortField = "priority"
)

// TaskFilter configures which tasks a list returns and in what order.
type TaskFilter struct {
	// Status filters by exact status match. Nil means all statuses.
	Status *Status

	// SortBy selects the sort field. Empty means SortByCreated.
	SortBy SortField
}

// Task returns the task with the given ID, or false if not present.
func (l *List) Task(id int) (*Task, bool) {
	for _, t := range l.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// TaskCount returns the number of tasks in the list.
func (l *List) TaskCount() int {
	return len(l.Tasks)
}

// FilteredTasks returns the list's tasks filtered and sorted per the filter.
// The returned slice is freshly allocated; the tasks are shared.
func (l *List) FilteredTasks(filter TaskFilter) ([]*Task, error) {
	if filter.Status != nil {
		normalized, err := normalizeStatusInput(*filter.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &normalized
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = SortByCreated
	}

	var less func(a, b *Task) bool
	switch sortBy {
	case SortByCreated:
		less = func(a, b *Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByModified:
		less = func(a, b *Task) bool { return a.ModifiedAt.Before(b.ModifiedAt) }
	case SortByPriority:
		less = func(a, b *Task) bool { return PriorityRank(a.Priority) < PriorityRank(b.Priority) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, sortBy)
	}

	result := make([]*Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		result = append(result, t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result, nil
}

// LatestTaskCreatedAt returns the creation time of the most recently created
// task, or false if the list has no tasks.
func (l *List) LatestTaskCreatedAt() (time.Time, bool) {
	if len(l.Tasks) == 0 {
		return time.Time{}, false
	}
	latest := l.Tasks[0].CreatedAt
	for _, t := range l.Tasks[1:] {
		if t.CreatedAt.After(latest) {
			latest = t.CreatedAt
		}
	}
	return latest, true
}

// ClearCompleted removes all completed tasks and returns how many were
// removed.
func (l *List) ClearCompleted() int {
	kept := l.Tasks[:0]
	for _, t := range l.Tasks {
		if t.Status != StatusCompleted {
			kept = append(kept, t)
		}
	}
	removed := len(l.Tasks) - len(kept)
	l.Tasks = kept
	if removed > 0 {
		l.ModifiedAt = time.Now()
	}
	return removed
}

// attach appends a task to the list and refreshes the list's modified time.
func (l *List) attach(t *Task, now time.Time) {
	l.Tasks = append(l.Tasks, t)
	l.ModifiedAt = now
}

// detach removes the task with the given ID and returns it, or false if not
// present.
func (l *List) detach(id int, now time.Time) (*Task, bool) {
	for i, t := range l.Tasks {
		if t.ID == id {
			l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
			l.ModifiedAt = now
			return t, true
		}
	}
	return nil, false
}

// clone returns a deep copy of the list and its tasks.
func (l *List) clone() *List {
	copied := *l
	copied.Tasks = make([]*Task, len(l.Tasks))
	for i, t := range l.Tasks {
		copied.Tasks[i] = t.clone()
	}
	return &copied
}

package task

import (
	"strings"
	"time"
)

// Task represents a single to-do item.
type Task struct {
	// ID is a unique identifier assigned by the owning Registry. IDs are
	// monotonic and never reused, so a task keeps its ID when moved between
	// lists.
	ID int `json:"id"`

	// Title is the short summary of the task (max 200 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// DueDate is an optional deadline (nil when unset).
	DueDate *time.Time `json:"due_date"`

	// Tags categorize the task. Tags are lowercased and deduplicated.
	Tags []string `json:"tags"`

	// CreatedAt is when the task was created. Immutable after creation.
	CreatedAt time.Time `json:"created_at"`

	// ModifiedAt is when the task was last modified.
	ModifiedAt time.Time `json:"modified_at"`
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// AddTag adds a tag to the task. Tags are normalized to lowercase and
// duplicates are ignored.
func (t *Task) AddTag(tag string) error {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ErrEmptyTag
	}
	if t.HasTag(tag) {
		return nil
	}
	t.Tags = append(t.Tags, tag)
	t.ModifiedAt = time.Now()
	return nil
}

// RemoveTag removes a tag from the task if present.
func (t *Task) RemoveTag(tag string) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, existing := range t.Tags {
		if existing == tag {
			t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
			t.ModifiedAt = time.Now()
			return
		}
	}
}

// clone returns a deep copy of the task.
func (t *Task) clone() *Task {
	copied := *t
	if t.DueDate != nil {
		due := *t.DueDate
		copied.DueDate = &due
	}
	copied.Tags = append([]string(nil), t.Tags...)
	return &copied
}

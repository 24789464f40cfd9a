package task

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistry_CreateList(t *testing.T) {
	r := NewRegistry()

	l, err := r.CreateList("Work", "things to do at work")
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}

	if l.ID != 1 {
		t.Errorf("expected ID 1, got %d", l.ID)
	}
	if l.Name != "Work" {
		t.Errorf("expected name 'Work', got %q", l.Name)
	}
	if l.CreatedAt.IsZero() || l.ModifiedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	meta, ok := r.Meta(l.ID)
	if !ok {
		t.Fatal("expected metadata entry for new list")
	}
	if meta.CustomIndex != 0 {
		t.Errorf("expected first custom index 0, got %d", meta.CustomIndex)
	}
	if meta.CreatedAt.IsZero() {
		t.Error("expected metadata created_at to be set")
	}
}

func TestRegistry_CreateList_AssignsMonotonicIDs(t *testing.T) {
	r := NewRegistry()

	first, _ := r.CreateList("First", "")
	second, _ := r.CreateList("Second", "")
	if err := r.DeleteList(first.ID); err != nil {
		t.Fatalf("failed to delete list: %v", err)
	}
	third, _ := r.CreateList("Third", "")

	if second.ID != first.ID+1 {
		t.Errorf("expected sequential IDs, got %d then %d", first.ID, second.ID)
	}
	if third.ID <= second.ID {
		t.Errorf("expected ID %d to not be reused, got %d", first.ID, third.ID)
	}
}

func TestRegistry_CreateList_EmptyName(t *testing.T) {
	r := NewRegistry()

	if _, err := r.CreateList("", ""); !errors.Is(err, ErrEmptyListName) {
		t.Errorf("expected ErrEmptyListName, got %v", err)
	}
	if _, err := r.CreateList("   ", ""); !errors.Is(err, ErrEmptyListName) {
		t.Errorf("expected ErrEmptyListName for blank name, got %v", err)
	}
	long := strings.Repeat("x", MaxListNameLength+1)
	if _, err := r.CreateList(long, ""); !errors.Is(err, ErrListNameTooLong) {
		t.Errorf("expected ErrListNameTooLong, got %v", err)
	}
}

func TestRegistry_CreateList_CustomIndexContinuesAfterDelete(t *testing.T) {
	r := NewRegistry()

	a, _ := r.CreateList("A", "")
	b, _ := r.CreateList("B", "")
	c, _ := r.CreateList("C", "")

	if err := r.DeleteList(b.ID); err != nil {
		t.Fatalf("failed to delete list: %v", err)
	}

	// Remaining indices are not renumbered by deletion.
	if meta, _ := r.Meta(c.ID); meta.CustomIndex != 2 {
		t.Errorf("expected C to keep index 2, got %d", meta.CustomIndex)
	}

	d, _ := r.CreateList("D", "")
	if meta, _ := r.Meta(d.ID); meta.CustomIndex != 3 {
		t.Errorf("expected D to get index max+1 = 3, got %d", meta.CustomIndex)
	}

	_ = a
}

func TestRegistry_DeleteList_RemovesMetadataAtomically(t *testing.T) {
	r := NewRegistry()

	l, _ := r.CreateList("Doomed", "")
	if err := r.DeleteList(l.ID); err != nil {
		t.Fatalf("failed to delete list: %v", err)
	}

	if _, ok := r.List(l.ID); ok {
		t.Error("expected list to be gone")
	}
	if _, ok := r.Meta(l.ID); ok {
		t.Error("expected metadata entry to be gone")
	}
}

func TestRegistry_DeleteList_NotFound(t *testing.T) {
	r := NewRegistry()

	if err := r.DeleteList(99); !errors.Is(err, ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestRegistry_RenameList(t *testing.T) {
	r := NewRegistry()

	l, _ := r.CreateList("Old name", "")
	before := l.ModifiedAt

	if err := r.RenameList(l.ID, "New name"); err != nil {
		t.Fatalf("failed to rename list: %v", err)
	}
	if l.Name != "New name" {
		t.Errorf("expected name 'New name', got %q", l.Name)
	}
	if l.ModifiedAt.Before(before) {
		t.Error("expected modified_at to be refreshed")
	}

	if err := r.RenameList(l.ID, ""); !errors.Is(err, ErrEmptyListName) {
		t.Errorf("expected ErrEmptyListName, got %v", err)
	}
	if err := r.RenameList(99, "Whatever"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestRegistry_SetStrategy(t *testing.T) {
	r := NewRegistry()

	if r.Strategy() != StrategyManual {
		t.Errorf("expected default strategy 'manual', got %q", r.Strategy())
	}

	if err := r.SetStrategy(StrategyAlphabetical); err != nil {
		t.Fatalf("failed to set strategy: %v", err)
	}
	if r.Strategy() != StrategyAlphabetical {
		t.Errorf("expected strategy 'alphabetical', got %q", r.Strategy())
	}

	// Input is normalized the way status and priority inputs are.
	if err := r.SetStrategy(Strategy("MANUAL")); err != nil {
		t.Fatalf("failed to set uppercase strategy: %v", err)
	}
	if r.Strategy() != StrategyManual {
		t.Errorf("expected strategy 'manual', got %q", r.Strategy())
	}

	if err := r.SetStrategy(Strategy("bogus")); !errors.Is(err, ErrInvalidStrategy) {
		t.Errorf("expected ErrInvalidStrategy, got %v", err)
	}
}

func TestRegistry_AddTask_Defaults(t *testing.T) {
	r := NewRegistry()
	l, _ := r.CreateList("Inbox", "")

	created, err := r.AddTask(l.ID, "Pay rent", AddTaskOptions{})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("expected task ID 1, got %d", created.ID)
	}
	if created.Status != StatusTodo {
		t.Errorf("expected status 'todo', got %q", created.Status)
	}
	if created.Priority != PriorityMedium {
		t.Errorf("expected priority 'medium', got %q", created.Priority)
	}
	if created.DueDate != nil {
		t.Error("expected no due date")
	}
}

func TestRegistry_AddTask_NormalizesTags(t *testing.T) {
	r := NewRegistry()
	l, _ := r.CreateList("Inbox", "")

	created, err := r.AddTask(l.ID, "Read paper", AddTaskOptions{
		Tags: []string{"Research", "research", " URGENT "},
	})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if len(created.Tags) != 2 {
		t.Fatalf("expected 2 tags after dedup, got %v", created.Tags)
	}
	if created.Tags[0] != "research" || created.Tags[1] != "urgent" {
		t.Errorf("expected lowercased tags, got %v", created.Tags)
	}
}

func TestRegistry_AddTask_Validation(t *testing.T) {
	r := NewRegistry()
	l, _ := r.CreateList("Inbox", "")

	if _, err := r.AddTask(99, "Nope", AddTaskOptions{}); !errors.Is(err, ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
	if _, err := r.AddTask(l.ID, "", AddTaskOptions{}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := r.AddTask(l.ID, "x", AddTaskOptions{Status: "later"}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := r.AddTask(l.ID, "x", AddTaskOptions{Priority: "urgent"}); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestRegistry_UpdateTask(t *testing.T) {
	r := NewRegistry()
	l, _ := r.CreateList("Inbox", "")
	created, _ := r.AddTask(l.ID, "Draft report", AddTaskOptions{})

	title := "Draft quarterly report"
	status := Status("IN_PROGRESS")
	updated, err := r.UpdateTask(l.ID, created.ID, UpdateTaskOptions{
		Title:  &title,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
	if updated.Status != StatusInProgress {
		t.Errorf("expected normalized status 'in_progress', got %q", updated.Status)
	}
}

func TestRegistry_UpdateTask_InvalidLeavesTaskUnchanged(t *testing.T) {
	r := NewRegistry()
	l, _ := r.CreateList("Inbox", "")
	created, _ := r.AddTask(l.ID, "Keep me", AddTaskOptions{})

	title := "New title"
	bad := Status("bogus")
	_, err := r.UpdateTask(l.ID, created.ID, UpdateTaskOptions{
		Title:  &title,
		Status: &bad,
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if created.Title != "Keep me" {
		t.Errorf("expected title to be unchanged, got %q", created.Title)
	}
	if created.Status != StatusTodo {
		t.Errorf("expected status to be unchanged, got %q", created.Status)
	}
}

func TestRegistry_DeleteTask(t *testing.T) {
	r := NewRegistry()
	l, _ := r.CreateList("Inbox", "")
	created, _ := r.AddTask(l.ID, "Throw away", AddTaskOptions{})

	if err := r.DeleteTask(l.ID, created.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if l.TaskCount() != 0 {
		t.Errorf("expected empty list, got %d tasks", l.TaskCount())
	}
	if err := r.DeleteTask(l.ID, created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRegistry_TaskIDsUniqueAcrossLists(t *testing.T) {
	r := NewRegistry()
	a, _ := r.CreateList("A", "")
	b, _ := r.CreateList("B", "")

	t1, _ := r.AddTask(a.ID, "one", AddTaskOptions{})
	t2, _ := r.AddTask(b.ID, "two", AddTaskOptions{})
	t3, _ := r.AddTask(a.ID, "three", AddTaskOptions{})

	if t1.ID == t2.ID || t2.ID == t3.ID || t1.ID == t3.ID {
		t.Errorf("expected unique IDs, got %d, %d, %d", t1.ID, t2.ID, t3.ID)
	}
}

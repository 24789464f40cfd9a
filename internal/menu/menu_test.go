package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gf-haseeb/taskdeck/storage"
	"github.com/gf-haseeb/taskdeck/task"
)

func newTestModel(t *testing.T) (Model, *task.Manager) {
	t.Helper()
	manager, err := task.NewManager(&storage.Memory{})
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	work, err := manager.CreateList("Work", "")
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}
	if _, err := manager.CreateList("Personal", ""); err != nil {
		t.Fatalf("failed to create list: %v", err)
	}
	if _, err := manager.AddTask(work.ID, "Write report", task.AddTaskOptions{}); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	return New(manager), manager
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_CursorNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	if m.listCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", m.listCursor)
	}

	m = press(m, "j")
	if m.listCursor != 1 {
		t.Errorf("expected cursor at 1 after j, got %d", m.listCursor)
	}

	// Cursor clamps at the last list.
	m = press(m, "j")
	if m.listCursor != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", m.listCursor)
	}

	m = press(m, "k")
	if m.listCursor != 0 {
		t.Errorf("expected cursor back at 0, got %d", m.listCursor)
	}
}

func TestModel_TabSwitchesFocus(t *testing.T) {
	m, _ := newTestModel(t)
	if m.focus != paneLists {
		t.Fatal("expected lists pane focused initially")
	}
	m = press(m, "tab")
	if m.focus != paneTasks {
		t.Error("expected tasks pane focused after tab")
	}
	m = press(m, "tab")
	if m.focus != paneLists {
		t.Error("expected lists pane focused after second tab")
	}
}

func TestModel_AdvanceTaskStatus(t *testing.T) {
	m, manager := newTestModel(t)
	m = press(m, "tab")

	m = press(m, "enter")
	list := m.selectedList()
	got, err := manager.Task(list.ID, list.Tasks[0].ID)
	if err != nil {
		t.Fatalf("failed to fetch task: %v", err)
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("expected in_progress after enter, got %q", got.Status)
	}

	m = press(m, "enter")
	got, _ = manager.Task(list.ID, list.Tasks[0].ID)
	if got.Status != task.StatusCompleted {
		t.Errorf("expected completed after second enter, got %q", got.Status)
	}

	m = press(m, "enter")
	got, _ = manager.Task(list.ID, list.Tasks[0].ID)
	if got.Status != task.StatusTodo {
		t.Errorf("expected status to wrap back to todo, got %q", got.Status)
	}
}

func TestModel_DeleteTask(t *testing.T) {
	m, manager := newTestModel(t)
	m = press(m, "tab")
	m = press(m, "d")

	lists := manager.Lists()
	for _, l := range lists {
		if l.Name == "Work" && l.TaskCount() != 0 {
			t.Errorf("expected task deleted, %d remain", l.TaskCount())
		}
	}
}

func TestModel_CycleStrategy(t *testing.T) {
	m, manager := newTestModel(t)
	before := manager.Strategy()

	m = press(m, "o")
	after := manager.Strategy()
	if after == before {
		t.Error("expected strategy to change")
	}
	if m.statusErr {
		t.Errorf("unexpected error status: %q", m.status)
	}

	// Cycling through every strategy returns to the start.
	for i := 1; i < len(task.ValidStrategies()); i++ {
		m = press(m, "o")
	}
	if got := manager.Strategy(); got != before {
		t.Errorf("expected full cycle back to %q, got %q", before, got)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected quit message")
	}
}

// Package menu implements the interactive terminal front-end: a two-pane
// view over the lists and tasks managed by a task.Manager.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gf-haseeb/taskdeck/task"
)

type pane int

const (
	paneLists pane = iota
	paneTasks
)

// Model is the bubbletea model for the menu.
type Model struct {
	manager *task.Manager

	lists      []*task.List
	listCursor int
	taskCursor int
	focus      pane

	status    string
	statusErr bool

	width  int
	height int
}

// Run starts the menu and blocks until the user quits.
func Run(manager *task.Manager) error {
	if manager == nil {
		return fmt.Errorf("manager is required")
	}
	program := tea.NewProgram(New(manager), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// New returns a menu model over the manager's current state.
func New(manager *task.Manager) Model {
	m := Model{manager: manager}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "left", "right", "h", "l":
		if m.focus == paneLists {
			m.focus = paneTasks
		} else {
			m.focus = paneLists
		}
		m.taskCursor = 0

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "o":
		m.cycleStrategy()

	case "enter", " ":
		if m.focus == paneTasks {
			m.advanceTaskStatus()
		}

	case "d":
		if m.focus == paneTasks {
			m.deleteSelectedTask()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.focus == paneLists {
		m.listCursor = clamp(m.listCursor+delta, len(m.lists))
		m.taskCursor = 0
		return
	}
	if l := m.selectedList(); l != nil {
		m.taskCursor = clamp(m.taskCursor+delta, l.TaskCount())
	}
}

func (m *Model) cycleStrategy() {
	strategies := task.ValidStrategies()
	current := m.manager.Strategy()
	next := strategies[0]
	for i, s := range strategies {
		if s == current {
			next = strategies[(i+1)%len(strategies)]
			break
		}
	}
	if err := m.manager.SetStrategy(next); err != nil {
		m.setError(err)
		return
	}
	m.setInfo(fmt.Sprintf("ordering: %s", next))
	m.refresh()
}

func (m *Model) advanceTaskStatus() {
	l := m.selectedList()
	t := m.selectedTask()
	if l == nil || t == nil {
		return
	}

	var next task.Status
	switch t.Status {
	case task.StatusTodo:
		next = task.StatusInProgress
	case task.StatusInProgress:
		next = task.StatusCompleted
	default:
		next = task.StatusTodo
	}

	if _, err := m.manager.SetTaskStatus(l.ID, t.ID, next); err != nil {
		m.setError(err)
		return
	}
	m.setInfo(fmt.Sprintf("%s: %s", t.Title, next))
	m.refresh()
}

func (m *Model) deleteSelectedTask() {
	l := m.selectedList()
	t := m.selectedTask()
	if l == nil || t == nil {
		return
	}
	if err := m.manager.DeleteTask(l.ID, t.ID); err != nil {
		m.setError(err)
		return
	}
	m.setInfo(fmt.Sprintf("deleted: %s", t.Title))
	m.refresh()
}

// refresh re-reads the ordered lists and clamps cursors.
func (m *Model) refresh() {
	m.lists = m.manager.Lists()
	m.listCursor = clamp(m.listCursor, len(m.lists))
	if l := m.selectedList(); l != nil {
		m.taskCursor = clamp(m.taskCursor, l.TaskCount())
	} else {
		m.taskCursor = 0
	}
}

func (m *Model) selectedList() *task.List {
	if m.listCursor < 0 || m.listCursor >= len(m.lists) {
		return nil
	}
	return m.lists[m.listCursor]
}

func (m *Model) selectedTask() *task.Task {
	l := m.selectedList()
	if l == nil || m.taskCursor < 0 || m.taskCursor >= l.TaskCount() {
		return nil
	}
	return l.Tasks[m.taskCursor]
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) setInfo(message string) {
	m.status = message
	m.statusErr = false
}

func clamp(value, length int) int {
	if length == 0 {
		return 0
	}
	if value < 0 {
		return 0
	}
	if value >= length {
		return length - 1
	}
	return value
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading taskdeck..."
	}

	contentHeight := m.height - 4
	if contentHeight < 3 {
		contentHeight = 3
	}
	leftWidth := m.width / 3
	if leftWidth < 20 {
		leftWidth = 20
	}
	rightWidth := m.width - leftWidth - 2
	if rightWidth < 20 {
		rightWidth = 20
	}

	title := titleStyle.Render(fmt.Sprintf("taskdeck - ordering: %s", m.manager.Strategy()))
	listPane := m.renderPane(m.renderLists(), leftWidth, contentHeight, m.focus == paneLists)
	taskPane := m.renderPane(m.renderTasks(), rightWidth, contentHeight, m.focus == paneTasks)
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, taskPane)

	help := helpStyle.Render("tab: switch pane  enter: advance status  d: delete task  o: cycle ordering  q: quit")
	return strings.Join([]string{title, content, m.renderStatus(), help}, "\n")
}

func (m Model) renderPane(content string, width, height int, active bool) string {
	style := paneStyle
	if active {
		style = paneActiveStyle
	}
	return style.Width(width).Height(height).Render(content)
}

func (m Model) renderLists() string {
	if len(m.lists) == 0 {
		return mutedStyle.Render("no lists yet")
	}

	var b strings.Builder
	for i, l := range m.lists {
		line := fmt.Sprintf("%s (%d)", l.Name, l.TaskCount())
		if i == m.listCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderTasks() string {
	l := m.selectedList()
	if l == nil {
		return mutedStyle.Render("select a list")
	}
	if l.TaskCount() == 0 {
		return mutedStyle.Render("no tasks in this list")
	}

	var b strings.Builder
	for i, t := range l.Tasks {
		line := fmt.Sprintf("%s %s", statusGlyph(t.Status), t.Title)
		if m.focus == paneTasks && i == m.taskCursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return statusErrorStyle.Render(m.status)
	}
	return statusInfoStyle.Render(m.status)
}

func statusGlyph(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return statusCompletedStyle.Render("[x]")
	case task.StatusInProgress:
		return statusInProgressStyle.Render("[~]")
	default:
		return statusTodoStyle.Render("[ ]")
	}
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/gf-haseeb/taskdeck/task"
)

func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s ID %q", kind, arg)
	}
	return id, nil
}

func parseStatus(value string) (task.Status, error) {
	status := task.Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", task.ErrInvalidStatus, value, joinStatuses())
	}
	return status, nil
}

func parsePriority(value string) (task.Priority, error) {
	priority := task.Priority(strings.ToLower(strings.TrimSpace(value)))
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: low, medium, high)", task.ErrInvalidPriority, value)
	}
	return priority, nil
}

func joinStatuses() string {
	statuses := task.ValidStatuses()
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func hasChangedFlags(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

var (
	todoStatusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	inProgressStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	completedStatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	highPriorityStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func formatStatus(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return completedStatusStyle.Render(string(s))
	case task.StatusInProgress:
		return inProgressStatusStyle.Render(string(s))
	default:
		return todoStatusStyle.Render(string(s))
	}
}

func formatPriority(p task.Priority) string {
	if p == task.PriorityHigh {
		return highPriorityStyle.Render(string(p))
	}
	return string(p)
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ",")
}

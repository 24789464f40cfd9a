package task

import (
	"fmt"
	"strings"
)

// ValidateListName checks if a list name is valid.
func ValidateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyListName
	}
	if len(name) > MaxListNameLength {
		return fmt.Errorf("%w: %d > %d", ErrListNameTooLong, len(name), MaxListNameLength)
	}
	return nil
}

// ValidateTitle checks if a task title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// normalizeStatusInput lowercases a status and rejects unknown values.
func normalizeStatusInput(status Status) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return normalized, nil
}

// normalizePriorityInput lowercases a priority and rejects unknown values.
func normalizePriorityInput(priority Priority) (Priority, error) {
	normalized := Priority(strings.ToLower(strings.TrimSpace(string(priority))))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	return normalized, nil
}

// NormalizeStrategy lowercases a strategy and rejects unknown values.
func NormalizeStrategy(strategy Strategy) (Strategy, error) {
	normalized := Strategy(strings.ToLower(strings.TrimSpace(string(strategy))))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}
	return normalized, nil
}

// ValidateTask checks if a task struct is valid.
func ValidateTask(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	for _, tag := range t.Tags {
		if strings.TrimSpace(tag) == "" {
			return ErrEmptyTag
		}
	}
	return nil
}

// ValidateList checks if a list struct is valid.
func ValidateList(l *List) error {
	if err := ValidateListName(l.Name); err != nil {
		return err
	}
	for _, t := range l.Tasks {
		if err := ValidateTask(t); err != nil {
			return fmt.Errorf("task %d: %w", t.ID, err)
		}
	}
	return nil
}

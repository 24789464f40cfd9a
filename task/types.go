// Package task implements a personal task manager organized around named
// lists.
//
// A Registry owns a set of Lists, per-list ordering metadata, and the active
// ordering strategy. Lists own Tasks exclusively; moving a task between lists
// transfers ownership without reassigning its identifier. The Manager wraps a
// Registry together with a persistence Gateway and saves after every
// mutation.
//
// The public API mirrors the CLI commands:
//   - CreateList, RenameList, DeleteList, MoveList for list lifecycle
//   - AddTask, UpdateTask, DeleteTask, MoveTask for task lifecycle
//   - Lists, Tasks, Search, Statistics for querying
package task

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is currently being worked on.
	StatusInProgress Status = "in_progress"

	// StatusCompleted indicates the task is finished.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the least important level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the most important level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority. High sorts first.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Strategy selects how lists are ordered for display.
type Strategy string

const (
	// StrategyManual orders lists by their user-assigned custom index.
	StrategyManual Strategy = "manual"

	// StrategyAlphabetical orders lists by name, case-insensitive.
	StrategyAlphabetical Strategy = "alphabetical"

	// StrategyCreationOrder orders lists oldest first.
	StrategyCreationOrder Strategy = "creation_order"

	// StrategyRecentlyModified orders lists most recently modified first.
	StrategyRecentlyModified Strategy = "recently_modified"

	// StrategyRecentlyAddedTask orders lists by the creation time of their
	// newest task, most recent first. Lists with no tasks sort last.
	StrategyRecentlyAddedTask Strategy = "recently_added_task"
)

// ValidStrategies returns all valid ordering strategy values.
func ValidStrategies() []Strategy {
	return []Strategy{
		StrategyManual,
		StrategyAlphabetical,
		StrategyCreationOrder,
		StrategyRecentlyModified,
		StrategyRecentlyAddedTask,
	}
}

// IsValid returns true if the strategy is a known valid value.
func (s Strategy) IsValid() bool {
	for _, valid := range ValidStrategies() {
		if s == valid {
			return true
		}
	}
	return false
}

// Defaults applied when a caller does not specify a value.
const (
	DefaultStatus   = StatusTodo
	DefaultPriority = PriorityMedium
	DefaultStrategy = StrategyManual
)

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 200

// MaxListNameLength is the maximum allowed length for a list name.
const MaxListNameLength = 100

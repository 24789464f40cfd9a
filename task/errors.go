package task

import "errors"

var (
	// ErrEmptyListName is returned when a list name is empty or blank.
	ErrEmptyListName = errors.New("list name cannot be empty")

	// ErrListNameTooLong is returned when a list name exceeds MaxListNameLength.
	ErrListNameTooLong = errors.New("list name exceeds maximum length")

	// ErrEmptyTitle is returned when a task title is empty or blank.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("task title exceeds maximum length")

	// ErrEmptyTag is returned when an empty tag is added to a task.
	ErrEmptyTag = errors.New("tag cannot be empty")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidStrategy is returned when an invalid ordering strategy is provided.
	ErrInvalidStrategy = errors.New("invalid ordering strategy")

	// ErrInvalidSortField is returned when tasks are requested sorted by an
	// unknown field.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSearchField is returned when a search targets an unknown field.
	ErrInvalidSearchField = errors.New("invalid search field")

	// ErrListNotFound is returned when a list with the given ID doesn't exist.
	ErrListNotFound = errors.New("list not found")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist
	// in the list it was looked up in.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSourceListNotFound is returned by MoveTask when the source list
	// doesn't exist.
	ErrSourceListNotFound = errors.New("source list not found")

	// ErrTargetListNotFound is returned by MoveTask when the target list
	// doesn't exist.
	ErrTargetListNotFound = errors.New("target list not found")

	// ErrSameList is returned by MoveTask when source and target are the same
	// list. The move is rejected rather than treated as a no-op.
	ErrSameList = errors.New("source and target lists cannot be the same")

	// ErrManualOnly is returned by MoveList when the active strategy is not
	// manual.
	ErrManualOnly = errors.New("list reordering requires the manual ordering strategy")

	// ErrInvalidPosition is returned by MoveList when the target position is
	// outside the valid range.
	ErrInvalidPosition = errors.New("position out of range")

	// ErrNoDocument is returned by a Gateway when no persisted document
	// exists. Callers treat it as an empty initial state.
	ErrNoDocument = errors.New("no task document found")

	// ErrCorruptDocument is returned when a persisted document does not match
	// the expected shape.
	ErrCorruptDocument = errors.New("task document is corrupt")
)

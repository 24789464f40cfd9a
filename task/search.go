package task

import (
	"fmt"
	"strings"
)

// SearchField selects which task field a search matches against.
type SearchField string

const (
	// SearchTitle matches against task titles. This is the default.
	SearchTitle SearchField = "title"

	// SearchDescription matches against task descriptions.
	SearchDescription SearchField = "description"

	// SearchTags matches against task tags.
	SearchTags SearchField = "tags"
)

// SearchResult pairs a matching task with the list that owns it.
type SearchResult struct {
	List *List
	Task *Task
}

// Search returns tasks across all lists whose field contains the query as a
// case-insensitive substring. Lists are visited in creation order.
func (r *Registry) Search(query string, field SearchField) ([]SearchResult, error) {
	if field == "" {
		field = SearchTitle
	}
	switch field {
	case SearchTitle, SearchDescription, SearchTags:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSearchField, field)
	}

	query = strings.ToLower(query)

	var results []SearchResult
	for _, l := range r.lists {
		for _, t := range l.Tasks {
			if taskMatches(t, query, field) {
				results = append(results, SearchResult{List: l, Task: t})
			}
		}
	}
	return results, nil
}

func taskMatches(t *Task, query string, field SearchField) bool {
	switch field {
	case SearchTitle:
		return strings.Contains(strings.ToLower(t.Title), query)
	case SearchDescription:
		return strings.Contains(strings.ToLower(t.Description), query)
	case SearchTags:
		for _, tag := range t.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				return true
			}
		}
	}
	return false
}

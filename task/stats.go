package task

import "math"

// Statistics aggregates task counts across the whole registry.
type Statistics struct {
	TotalLists      int `json:"total_lists"`
	TotalTasks      int `json:"total_tasks"`
	TodoTasks       int `json:"todo_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletedTasks  int `json:"completed_tasks"`

	// CompletionPercentage is completed/total as a percentage, rounded to
	// two decimals. Zero when there are no tasks.
	CompletionPercentage float64 `json:"completion_percentage"`
}

// Statistics computes aggregate counts over all lists and tasks.
func (r *Registry) Statistics() Statistics {
	stats := Statistics{TotalLists: len(r.lists)}

	for _, l := range r.lists {
		stats.TotalTasks += len(l.Tasks)
		for _, t := range l.Tasks {
			switch t.Status {
			case StatusTodo:
				stats.TodoTasks++
			case StatusInProgress:
				stats.InProgressTasks++
			case StatusCompleted:
				stats.CompletedTasks++
			}
		}
	}

	if stats.TotalTasks > 0 {
		pct := float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
		stats.CompletionPercentage = math.Round(pct*100) / 100
	}
	return stats
}

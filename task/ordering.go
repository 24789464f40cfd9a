package task

import (
	"sort"
	"strings"
	"time"
)

// orderedLists returns a new slice with lists arranged per the strategy.
// Ordering is recomputed on every call so the result always reflects the
// latest mutation. Every policy breaks ties by list ID so the order is a
// deterministic total order.
func orderedLists(strategy Strategy, lists []*List, meta map[int]ListMeta) []*List {
	result := append([]*List(nil), lists...)

	switch strategy {
	case StrategyManual:
		sort.SliceStable(result, func(i, j int) bool {
			a, b := manualIndex(result[i], meta), manualIndex(result[j], meta)
			if a != b {
				return a < b
			}
			return result[i].ID < result[j].ID
		})

	case StrategyAlphabetical:
		sort.SliceStable(result, func(i, j int) bool {
			a, b := strings.ToLower(result[i].Name), strings.ToLower(result[j].Name)
			if a != b {
				return a < b
			}
			return result[i].ID < result[j].ID
		})

	case StrategyCreationOrder:
		sort.SliceStable(result, func(i, j int) bool {
			a, b := metaCreatedAt(result[i], meta), metaCreatedAt(result[j], meta)
			if !a.Equal(b) {
				return a.Before(b)
			}
			return result[i].ID < result[j].ID
		})

	case StrategyRecentlyModified:
		sort.SliceStable(result, func(i, j int) bool {
			a, b := result[i].ModifiedAt, result[j].ModifiedAt
			if !a.Equal(b) {
				return a.After(b)
			}
			return result[i].ID < result[j].ID
		})

	case StrategyRecentlyAddedTask:
		sort.SliceStable(result, func(i, j int) bool {
			a, aOK := result[i].LatestTaskCreatedAt()
			b, bOK := result[j].LatestTaskCreatedAt()
			// Empty lists sort after all non-empty lists.
			if aOK != bOK {
				return aOK
			}
			if aOK && !a.Equal(b) {
				return a.After(b)
			}
			return result[i].ID < result[j].ID
		})
	}

	return result
}

// manualIndex returns the custom index for a list, falling back to the list
// ID when no metadata entry exists.
func manualIndex(l *List, meta map[int]ListMeta) int {
	if m, ok := meta[l.ID]; ok {
		return m.CustomIndex
	}
	return l.ID
}

// metaCreatedAt returns the metadata creation time for a list, falling back
// to the list's own timestamp.
func metaCreatedAt(l *List, meta map[int]ListMeta) time.Time {
	if m, ok := meta[l.ID]; ok {
		return m.CreatedAt
	}
	return l.CreatedAt
}

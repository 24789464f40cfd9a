package task

import (
	"fmt"
	"strconv"
	"time"
)

// Snapshot is the persisted document shape: the full registry state as a
// single JSON document. Metadata is keyed by stringified list ID because
// JSON object keys are strings.
type Snapshot struct {
	OrderingStrategy Strategy            `json:"ordering_strategy"`
	CreatedAt        time.Time           `json:"created_at"`
	ModifiedAt       time.Time           `json:"modified_at"`
	Lists            []*List             `json:"lists"`
	Metadata         map[string]ListMeta `json:"metadata"`
}

// Snapshot returns a deep copy of the registry state, decoupled from the
// live registry. Gateways persist it as-is.
func (r *Registry) Snapshot() *Snapshot {
	lists := make([]*List, len(r.lists))
	for i, l := range r.lists {
		lists[i] = l.clone()
	}

	metadata := make(map[string]ListMeta, len(r.meta))
	for id, m := range r.meta {
		metadata[strconv.Itoa(id)] = m
	}

	return &Snapshot{
		OrderingStrategy: r.strategy,
		CreatedAt:        r.createdAt,
		ModifiedAt:       r.modifiedAt,
		Lists:            lists,
		Metadata:         metadata,
	}
}

// NewRegistryFromSnapshot rebuilds a registry from a persisted snapshot.
// Unknown enum values and malformed metadata keys are rejected with
// ErrCorruptDocument; a list without a metadata entry gets one synthesized
// so ordering stays total.
func NewRegistryFromSnapshot(s *Snapshot) (*Registry, error) {
	if !s.OrderingStrategy.IsValid() {
		return nil, fmt.Errorf("%w: unknown ordering strategy %q", ErrCorruptDocument, s.OrderingStrategy)
	}

	r := &Registry{
		meta:       make(map[int]ListMeta),
		strategy:   s.OrderingStrategy,
		createdAt:  s.CreatedAt,
		modifiedAt: s.ModifiedAt,
		nextListID: 1,
		nextTaskID: 1,
	}

	meta := make(map[int]ListMeta, len(s.Metadata))
	for key, m := range s.Metadata {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: metadata key %q is not a list ID", ErrCorruptDocument, key)
		}
		meta[id] = m
	}

	seen := make(map[int]bool)
	for _, l := range s.Lists {
		if seen[l.ID] {
			return nil, fmt.Errorf("%w: duplicate list ID %d", ErrCorruptDocument, l.ID)
		}
		seen[l.ID] = true

		if err := ValidateList(l); err != nil {
			return nil, fmt.Errorf("%w: list %d: %v", ErrCorruptDocument, l.ID, err)
		}

		copied := l.clone()
		r.lists = append(r.lists, copied)

		if m, ok := meta[l.ID]; ok {
			r.meta[l.ID] = m
		} else {
			r.meta[l.ID] = ListMeta{CustomIndex: l.ID, CreatedAt: l.CreatedAt}
		}

		if l.ID >= r.nextListID {
			r.nextListID = l.ID + 1
		}
		taskIDs := make(map[int]bool, len(copied.Tasks))
		for _, t := range copied.Tasks {
			if taskIDs[t.ID] {
				return nil, fmt.Errorf("%w: duplicate task ID %d in list %d", ErrCorruptDocument, t.ID, l.ID)
			}
			taskIDs[t.ID] = true
			if t.ID >= r.nextTaskID {
				r.nextTaskID = t.ID + 1
			}
		}
	}

	return r, nil
}

package schedule

import (
	"errors"
	"sort"

	"github.com/google/uuid"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// Set is the ordered rule store: ascending start time, ties kept in insertion order.
// It is a value; Insert and Remove return new sets.
type Set struct {
	items []Schedule
}

// NewSet orders the given schedules by start time, keeping their relative order on ties.
func NewSet(items ...Schedule) Set {
	copied := make([]Schedule, len(items))
	copy(copied, items)
	sort.SliceStable(copied, func(i, j int) bool {
		return copied[i].StartTime().Before(copied[j].StartTime())
	})
	return Set{items: copied}
}

// FromOrdered wraps schedules that are already in store order, as loaded from storage.
func FromOrdered(items []Schedule) Set {
	copied := make([]Schedule, len(items))
	copy(copied, items)
	return Set{items: copied}
}

func (s Set) Len() int {
	return len(s.items)
}

func (s Set) Items() []Schedule {
	out := make([]Schedule, len(s.items))
	copy(out, s.items)
	return out
}

func (s Set) Find(id uuid.UUID) (Schedule, bool) {
	for _, it := range s.items {
		if it.ID() == id {
			return it, true
		}
	}
	return Schedule{}, false
}

func (s Set) Insert(sc Schedule) Set {
	items := make([]Schedule, 0, len(s.items)+1)
	items = append(items, s.items...)
	items = append(items, sc)
	return NewSet(items...)
}

func (s Set) Remove(id uuid.UUID) (Set, error) {
	items := make([]Schedule, 0, len(s.items))
	found := false
	for _, it := range s.items {
		if it.ID() == id {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return s, ErrScheduleNotFound
	}
	return Set{items: items}, nil
}

// Map applies fn to every schedule, preserving order.
func (s Set) Map(fn func(Schedule) Schedule) Set {
	items := make([]Schedule, len(s.items))
	for i, it := range s.items {
		items[i] = fn(it)
	}
	return Set{items: items}
}

func (s Set) CountByStatus(status Status) int {
	n := 0
	for _, it := range s.items {
		if it.Status() == status {
			n++
		}
	}
	return n
}

// HasActiveFor reports whether any active schedule targets productID.
func (s Set) HasActiveFor(productID string) bool {
	for _, it := range s.items {
		if it.ProductID() == productID && it.IsActive() {
			return true
		}
	}
	return false
}

func (s Set) Equal(o Set) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for i := range s.items {
		if !s.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

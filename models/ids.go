// Package models contains the core data types for scatterbrain: plan and
// task identifiers, the abstraction-level catalog, the task tree, the plan
// itself, and the response envelope every engine operation returns.
package models

import (
	"strconv"
	"strings"
)

// PlanId identifies one plan within the registry. The wire and storage
// representation is an unsigned byte (0..=255); the registry never holds
// more than 256 live plans.
type PlanId uint8

// String renders the plan ID in decimal, matching the wire format.
func (p PlanId) String() string {
	return strconv.Itoa(int(p))
}

// Index is an ordered sequence of non-negative positions naming a path
// from a plan's implicit root to a task. An empty Index names the root
// itself.
type Index []int

// Empty reports whether the index refers to the root.
func (idx Index) Empty() bool {
	return len(idx) == 0
}

// Clone returns an independent copy of the index.
func (idx Index) Clone() Index {
	out := make(Index, len(idx))
	copy(out, idx)
	return out
}

// Child returns a new index naming the given position under idx.
func (idx Index) Child(position int) Index {
	out := make(Index, 0, len(idx)+1)
	out = append(out, idx...)
	out = append(out, position)
	return out
}

// Equal reports whether two indices name the same path.
func (idx Index) Equal(other Index) bool {
	if len(idx) != len(other) {
		return false
	}
	for i := range idx {
		if idx[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether other is idx or a descendant of idx.
func (idx Index) HasPrefix(other Index) bool {
	if len(other) < len(idx) {
		return false
	}
	for i := range idx {
		if idx[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the index in wire format: comma-separated positions,
// e.g. "0,1,2". The root (empty index) renders as the empty string.
func (idx Index) String() string {
	parts := make([]string, len(idx))
	for i, p := range idx {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// ParseIndex parses the wire form of an Index ("0,1,2"). An empty string
// is rejected: the root is never addressable from outside the engine (see
// spec.md §6, "Index wire format").
func ParseIndex(s string) (Index, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrInvalidInput("index must not be empty")
	}
	segments := strings.Split(s, ",")
	out := make(Index, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return nil, ErrInvalidInput("invalid index segment %q in %q", seg, s)
		}
		out = append(out, n)
	}
	return out, nil
}

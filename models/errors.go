package models

import "fmt"

// Kind identifies one of the error taxonomy members from spec.md §7.
type Kind string

const (
	KindPlanNotFound      Kind = "plan_not_found"
	KindIndexOutOfRange   Kind = "index_out_of_range"
	KindLevelOutOfRange   Kind = "level_out_of_range"
	KindLeaseExhausted    Kind = "lease_exhausted"
	KindCapacityExhausted Kind = "capacity_exhausted"
	KindInvalidInput      Kind = "invalid_input"
	KindInternal          Kind = "internal"
)

// Error is the engine's structured error type. Frontends switch on Kind to
// pick a transport-appropriate status (see spec.md §7's mapping table).
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match on Kind alone, e.g. errors.Is(err, &Error{Kind: KindPlanNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrPlanNotFound reports a reference to a PlanId with no registry entry.
func ErrPlanNotFound(id PlanId) *Error {
	return newErr(KindPlanNotFound, "plan %s not found", id)
}

// ErrIndexOutOfRange reports an Index that walks off the task tree.
func ErrIndexOutOfRange(idx Index) *Error {
	return newErr(KindIndexOutOfRange, "index %q is out of range", idx.String())
}

// ErrLevelOutOfRange reports a level position outside a plan's catalog.
func ErrLevelOutOfRange(level int, catalogSize int) *Error {
	return newErr(KindLevelOutOfRange, "level %d is out of range (catalog has %d levels)", level, catalogSize)
}

// ErrLeaseExhausted reports that no free lease token remains for a plan.
func ErrLeaseExhausted() *Error {
	return newErr(KindLeaseExhausted, "no free lease token remains for this plan")
}

// ErrCapacityExhausted reports that no free PlanId remains in the registry.
func ErrCapacityExhausted() *Error {
	return newErr(KindCapacityExhausted, "no free plan id remains (256 plan limit reached)")
}

// ErrInvalidInput reports malformed caller input (empty prompt, bad index
// string, and the like). It is a function, not a value, so format args can
// be forwarded directly from parse sites.
func ErrInvalidInput(format string, args ...any) *Error {
	return newErr(KindInvalidInput, format, args...)
}

// ErrInternal reports an unexpected internal failure, e.g. the lock
// recovery path surfacing a condition it cannot repair.
func ErrInternal(format string, args ...any) *Error {
	return newErr(KindInternal, format, args...)
}

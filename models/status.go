package models

// Status is the outcome of a sync step. Values are ordered so that the
// reduction of several steps is their maximum.
type Status int

const (
	StatusUnchanged Status = iota
	StatusUpdated
	StatusHasMore
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "UNCHANGED"
	case StatusUpdated:
		return "UPDATED"
	case StatusHasMore:
		return "HAS_MORE"
	default:
		return "UNKNOWN"
	}
}

// StatusOf maps a "something changed" flag to a status.
func StatusOf(changed bool) Status {
	if changed {
		return StatusUpdated
	}
	return StatusUnchanged
}

// ReduceStatus folds statuses: HAS_MORE if any is HAS_MORE, else UPDATED if
// any is UPDATED, else UNCHANGED.
func ReduceStatus(statuses ...Status) Status {
	result := StatusUnchanged
	for _, s := range statuses {
		if s > result {
			result = s
		}
	}
	return result
}

package domain

// Status is the lifecycle flag stored on every record.
type Status string

const (
	StatusActive  Status = "A"
	StatusDeleted Status = "B"
)

func (s Status) Active() bool { return s == StatusActive }

// Record is implemented by every persisted entity that carries a Status.
type Record interface {
	RecordStatus() Status
}

// LookupState tells a caller why a single-record lookup did or did not yield a
// usable value.
type LookupState int

const (
	NotFound LookupState = iota
	Found
	Inactive
)

func (s LookupState) String() string {
	switch s {
	case Found:
		return "found"
	case Inactive:
		return "inactive"
	default:
		return "not_found"
	}
}

// Lookup is the result of fetching one record by key. Value is set for Found
// and Inactive, nil for NotFound.
type Lookup[T any] struct {
	State LookupState
	Value *T
}

// LookupOf classifies v: nil is NotFound, a soft-deleted record is Inactive.
func LookupOf[T Record](v *T) Lookup[T] {
	if v == nil {
		return Lookup[T]{State: NotFound}
	}
	if !(*v).RecordStatus().Active() {
		return Lookup[T]{State: Inactive, Value: v}
	}
	return Lookup[T]{State: Found, Value: v}
}

func (l Lookup[T]) Found() bool { return l.State == Found }

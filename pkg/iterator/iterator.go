package iterator

// RandomAccess is a position over a random-access sequence of T.
// C is the implementing cursor type itself, so that offsets return the
// concrete cursor rather than an interface value.
type RandomAccess[C any, T any] interface {
	// Get returns the element at the current position.
	Get() T
	// At returns the element n steps away without moving.
	At(n int) T
	// Next returns the cursor one step forward.
	Next() C
	// Add returns the cursor n steps away.
	Add(n int) C
	// Sub returns the cursor n steps back.
	Sub(n int) C
	// Equal reports whether both cursors denote the same element.
	Equal(other C) bool
	// Less compares raw positions.
	Less(other C) bool
	// Distance returns the number of steps from the receiver to other.
	Distance(other C) (int, error)
}

// Mutable is a RandomAccess position that can write through.
type Mutable[C any, T any] interface {
	RandomAccess[C, T]
	Set(v T)
	SetAt(n int, v T)
}

// Position is a host position handle: a buffer and an index into it.
type Position[T any] interface {
	Buffer() []T
	Index() int
}

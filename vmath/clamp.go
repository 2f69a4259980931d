package vmath

// Integer is the set of integer types a Range can be built over
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range is the half-open interval [Start, End)
type Range[T Integer] struct {
	Start T
	End   T
}

// Span returns a Range over [start, end)
func Span[T Integer](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// Empty reports whether the range holds no values
func (r Range[T]) Empty() bool {
	return r.End <= r.Start
}

// Max returns the largest admissible value
// With inclusiveEnd, End itself is admissible (e.g. cursor after last character)
// An empty or inverted range collapses to Start
func (r Range[T]) Max(inclusiveEnd bool) T {
	if inclusiveEnd {
		if r.End < r.Start {
			return r.Start
		}
		return r.End
	}
	if r.End <= r.Start {
		return r.Start
	}
	return r.End - 1
}

// Clamp saturates v into the range
func (r Range[T]) Clamp(v T, inclusiveEnd bool) T {
	if v < r.Start {
		return r.Start
	}
	if hi := r.Max(inclusiveEnd); v > hi {
		return hi
	}
	return v
}

// Contains reports whether v lies in the range
func (r Range[T]) Contains(v T, inclusiveEnd bool) bool {
	return v >= r.Start && v <= r.Max(inclusiveEnd) && (inclusiveEnd || !r.Empty())
}

// Clamped is a value that always stays inside its range
// Every assignment saturates: below Start snaps to Start, above the end snaps to End-1 (or End when InclusiveEnd)
type Clamped[T Integer] struct {
	value        T
	rng          Range[T]
	InclusiveEnd bool
}

// NewClamped creates a clamped value positioned at r.Start
func NewClamped[T Integer](r Range[T], inclusiveEnd bool) Clamped[T] {
	return Clamped[T]{value: r.Start, rng: r, InclusiveEnd: inclusiveEnd}
}

// Value returns the current value
func (c Clamped[T]) Value() T {
	return c.value
}

// Range returns the current bounds
func (c Clamped[T]) Range() Range[T] {
	return c.rng
}

// Set assigns v, saturating into the current range
func (c *Clamped[T]) Set(v T) {
	c.value = c.rng.Clamp(v, c.InclusiveEnd)
}

// Bind replaces the range and re-clamps the current value into it
func (c *Clamped[T]) Bind(r Range[T]) {
	c.rng = r
	c.value = r.Clamp(c.value, c.InclusiveEnd)
}

// AtStart reports whether the value sits on the lower bound
func (c Clamped[T]) AtStart() bool {
	return c.value == c.rng.Start
}

// AtEnd reports whether the value sits on the upper bound
func (c Clamped[T]) AtEnd() bool {
	return c.value == c.rng.Max(c.InclusiveEnd)
}

// Inc moves the value up by one if possible, reporting whether it moved
func (c *Clamped[T]) Inc() bool {
	if c.AtEnd() {
		return false
	}
	c.value++
	return true
}

// Dec moves the value down by one if possible, reporting whether it moved
func (c *Clamped[T]) Dec() bool {
	if c.AtStart() {
		return false
	}
	c.value--
	return true
}

// ToStart snaps the value to the lower bound
func (c *Clamped[T]) ToStart() {
	c.value = c.rng.Start
}

// ToEnd snaps the value to the upper bound
func (c *Clamped[T]) ToEnd() {
	c.value = c.rng.Max(c.InclusiveEnd)
}

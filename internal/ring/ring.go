// Package ring is a specialized adaption of `container/ring` for clock-style
// page replacement: a fixed circle of frames, each carrying a resident page
// and its use bit.
package ring

// A Frame is one slot of a circular frame list. A pointer to any frame
// serves as reference to the entire circle; the clock hand is simply a
// frame pointer that advances via [Frame.Next].
type Frame[Value comparable] struct {
	next *Frame[Value]
	// Value is the page held by this frame.
	// Only meaningful while Resident is true.
	Value Value
	// Resident is true once a page has been installed in this frame.
	Resident bool
	// Referenced is the use bit: set when the resident page is
	// accessed, cleared as a hand sweeps past the frame.
	Referenced bool
}

// New creates a circle of n empty frames.
func New[Value comparable](n int) *Frame[Value] {
	if n <= 0 {
		return nil
	}
	var (
		f = new(Frame[Value])
		p = f
	)
	for i := 1; i < n; i++ {
		p.next = new(Frame[Value])
		p = p.next
	}
	p.next = f
	return f
}

// Next returns the following frame. f must not be nil.
func (f *Frame[Value]) Next() *Frame[Value] { return f.next }

// Find scans the full circle starting at f and returns the frame holding
// value, or nil if no resident frame holds it.
func (f *Frame[Value]) Find(value Value) *Frame[Value] {
	if f == nil {
		return nil
	}
	if f.Resident && f.Value == value {
		return f
	}
	for p := f.next; p != f; p = p.next {
		if p.Resident && p.Value == value {
			return p
		}
	}
	return nil
}

// Len computes the number of frames in the circle.
// It executes in time proportional to the number of frames.
func (f *Frame[Value]) Len() int {
	n := 0
	if f != nil {
		n = 1
		for p := f.next; p != f; p = p.next {
			n++
		}
	}
	return n
}

package pagesim

import "slices"

// FIFO returns the first-in-first-out policy: a single cursor rotates over
// the resident set, always evicting the page that has been resident
// longest. Hits never alter state.
func FIFO() Policy {
	return Policy{Name: "FIFO", simulate: fifoFaults}
}

func fifoFaults(trace Trace, capacity int) int {
	var (
		set    = make([]int, 0, capacity)
		cursor int
		faults int
	)
	for _, page := range trace {
		if slices.Contains(set, page) {
			continue
		}
		if len(set) < capacity {
			set = append(set, page)
			continue
		}
		set[cursor] = page
		cursor = (cursor + 1) % capacity
		faults++
	}
	return faults
}

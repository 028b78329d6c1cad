package pagesim

import "github.com/jhael/go-pagesim/internal/ring"

// Clock returns the second-chance policy: a hand rotates over a fixed
// circle of frames, each with a use bit. Hits set the use bit of the
// matched frame; eviction advances the hand, clearing set bits, until an
// unreferenced frame is found. This approximates LRU at O(1) amortized
// cost per eviction.
func Clock() Policy {
	return Policy{Name: "Clock", simulate: clockFaults}
}

func clockFaults(trace Trace, capacity int) int {
	var (
		hand   = ring.New[int](capacity)
		fill   = hand
		size   int
		faults int
	)
	for _, page := range trace {
		if frame := hand.Find(page); frame != nil {
			frame.Referenced = true
			continue
		}
		if size < capacity {
			fill.Value = page
			fill.Resident = true
			fill = fill.Next()
			size++
			continue
		}
		for hand.Referenced {
			hand.Referenced = false
			hand = hand.Next()
		}
		// The victim's use bit is already clear;
		// the new page keeps it clear.
		hand.Value = page
		hand = hand.Next()
		faults++
	}
	return faults
}

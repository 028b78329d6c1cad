package pagesim

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU returns the true least-recently-used policy. Recency is derived from
// the trace history rather than maintained state: on each eviction the
// history is scanned backwards to identify the resident page whose latest
// reference is oldest. The scan is O(N) per eviction, which is accepted
// here; [FastLRU] offers an equivalent list-backed variant.
func LRU() Policy {
	return Policy{Name: "LRU", simulate: lruFaults}
}

func lruFaults(trace Trace, capacity int) int {
	var (
		set    = make([]int, 0, capacity)
		faults int
	)
	for i, page := range trace {
		if slices.Contains(set, page) {
			continue
		}
		if len(set) < capacity {
			set = append(set, page)
			continue
		}
		victim := leastRecentlyUsed(trace[:i], set)
		set[slices.Index(set, victim)] = page
		faults++
	}
	return faults
}

// leastRecentlyUsed walks the reference history backwards, recording
// resident pages in order of most recent use. Once every resident page has
// been recorded, the last one recorded is the victim. The set was populated
// from this history, so the walk always completes before running out of
// references.
func leastRecentlyUsed(history []int, set []int) int {
	recent := make([]int, 0, len(set))
	for i := len(history) - 1; i >= 0; i-- {
		page := history[i]
		if !slices.Contains(set, page) || slices.Contains(recent, page) {
			continue
		}
		recent = append(recent, page)
		if len(recent) == len(set) {
			break
		}
	}
	return recent[len(recent)-1]
}

// FastLRU returns a least-recently-used policy backed by a doubly-linked
// recency list instead of the history scan. It produces fault counts
// identical to [LRU] on every trace, at O(1) per reference.
func FastLRU() Policy {
	return Policy{Name: "FastLRU", simulate: fastLRUFaults}
}

func fastLRUFaults(trace Trace, capacity int) int {
	cache, err := lru.New[int, struct{}](capacity)
	if err != nil {
		// Capacity is validated by Policy.Faults.
		panic(err)
	}
	faults := 0
	for _, page := range trace {
		if _, hit := cache.Get(page); hit {
			continue
		}
		if evicted := cache.Add(page, struct{}{}); evicted {
			faults++
		}
	}
	return faults
}

package pagesim

// MinimumCapacity defines the lowest working-set size
// accepted by [Policy.Faults].
const MinimumCapacity = 1

// A Policy is a named page-replacement algorithm. Each simulation run owns
// its resident set locally, so a single Policy value may be reused across
// traces, capacities, and goroutines.
type Policy struct {
	// Name identifies the policy in results and reports.
	Name     string
	simulate func(trace Trace, capacity int) int
}

// Faults replays trace against a resident set of at most capacity pages and
// returns the number of page faults incurred. Only misses at full capacity
// count; the cold initial fill does not.
func (p Policy) Faults(trace Trace, capacity int) (int, error) {
	if capacity < MinimumCapacity {
		return 0, minCapacityError(capacity)
	}
	return p.simulate(trace, capacity), nil
}

// Policies returns the reference policy set, in report column order.
func Policies() []Policy {
	return []Policy{LRU(), FIFO(), Clock()}
}

func policyNames(policies []Policy) []string {
	names := make([]string, len(policies))
	for i, policy := range policies {
		names[i] = policy.Name
	}
	return names
}

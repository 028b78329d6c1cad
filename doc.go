// Package pagesim simulates virtual-memory page-replacement policies over
// synthetic memory-access traces and reports their average fault counts
// across a sweep of working-set sizes.
//
// Three policies are provided: true least-recently-used ([LRU]), rotating
// first-in-first-out ([FIFO]), and second-chance [Clock]. Each replays a
// [Trace] against a resident set of a given capacity and counts the capacity
// misses that force an eviction. A [Simulator] runs many independent trials
// (Monte Carlo), generating a fresh trace per trial with a [Generator] and
// averaging the per-policy fault counts into a [Results] table.
//
// Glossary:
//
//   - Page fault / miss
//
//     A reference to a page not currently in the resident set. Misses during
//     the cold initial fill grow the set and are not counted; misses at full
//     capacity evict a victim and increment the fault count.
//
//   - Working-set size (wss) / capacity
//
//     The maximum number of distinct pages the resident set may hold.
//
//   - Resident set
//
//     The current contents of the simulated cache. Holds at most capacity
//     pages, each at most once.
//
//   - Use bit / second-chance bit
//
//     Per-frame flag in the Clock policy, set when a resident page is
//     referenced and cleared as the hand sweeps past.
//
//   - Trial
//
//     One fresh trace replayed through every policy at every capacity in the
//     sweep. Totals accumulated over all trials are divided (truncating) by
//     the trial count.
//
// Randomness is never implicit: trace generation draws from a caller-owned
// *rand.Rand, so a fixed seed reproduces a full run. The trial loop is
// sequential by default; see [Config] for the parallel mode and its
// seeding semantics.
package pagesim

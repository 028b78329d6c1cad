package pagesim

import (
	"fmt"
	"math/rand"
	"sync"
)

// Config parameterizes a Monte Carlo run.
// [DefaultConfig] mirrors the reference simulation.
type Config struct {
	// Trials is the number of independent traces
	// generated and replayed.
	Trials int
	// SweepLow and SweepHigh bound the inclusive
	// working-set-size sweep.
	SweepLow, SweepHigh int
	// Workers selects the execution mode. Values below 2 run trials
	// strictly in sequence on the shared random stream. Higher values
	// fan trials out over that many goroutines; per-trial seeds are
	// pre-drawn from the shared stream, so results for a fixed seed are
	// reproducible at any worker count, though not bit-identical to the
	// sequential stream.
	Workers int
	// Trace parameterizes per-trial trace generation.
	Trace TraceConfig
	// Policies are the replacement algorithms under test,
	// in report column order.
	Policies []Policy
	// Progress, when non-nil, is invoked once per completed trial with
	// the count of completed trials and the total. It has no effect on
	// computed results.
	Progress func(trial, total int)
}

// DefaultConfig returns the reference simulation: 1000 trials of the
// default trace, working-set sizes 4 through 20, the [Policies] set,
// run sequentially and silently.
func DefaultConfig() Config {
	return Config{
		Trials:    1000,
		SweepLow:  4,
		SweepHigh: 20,
		Workers:   1,
		Trace:     DefaultTraceConfig(),
		Policies:  Policies(),
	}
}

func (c Config) validate() error {
	if c.Trials < 1 {
		return fmt.Errorf(
			"%w: must run at least one trial but %d was requested",
			ErrInvalidTrials, c.Trials)
	}
	if c.SweepLow < MinimumCapacity || c.SweepLow > c.SweepHigh {
		return fmt.Errorf(
			"%w: bounds [%d,%d] are not an inclusive range of capacities >=%d",
			ErrInvalidSweep, c.SweepLow, c.SweepHigh, MinimumCapacity)
	}
	if c.SweepHigh > c.Trace.Length {
		return fmt.Errorf(
			"%w: upper bound %d exceeds the trace length %d",
			ErrInvalidSweep, c.SweepHigh, c.Trace.Length)
	}
	if err := c.Trace.validate(); err != nil {
		return err
	}
	if len(c.Policies) == 0 {
		return fmt.Errorf("%w: at least one policy is required", ErrInvalidPolicy)
	}
	for _, policy := range c.Policies {
		if policy.simulate == nil {
			return fmt.Errorf("%w: policy %q has no simulation", ErrInvalidPolicy, policy.Name)
		}
	}
	return nil
}

// A Simulator runs the Monte Carlo aggregation: per trial it generates one
// fresh trace and replays it through every configured policy at every
// capacity in the sweep, accumulating fault counts.
// Constructed by [New].
type Simulator struct {
	config Config
	rng    *rand.Rand
}

// New validates config and creates a [Simulator] drawing randomness from
// rng. Invalid configuration is rejected here, before any simulation work.
func New(config Config, rng *rand.Rand) (*Simulator, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: simulator requires a *rand.Rand", ErrNoSource)
	}
	return &Simulator{config: config, rng: rng}, nil
}

// Run executes all configured trials to completion and returns the
// averaged result table. Averages are truncated integer divisions of the
// accumulated totals by the trial count.
func (s *Simulator) Run() (*Results, error) {
	if s.config.Workers > 1 {
		return s.runParallel()
	}
	return s.runSequential()
}

func (s *Simulator) runSequential() (*Results, error) {
	var (
		config = s.config
		acc    = newAccumulator(config.SweepLow, config.SweepHigh, policyNames(config.Policies))
	)
	generator, err := NewGenerator(config.Trace, s.rng)
	if err != nil {
		return nil, err
	}
	for trial := 0; trial < config.Trials; trial++ {
		s.accumulate(acc, generator.Generate())
		s.report(trial + 1)
	}
	return acc.average(config.Trials), nil
}

// runParallel pre-draws one seed per trial from the shared stream, then
// fans the trials out over the configured worker count. Each worker folds
// its trials into a private accumulator; the partials are merged after all
// workers finish, so no fault-count cell is ever shared between
// goroutines.
func (s *Simulator) runParallel() (*Results, error) {
	var (
		config = s.config
		names  = policyNames(config.Policies)
		seeds  = make([]int64, config.Trials)
	)
	for i := range seeds {
		seeds[i] = s.rng.Int63()
	}
	var (
		workers  = min(config.Workers, config.Trials)
		partials = make([]*accumulator, workers)
		ticks    = make(chan struct{})
		group    sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		w := w
		partials[w] = newAccumulator(config.SweepLow, config.SweepHigh, names)
		group.Add(1)
		go func() {
			defer group.Done()
			for trial := w; trial < config.Trials; trial += workers {
				rng := rand.New(rand.NewSource(seeds[trial]))
				generator := &Generator{config: config.Trace, rng: rng}
				s.accumulate(partials[w], generator.Generate())
				ticks <- struct{}{}
			}
		}()
	}
	go func() {
		group.Wait()
		close(ticks)
	}()
	completed := 0
	for range ticks {
		completed++
		s.report(completed)
	}
	acc := newAccumulator(config.SweepLow, config.SweepHigh, names)
	for _, partial := range partials {
		acc.merge(partial)
	}
	return acc.average(config.Trials), nil
}

func (s *Simulator) accumulate(acc *accumulator, trace Trace) {
	config := s.config
	for capacity := config.SweepLow; capacity <= config.SweepHigh; capacity++ {
		for i, policy := range config.Policies {
			// Capacity and policies were validated in New.
			acc.add(capacity, i, policy.simulate(trace, capacity))
		}
	}
}

func (s *Simulator) report(trial int) {
	if progress := s.config.Progress; progress != nil {
		progress(trial, s.config.Trials)
	}
}

// An accumulator collects per-capacity, per-policy fault totals across
// trials and finalizes them into an immutable [Results].
type accumulator struct {
	low, high int
	names     []string
	totals    [][]int
}

func newAccumulator(low, high int, names []string) *accumulator {
	totals := make([][]int, high-low+1)
	for i := range totals {
		totals[i] = make([]int, len(names))
	}
	return &accumulator{low: low, high: high, names: names, totals: totals}
}

func (a *accumulator) add(capacity, policy, faults int) {
	a.totals[capacity-a.low][policy] += faults
}

func (a *accumulator) merge(other *accumulator) {
	for i, row := range other.totals {
		for j, total := range row {
			a.totals[i][j] += total
		}
	}
}

// average divides every total by trials, discarding the fractional
// remainder. The truncation matches the reference output and is asserted
// by tests; do not "improve" it to rounding.
func (a *accumulator) average(trials int) *Results {
	faults := make([][]int, len(a.totals))
	for i, row := range a.totals {
		faults[i] = make([]int, len(row))
		for j, total := range row {
			faults[i][j] = total / trials
		}
	}
	return &Results{low: a.low, high: a.high, names: a.names, faults: faults}
}

// Results is the final table of averaged fault counts, one row per
// working-set size in the sweep and one column per policy.
// Finalized by [Simulator.Run]; immutable afterwards.
type Results struct {
	low, high int
	names     []string
	faults    [][]int
}

// Bounds returns the inclusive working-set-size range covered by the table.
func (r *Results) Bounds() (low, high int) { return r.low, r.high }

// Policies returns the policy names in column order.
func (r *Results) Policies() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Faults returns the averaged fault count for the given working-set size
// and policy name, or false if either lies outside the table.
func (r *Results) Faults(capacity int, policy string) (int, bool) {
	if capacity < r.low || capacity > r.high {
		return 0, false
	}
	for i, name := range r.names {
		if name == policy {
			return r.faults[capacity-r.low][i], true
		}
	}
	return 0, false
}

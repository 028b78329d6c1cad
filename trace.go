package pagesim

import (
	"fmt"
	"math"
	"math/rand"
)

// A Trace is an ordered sequence of page references.
// Once generated it is treated as immutable.
type Trace []int

// TraceConfig parameterizes synthetic trace generation.
// [DefaultTraceConfig] mirrors the reference workload.
type TraceConfig struct {
	// Length is the number of references per trace.
	Length int
	// RegionSize is the number of consecutive references
	// drawn from the same locality region.
	RegionSize int
	// Stride separates the value bands of adjacent regions.
	Stride int
	// Mean and StdDev parameterize the normal distribution
	// sampled within each region.
	Mean, StdDev float64
}

// DefaultTraceConfig returns the reference workload: traces of 1000
// references in regions of 100, bands 10 apart, drawn from N(10, 2).
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		Length:     1000,
		RegionSize: 100,
		Stride:     10,
		Mean:       10,
		StdDev:     2,
	}
}

func (c TraceConfig) validate() error {
	switch {
	case c.Length < 1:
		return fmt.Errorf(
			"%w: length must be positive but %d was requested",
			ErrInvalidTrace, c.Length)
	case c.RegionSize < 1:
		return fmt.Errorf(
			"%w: region size must be positive but %d was requested",
			ErrInvalidTrace, c.RegionSize)
	case c.Stride < 0:
		return fmt.Errorf(
			"%w: stride must not be negative but %d was requested",
			ErrInvalidTrace, c.Stride)
	case c.StdDev < 0:
		return fmt.Errorf(
			"%w: standard deviation must not be negative but %v was requested",
			ErrInvalidTrace, c.StdDev)
	}
	return nil
}

// A Generator produces region-structured synthetic traces: reference j
// takes the value Stride*(j/RegionSize) + normal(Mean, StdDev), truncated
// toward zero. Values cluster in non-overlapping bands per region, with
// occasional cross-region noise from the normal tail.
// Constructed by [NewGenerator].
type Generator struct {
	config TraceConfig
	rng    *rand.Rand
}

// NewGenerator creates a [Generator] drawing its uniform samples from rng.
// The generator owns no seeding logic; callers control reproducibility
// through the source they pass in.
func NewGenerator(config TraceConfig, rng *rand.Rand) (*Generator, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: generator requires a *rand.Rand", ErrNoSource)
	}
	return &Generator{config: config, rng: rng}, nil
}

// Generate produces one fresh trace, advancing the generator's random
// stream. Each call yields an independent trace.
func (g *Generator) Generate() Trace {
	var (
		config = g.config
		trace  = make(Trace, config.Length)
	)
	for j := range trace {
		base := config.Stride * (j / config.RegionSize)
		// int() truncates toward zero rather than rounding;
		// the resulting bias is part of the reference workload.
		trace[j] = base + int(g.normal())
	}
	return trace
}

// normal draws one sample from N(Mean, StdDev) via the Box–Muller
// transform. The first uniform draw is resampled while it is zero to keep
// the logarithm finite.
func (g *Generator) normal() float64 {
	var r1 float64
	for r1 == 0 {
		r1 = g.rng.Float64()
	}
	r2 := g.rng.Float64()
	return math.Sqrt(-2*math.Log(r1))*math.Cos(2*math.Pi*r2)*g.config.StdDev + g.config.Mean
}

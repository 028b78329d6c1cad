package pagesim_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	pagesim "github.com/jhael/go-pagesim"
)

func TestGenerator(t *testing.T) {
	t.Run("invalid configuration", generatorInvalidConfig)
	t.Run("missing source", generatorMissingSource)
	t.Run("length", generatorLength)
	t.Run("seed reproducibility", generatorReproducible)
	t.Run("fresh trace per call", generatorFreshTraces)
	t.Run("sample statistics", generatorStatistics)
}

func generatorInvalidConfig(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name   string
		mutate func(*pagesim.TraceConfig)
	}{
		{"zero length", func(c *pagesim.TraceConfig) { c.Length = 0 }},
		{"negative length", func(c *pagesim.TraceConfig) { c.Length = -5 }},
		{"zero region size", func(c *pagesim.TraceConfig) { c.RegionSize = 0 }},
		{"negative stride", func(c *pagesim.TraceConfig) { c.Stride = -1 }},
		{"negative deviation", func(c *pagesim.TraceConfig) { c.StdDev = -2 }},
	} {
		t.Run(test.name, func(t *testing.T) {
			config := pagesim.DefaultTraceConfig()
			test.mutate(&config)
			generator, err := pagesim.NewGenerator(config, rand.New(rand.NewSource(1)))
			if generator != nil || err == nil {
				t.Fatalf("NewGenerator accepted an invalid configuration: %+v", config)
			}
			if !errors.Is(err, pagesim.ErrInvalidTrace) {
				t.Fatalf("expected error to match ErrInvalidTrace, got: %v", err)
			}
		})
	}
}

func generatorMissingSource(t *testing.T) {
	t.Parallel()
	generator, err := pagesim.NewGenerator(pagesim.DefaultTraceConfig(), nil)
	if generator != nil || err == nil {
		t.Fatal("NewGenerator accepted a nil random source")
	}
	if !errors.Is(err, pagesim.ErrNoSource) {
		t.Fatalf("expected error to match ErrNoSource, got: %v", err)
	}
}

func generatorLength(t *testing.T) {
	t.Parallel()
	for _, length := range []int{1, 100, 1000, 2500} {
		config := pagesim.DefaultTraceConfig()
		config.Length = length
		generator, err := pagesim.NewGenerator(config, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatal(err)
		}
		if got := len(generator.Generate()); got != length {
			t.Fatalf(
				"unexpected trace length"+
					"\n\tgot: %d"+
					"\n\twant: %d",
				got, length)
		}
	}
}

func generatorReproducible(t *testing.T) {
	t.Parallel()
	const seed = 7
	var (
		first  = newTraces(t, 1, seed)[0]
		second = newTraces(t, 1, seed)[0]
	)
	if !slices.Equal(first, second) {
		t.Fatal("expected identical traces from identically seeded generators")
	}
}

func generatorFreshTraces(t *testing.T) {
	t.Parallel()
	traces := newTraces(t, 2, 8)
	if slices.Equal(traces[0], traces[1]) {
		t.Fatal("consecutive traces did not advance the random stream")
	}
}

// generatorStatistics checks the per-region offsets against the configured
// distribution. Samples are truncated toward zero rather than rounded, so
// the observed mean sits roughly half a page below the configured mean of
// 10; a rounding generator would center on 10 and fail the upper bound.
func generatorStatistics(t *testing.T) {
	t.Parallel()
	var (
		config  = pagesim.DefaultTraceConfig()
		offsets []int
	)
	for _, trace := range newTraces(t, 100, 9) {
		for j, page := range trace {
			base := config.Stride * (j / config.RegionSize)
			offsets = append(offsets, page-base)
		}
	}
	var sum float64
	for _, offset := range offsets {
		sum += float64(offset)
	}
	mean := sum / float64(len(offsets))
	if mean < 9.3 || mean > 9.7 {
		t.Fatalf(
			"offset mean %.3f outside [9.3, 9.7] (truncated N(10, 2))",
			mean)
	}
	var squares float64
	for _, offset := range offsets {
		diff := float64(offset) - mean
		squares += diff * diff
	}
	deviation := math.Sqrt(squares / float64(len(offsets)))
	if deviation < 1.9 || deviation > 2.2 {
		t.Fatalf(
			"offset deviation %.3f outside [1.9, 2.2] (truncated N(10, 2))",
			deviation)
	}
}

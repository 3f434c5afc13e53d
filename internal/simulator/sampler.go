package simulator

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler abstracts the daily conversion draw.
type Sampler interface {
	// Name returns a human-readable sampler name.
	Name() string
	// Sample draws one conversion count out of n visitors with success probability p.
	Sample(n int, p float64) int
}

// BinomialSampler draws conversion counts from a binomial distribution over a
// seeded source. The same seed yields the same draw sequence.
type BinomialSampler struct {
	src rand.Source
}

// NewBinomialSampler creates a sampler seeded for reproducibility.
func NewBinomialSampler(seed uint64) *BinomialSampler {
	return &BinomialSampler{src: rand.NewSource(seed)}
}

func (s *BinomialSampler) Name() string { return "binomial" }

func (s *BinomialSampler) Sample(n int, p float64) int {
	d := distuv.Binomial{N: float64(n), P: p, Src: s.src}
	return int(d.Rand())
}

// FixedSampler replays a fixed conversions sequence for development and testing.
type FixedSampler struct {
	Conversions []int
	next        int
}

func (f *FixedSampler) Name() string { return "fixed" }

func (f *FixedSampler) Sample(_ int, _ float64) int {
	if len(f.Conversions) == 0 {
		return 0
	}
	c := f.Conversions[f.next%len(f.Conversions)]
	f.next++
	return c
}

// Package avalanche measures how well the hash finalizers diffuse
// single-bit input changes. For a good avalanche mixer every input-bit
// flip should flip each output bit with probability 0.5; this package
// estimates those probabilities over random inputs and summarizes the
// bias.
package avalanche

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/LIONant-depot/xbits/pkg/xbits"
)

// Report summarizes the flip-rate matrix of one measurement run.
type Report struct {
	Width   int // Word width in bits (32 or 64)
	Samples int // Random inputs measured

	MeanFlip  float64 // Mean output-bit flip probability (ideal: 0.5)
	StdDev    float64 // Standard deviation of the flip rates
	WorstBias float64 // Largest |rate - 0.5| over all (input, output) bit pairs
}

// Stats32 measures the 32-bit finalizer over samples random inputs.
// The seed fixes the input stream, so identical calls produce
// identical reports.
func Stats32(samples int, seed uint64) Report {
	rng := rand.New(rand.NewSource(int64(seed)))
	counts := make([]int, 32*32)

	for n := 0; n < samples; n++ {
		x := rng.Uint32()
		h := xbits.Mix32(x)
		for in := 0; in < 32; in++ {
			diff := h ^ xbits.Mix32(x^(1<<in))
			for out := 0; out < 32; out++ {
				if diff&(1<<out) != 0 {
					counts[in*32+out]++
				}
			}
		}
	}

	return summarize(32, samples, counts)
}

// Stats64 measures the 64-bit finalizer over samples random inputs.
func Stats64(samples int, seed uint64) Report {
	rng := rand.New(rand.NewSource(int64(seed)))
	counts := make([]int, 64*64)

	for n := 0; n < samples; n++ {
		x := rng.Uint64()
		h := xbits.Mix64(x)
		for in := 0; in < 64; in++ {
			diff := h ^ xbits.Mix64(x^(1<<in))
			for out := 0; out < 64; out++ {
				if diff&(1<<out) != 0 {
					counts[in*64+out]++
				}
			}
		}
	}

	return summarize(64, samples, counts)
}

func summarize(width, samples int, counts []int) Report {
	rates := make([]float64, len(counts))
	worst := 0.0
	for i, c := range counts {
		r := float64(c) / float64(samples)
		rates[i] = r
		bias := r - 0.5
		if bias < 0 {
			bias = -bias
		}
		if bias > worst {
			worst = bias
		}
	}

	return Report{
		Width:     width,
		Samples:   samples,
		MeanFlip:  stat.Mean(rates, nil),
		StdDev:    stat.StdDev(rates, nil),
		WorstBias: worst,
	}
}

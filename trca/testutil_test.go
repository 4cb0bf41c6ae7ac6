package trca_test

import (
	"math"
	"math/rand"
)

// synthTrials builds two-channel sinusoidal trials, one stimulus
// frequency per class, with optional Gaussian noise. Channel 0 carries
// the raw sinusoid; channel 1 a fixed sin/cos mixture, so each class
// spans a two-dimensional subspace. Deterministic for a fixed seed.
func synthTrials(freqs []float64, labels []int, perClass, nSamples int, srate, noise float64, seed int64) ([][][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))

	trials := make([][][]float64, 0, len(freqs)*perClass)
	y := make([]int, 0, len(freqs)*perClass)
	for ci, f := range freqs {
		for trial := 0; trial < perClass; trial++ {
			ch0 := make([]float64, nSamples)
			ch1 := make([]float64, nSamples)
			for i := 0; i < nSamples; i++ {
				phase := 2 * math.Pi * f * float64(i) / srate
				s, c := math.Sin(phase), math.Cos(phase)
				ch0[i] = s + noise*rng.NormFloat64()
				ch1[i] = 0.6*s + 0.8*c + noise*rng.NormFloat64()
			}
			trials = append(trials, [][]float64{ch0, ch1})
			y = append(y, labels[ci])
		}
	}

	return trials, y
}

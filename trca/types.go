// Package trca: sentinel error set, classifier options and shared
// validation helpers.
//
// All exported operations return ONLY the sentinels below (optionally
// wrapped with fmt.Errorf("ctx: %w", ErrX) for context); callers match
// with errors.Is. No exported operation panics on user input.
package trca

import (
	"errors"
	"math"
)

var (
	// ErrShapeMismatch indicates disagreeing dimensions: labels vs trial
	// count, non-uniform channel/sample counts within one call, or
	// predict-time dimensions differing from fit-time dimensions.
	ErrShapeMismatch = errors.New("trca: shape mismatch")

	// ErrNotFitted indicates Transform/Predict before a successful Fit.
	ErrNotFitted = errors.New("trca: estimator is not fitted")

	// ErrDecomposition indicates the generalized eigenproblem remained
	// unsolvable even through the pseudo-inverse whitening path.
	ErrDecomposition = errors.New("trca: generalized eigendecomposition failed")

	// ErrTooFewTrials indicates a class with fewer than 2 trials;
	// inter-trial covariance is undefined below that.
	ErrTooFewTrials = errors.New("trca: class has fewer than 2 trials")

	// ErrTooFewClasses indicates fewer than 2 distinct labels at fit time.
	ErrTooFewClasses = errors.New("trca: fit requires at least 2 distinct classes")

	// ErrBadComponents indicates NComponents < 1 or > channel count.
	ErrBadComponents = errors.New("trca: component count out of range")

	// ErrBadWeights indicates a filter-weight vector whose length does
	// not equal the number of sub-bands.
	ErrBadWeights = errors.New("trca: filter weights must match bank size")

	// ErrNilBank indicates a nil filter bank passed to NewFBTRCA.
	ErrNilBank = errors.New("trca: nil filter bank")
)

// Options configures the FBTRCA ensemble classifier.
//
// Fields:
//   - NComponents   — retained spatial-filter dimensions per class, ≥ 1.
//   - Ensemble      — if true, all class filters are applied jointly at
//     scoring time; if false, each class is scored with its own filter.
//   - FilterWeights — one coefficient per sub-band, aligned with the
//     bank's band order. By convention non-increasing (higher harmonics
//     carry less discriminative power), but any ordering is accepted.
//     nil means uniform weights.
//   - NJobs         — sub-band parallelism degree; values ≤ 0 resolve to
//     all available execution units at call time.
type Options struct {
	NComponents   int
	Ensemble      bool
	FilterWeights []float64
	NJobs         int
}

// DefaultOptions returns the canonical configuration: one component per
// class, ensemble scoring, uniform weights, full parallelism.
func DefaultOptions() Options {
	return Options{NComponents: 1, Ensemble: true, FilterWeights: nil, NJobs: -1}
}

// DefaultFilterWeights returns the standard filter-bank fusion
// coefficients w[i] = (i+1)^-1.25 + 0.25 for n sub-bands, the weighting
// used throughout the SSVEP filter-bank literature.
func DefaultFilterWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = math.Pow(float64(i+1), -1.25) + 0.25
	}

	return w
}

// checkTrials validates a trial tensor: at least one trial, every trial
// with the same positive channel count, every channel with the same
// positive sample count. Returns (channels, samples).
func checkTrials(trials [][][]float64) (int, int, error) {
	if len(trials) == 0 {
		return 0, 0, ErrShapeMismatch
	}

	nChannels := len(trials[0])
	if nChannels == 0 {
		return 0, 0, ErrShapeMismatch
	}
	nSamples := len(trials[0][0])
	if nSamples == 0 {
		return 0, 0, ErrShapeMismatch
	}

	for _, trial := range trials {
		if len(trial) != nChannels {
			return 0, 0, ErrShapeMismatch
		}
		for _, ch := range trial {
			if len(ch) != nSamples {
				return 0, 0, ErrShapeMismatch
			}
		}
	}

	return nChannels, nSamples, nil
}

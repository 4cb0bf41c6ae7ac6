// Package filterbank: sentinel error set and core types.
//
// All exported operations return ONLY the sentinels below (optionally
// wrapped with fmt.Errorf("ctx: %w", ErrX) for context); callers match
// with errors.Is. No exported operation panics on user input.
package filterbank

import "errors"

var (
	// ErrBadBand indicates invalid band edges: low ≥ high, an edge at or
	// above Nyquist, a non-positive edge, pass edges not strictly inside
	// the stop edges, or pass/stop lists of unequal (or zero) length.
	ErrBadBand = errors.New("filterbank: invalid band edges")

	// ErrBadOrder indicates a filter order below 1.
	ErrBadOrder = errors.New("filterbank: order must be a positive integer")

	// ErrBadRipple indicates a non-positive pass-band ripple.
	ErrBadRipple = errors.New("filterbank: ripple must be positive (dB)")

	// ErrBadRate indicates a non-positive sampling rate.
	ErrBadRate = errors.New("filterbank: sampling rate must be positive")

	// ErrBandIndex indicates a sub-band index outside [0, Len).
	ErrBandIndex = errors.New("filterbank: band index out of range")

	// ErrShortSignal indicates a signal too short for the zero-phase
	// edge-reflection scheme (len must exceed the reflection pad).
	ErrShortSignal = errors.New("filterbank: signal too short for zero-phase filtering")
)

// biquad is one normalized second-order section: transfer function
// (b0 + b1·z⁻¹ + b2·z⁻²) / (1 + a1·z⁻¹ + a2·z⁻²).
type biquad struct {
	b [3]float64
	a [2]float64 // a[0]=a1, a[1]=a2; a0 is normalized to 1
}

// Band is one sub-band of a filter bank: a cascade of second-order
// sections realizing a single Chebyshev Type I band-pass filter.
// A Band is immutable once designed and safe for concurrent reads.
type Band struct {
	// Low and High are the pass-band edges in Hz used for the design.
	Low, High float64

	sections []biquad
}

// Bank is an ordered sequence of Bands, one per (pass, stop) pair given
// to Design. The order is preserved and later aligns 1:1 with the
// sub-band weight vector of the ensemble classifier.
// A Bank is immutable once built and safe for concurrent reads.
type Bank struct {
	srate float64
	bands []Band
}

// Len returns the number of sub-bands in the bank.
func (bk *Bank) Len() int { return len(bk.bands) }

// SampleRate returns the sampling rate the bank was designed for, in Hz.
func (bk *Bank) SampleRate() float64 { return bk.srate }

// Band returns the i-th sub-band, preserving design order.
func (bk *Bank) Band(i int) (Band, error) {
	if i < 0 || i >= len(bk.bands) {
		return Band{}, ErrBandIndex
	}

	return bk.bands[i], nil
}

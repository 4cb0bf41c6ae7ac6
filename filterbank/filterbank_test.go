package filterbank_test

import (
	"math"
	"testing"

	"github.com/lucidbci/ssvep/filterbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine returns n samples of a unit sine at freq Hz sampled at srate Hz.
func sine(freq, srate float64, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / srate)
	}

	return x
}

// rms returns the root-mean-square of the middle half of x, avoiding
// edge transients.
func rms(x []float64) float64 {
	lo, hi := len(x)/4, 3*len(x)/4
	var acc float64
	for _, v := range x[lo:hi] {
		acc += v * v
	}

	return math.Sqrt(acc / float64(hi-lo))
}

// TestDesign_InvalidEdges verifies that degenerate or out-of-range band
// edges fail with ErrBadBand and are never clamped.
func TestDesign_InvalidEdges(t *testing.T) {
	srate := 250.0

	// low >= high
	_, err := filterbank.Design([][2]float64{{20, 10}}, [][2]float64{{8, 30}}, srate, 4, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadBand, "low >= high must error")

	// edge at Nyquist
	_, err = filterbank.Design([][2]float64{{10, 125}}, [][2]float64{{8, 130}}, srate, 4, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadBand, "edge at Nyquist must error")

	// non-positive low edge
	_, err = filterbank.Design([][2]float64{{0, 40}}, [][2]float64{{-1, 45}}, srate, 4, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadBand, "zero low edge must error")

	// pass edges not strictly inside stop edges
	_, err = filterbank.Design([][2]float64{{5, 40}}, [][2]float64{{5, 45}}, srate, 4, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadBand, "pass edge touching stop edge must error")

	// mismatched list lengths
	_, err = filterbank.Design([][2]float64{{5, 40}, {10, 40}}, [][2]float64{{3, 45}}, srate, 4, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadBand, "unequal pass/stop lists must error")

	// empty lists
	_, err = filterbank.Design(nil, nil, srate, 4, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadBand, "empty band lists must error")
}

// TestDesign_InvalidParameters verifies the scalar parameter guards.
func TestDesign_InvalidParameters(t *testing.T) {
	pass := [][2]float64{{8, 20}}
	stop := [][2]float64{{6, 24}}

	_, err := filterbank.Design(pass, stop, 250, 0, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadOrder, "order 0 must error")

	_, err = filterbank.Design(pass, stop, 250, 4, 0)
	assert.ErrorIs(t, err, filterbank.ErrBadRipple, "ripple 0 must error")

	_, err = filterbank.Design(pass, stop, 0, 4, 0.5)
	assert.ErrorIs(t, err, filterbank.ErrBadRate, "srate 0 must error")
}

// TestDesign_OrderPreserved verifies the bank keeps bands in input order
// and guards band indexing.
func TestDesign_OrderPreserved(t *testing.T) {
	pass := [][2]float64{{5, 90}, {14, 90}, {22, 90}}
	stop := [][2]float64{{3, 92}, {12, 92}, {20, 92}}

	bank, err := filterbank.Design(pass, stop, 250, 4, 0.5)
	require.NoError(t, err)
	require.Equal(t, 3, bank.Len(), "one band per pair")
	assert.Equal(t, 250.0, bank.SampleRate())

	for i := range pass {
		bd, err := bank.Band(i)
		require.NoError(t, err)
		assert.Equal(t, pass[i][0], bd.Low, "band %d low edge", i)
		assert.Equal(t, pass[i][1], bd.High, "band %d high edge", i)
	}

	_, err = bank.Band(3)
	assert.ErrorIs(t, err, filterbank.ErrBandIndex)
	_, err = bank.Band(-1)
	assert.ErrorIs(t, err, filterbank.ErrBandIndex)
}

// TestDesign_Determinism verifies that two banks designed with identical
// arguments produce identical filtered output (property: bit-stable
// coefficients).
func TestDesign_Determinism(t *testing.T) {
	pass := [][2]float64{{8, 20}}
	stop := [][2]float64{{6, 24}}

	bank1, err := filterbank.Design(pass, stop, 250, 6, 0.5)
	require.NoError(t, err)
	bank2, err := filterbank.Design(pass, stop, 250, 6, 0.5)
	require.NoError(t, err)

	x := sine(12, 250, 500)
	y1, err := bank1.ZeroPhase(0, x)
	require.NoError(t, err)
	y2, err := bank2.ZeroPhase(0, x)
	require.NoError(t, err)

	assert.Equal(t, y1, y2, "identical designs must filter identically")
}

// TestZeroPhase_PassAndStop verifies basic band-pass behavior: an
// in-band tone survives while a far out-of-band tone is attenuated.
func TestZeroPhase_PassAndStop(t *testing.T) {
	bank, err := filterbank.Design([][2]float64{{8, 20}}, [][2]float64{{6, 24}}, 250, 4, 0.5)
	require.NoError(t, err)

	inBand := sine(12, 250, 1000)
	outBand := sine(60, 250, 1000)

	yIn, err := bank.ZeroPhase(0, inBand)
	require.NoError(t, err)
	yOut, err := bank.ZeroPhase(0, outBand)
	require.NoError(t, err)

	assert.Greater(t, rms(yIn)/rms(inBand), 0.5, "12 Hz tone must survive the 8-20 Hz band")
	assert.Less(t, rms(yOut)/rms(outBand), 0.1, "60 Hz tone must be attenuated by the 8-20 Hz band")
}

// TestZeroPhase_NoGroupDelay verifies the zero-phase property: an
// in-band tone comes out phase-aligned with the input. A causal
// single-pass cascade of this order would shift 12 Hz by a large
// fraction of its period and fail this bound.
func TestZeroPhase_NoGroupDelay(t *testing.T) {
	bank, err := filterbank.Design([][2]float64{{8, 20}}, [][2]float64{{6, 24}}, 250, 4, 0.5)
	require.NoError(t, err)

	x := sine(12, 250, 800)
	y, err := bank.ZeroPhase(0, x)
	require.NoError(t, err)

	// Normalized alignment over the middle half, away from edge
	// transients. Both signals are zero-mean tones.
	lo, hi := len(x)/4, 3*len(x)/4
	var dot, xx, yy float64
	for i := lo; i < hi; i++ {
		dot += x[i] * y[i]
		xx += x[i] * x[i]
		yy += y[i] * y[i]
	}
	assert.Greater(t, dot/math.Sqrt(xx*yy), 0.99, "filtered tone must stay phase-aligned")
}

// TestZeroPhase_InputUnchanged verifies that filtering never mutates the
// caller's signal.
func TestZeroPhase_InputUnchanged(t *testing.T) {
	bank, err := filterbank.Design([][2]float64{{8, 20}}, [][2]float64{{6, 24}}, 250, 4, 0.5)
	require.NoError(t, err)

	x := sine(12, 250, 300)
	orig := make([]float64, len(x))
	copy(orig, x)

	y, err := bank.ZeroPhase(0, x)
	require.NoError(t, err)
	require.Len(t, y, len(x), "output length equals input length")
	assert.Equal(t, orig, x, "input signal must not be mutated")
}

// TestZeroPhase_ShortSignal verifies the edge-reflection length guard.
func TestZeroPhase_ShortSignal(t *testing.T) {
	bank, err := filterbank.Design([][2]float64{{8, 20}}, [][2]float64{{6, 24}}, 250, 4, 0.5)
	require.NoError(t, err)

	_, err = bank.ZeroPhase(0, []float64{1, 2, 3})
	assert.ErrorIs(t, err, filterbank.ErrShortSignal)
}

// TestFilterTrial verifies per-channel filtering of a trial: shape is
// preserved, channels are filtered independently, input is untouched.
func TestFilterTrial(t *testing.T) {
	bank, err := filterbank.Design([][2]float64{{8, 20}}, [][2]float64{{6, 24}}, 250, 4, 0.5)
	require.NoError(t, err)

	trial := [][]float64{sine(12, 250, 400), sine(60, 250, 400)}
	want0, err := bank.ZeroPhase(0, trial[0])
	require.NoError(t, err)

	out, err := bank.FilterTrial(0, trial)
	require.NoError(t, err)
	require.Len(t, out, 2, "channel count preserved")
	require.Len(t, out[0], 400, "sample count preserved")

	assert.Equal(t, want0, out[0], "per-channel result matches ZeroPhase")
	assert.Less(t, rms(out[1])/rms(trial[1]), 0.1, "out-of-band channel attenuated")

	_, err = bank.FilterTrial(5, trial)
	assert.ErrorIs(t, err, filterbank.ErrBandIndex)
}

// Package filterbank designs cascades of Chebyshev Type I band-pass
// filters and applies them with zero-phase (forward-backward) filtering.
//
// 🚀 What is a filter bank?
//
//	A set of band-pass filters applied in parallel to decompose a signal
//	into frequency sub-bands. In SSVEP decoding each sub-band isolates
//	one harmonic region of the steady-state response; the sub-bands are
//	analyzed independently and their scores fused downstream.
//
// ✨ Key properties:
//   - Chebyshev Type I design: exact pass-band ripple control, steep
//     roll-off at moderate orders
//   - second-order-section (biquad) cascades: numerically stable even at
//     high orders, unlike monolithic transfer-function polynomials
//   - zero-phase application: forward-backward filtering removes group
//     delay so templates and trials stay time-aligned
//   - deterministic: identical inputs yield identical coefficients
//
// ⚙️ Usage:
//
//	import "github.com/lucidbci/ssvep/filterbank"
//
//	pass := [][2]float64{{5, 90}, {14, 90}, {22, 90}}
//	stop := [][2]float64{{3, 92}, {12, 92}, {20, 92}}
//	bank, err := filterbank.Design(pass, stop, 250, 15, 0.5)
//	if err != nil {
//	  // handle ErrBadBand, ErrBadOrder, ErrBadRipple or ErrBadRate
//	}
//	filtered, err := bank.ZeroPhase(0, signal)
//
// The builder never clamps or adjusts edges: any band with low ≥ high,
// an edge at or above Nyquist, or pass edges not strictly inside the
// stop edges is rejected with ErrBadBand.
package filterbank

package filterbank

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Design builds one Chebyshev Type I digital band-pass filter per
// (pass, stop) frequency pair.
//
// Inputs:
//   - passBands, stopBands — equal-length ordered lists of (low, high)
//     edge pairs in Hz. For every i, passBands[i] must lie strictly
//     inside stopBands[i] (pass edges tighter than stop edges).
//   - srate  — sampling rate in Hz, > 0.
//   - order  — filter order, ≥ 1. The pass-band edges drive the design;
//     stop edges are validated for containment only.
//   - ripple — allowed pass-band ripple in dB, > 0.
//
// Design pipeline per band:
//  1. analog Chebyshev Type I low-pass prototype (unit cutoff),
//  2. low-pass → band-pass transform at the pre-warped edges,
//  3. bilinear transform,
//  4. factoring into a cascade of second-order sections with the total
//     gain split evenly across sections.
//
// The returned Bank preserves input order. No edge is ever clamped or
// adjusted: invalid configurations fail with ErrBadBand / ErrBadOrder /
// ErrBadRipple / ErrBadRate.
//
// Determinism: identical arguments yield identical coefficients.
//
// Complexity: O(bands · order) time, O(bands · order) memory.
func Design(passBands, stopBands [][2]float64, srate float64, order int, ripple float64) (*Bank, error) {
	if srate <= 0 {
		return nil, ErrBadRate
	}
	if order < 1 {
		return nil, ErrBadOrder
	}
	if ripple <= 0 {
		return nil, ErrBadRipple
	}
	if len(passBands) == 0 || len(passBands) != len(stopBands) {
		return nil, ErrBadBand
	}

	nyquist := srate / 2
	bands := make([]Band, 0, len(passBands))
	for i := range passBands {
		wp, ws := passBands[i], stopBands[i]
		if err := validateEdges(wp, nyquist); err != nil {
			return nil, fmt.Errorf("pass band %d: %w", i, err)
		}
		if err := validateEdges(ws, nyquist); err != nil {
			return nil, fmt.Errorf("stop band %d: %w", i, err)
		}
		// Pass edges must be strictly inside the stop edges.
		if wp[0] <= ws[0] || wp[1] >= ws[1] {
			return nil, fmt.Errorf("band %d: pass edges not inside stop edges: %w", i, ErrBadBand)
		}

		bands = append(bands, Band{
			Low:      wp[0],
			High:     wp[1],
			sections: cheby1Bandpass(order, ripple, wp[0], wp[1], srate),
		})
	}

	return &Bank{srate: srate, bands: bands}, nil
}

// validateEdges checks a single (low, high) pair against positivity,
// ordering and the Nyquist bound.
func validateEdges(edge [2]float64, nyquist float64) error {
	if edge[0] <= 0 || edge[0] >= edge[1] || edge[1] >= nyquist {
		return ErrBadBand
	}

	return nil
}

// cheby1Prototype returns the poles and gain of the analog Chebyshev
// Type I low-pass prototype (cutoff 1 rad/s) for the given order and
// pass-band ripple in dB. Poles come in conjugate pairs (k, order+1-k);
// odd orders contribute one real pole in the middle.
func cheby1Prototype(order int, ripple float64) ([]complex128, float64) {
	eps := math.Sqrt(math.Pow(10, ripple/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, order)
	for k := 1; k <= order; k++ {
		theta := math.Pi * float64(2*k-1) / float64(2*order)
		poles[k-1] = complex(-math.Sinh(mu)*math.Sin(theta), math.Cosh(mu)*math.Cos(theta))
	}

	// DC gain: product of negated poles; even orders sit at the ripple
	// floor rather than unity at DC.
	prod := complex(1, 0)
	for _, p := range poles {
		prod *= -p
	}
	gain := real(prod)
	if order%2 == 0 {
		gain /= math.Sqrt(1 + eps*eps)
	}

	return poles, gain
}

// imTol separates genuinely real prototype poles from conjugate pairs.
const imTol = 1e-12

// cheby1Bandpass designs one digital Chebyshev Type I band-pass filter
// as a cascade of `order` second-order sections.
//
// The low-pass prototype is transformed to an analog band-pass at the
// pre-warped edges (each prototype pole splits into two), then mapped to
// the z-plane by the bilinear transform. Each resulting conjugate pole
// pair forms one section; every section receives one zero at z=+1 and
// one at z=-1 (the images of s=0 and s=∞) and an equal share of the
// total gain.
func cheby1Bandpass(order int, ripple, low, high, srate float64) []biquad {
	protoPoles, protoGain := cheby1Prototype(order, ripple)

	// Pre-warped analog edges for the bilinear transform.
	fs2 := 2 * srate
	w1 := fs2 * math.Tan(math.Pi*low/srate)
	w2 := fs2 * math.Tan(math.Pi*high/srate)
	bw := w2 - w1
	w0sq := w1 * w2

	// Total digital gain: prototype gain, band-pass scale bw^order, and
	// the bilinear factor fs2^order / Π(fs2 - s) over all 2·order analog
	// band-pass poles. The pole product is real: poles pair up as
	// conjugates.
	den := complex(1, 0)
	for _, p := range protoPoles {
		q1, q2 := bandpassPoles(p, bw, w0sq)
		den *= (complex(fs2, 0) - q1) * (complex(fs2, 0) - q2)
	}
	gain := protoGain * math.Pow(bw, float64(order)) *
		math.Pow(fs2, float64(order)) / real(den)

	// Even gain split keeps section coefficients well scaled at high
	// orders and narrow bands, where the total gain underflows quickly.
	g := math.Pow(gain, 1/float64(order))

	sections := make([]biquad, 0, order)
	for _, p := range protoPoles {
		if imag(p) < -imTol {
			continue // conjugate partner handles this pair
		}

		q1, q2 := bandpassPoles(p, bw, w0sq)
		z1 := bilinear(q1, fs2)
		z2 := bilinear(q2, fs2)

		if imag(p) > imTol {
			// Complex prototype pole: z1 and z2 each pair with their own
			// conjugate (contributed by the partner prototype pole).
			sections = append(sections,
				sectionFromConjugatePair(z1, g),
				sectionFromConjugatePair(z2, g),
			)
			continue
		}

		// Real prototype pole (odd order): z1 and z2 pair with each other.
		sections = append(sections, biquad{
			b: [3]float64{g, 0, -g},
			a: [2]float64{-real(z1 + z2), real(z1 * z2)},
		})
	}

	return sections
}

// bandpassPoles maps one low-pass prototype pole to its two analog
// band-pass images: p·bw/2 ± sqrt((p·bw/2)² - w0²).
func bandpassPoles(p complex128, bw, w0sq float64) (complex128, complex128) {
	c := p * complex(bw/2, 0)
	d := cmplx.Sqrt(c*c - complex(w0sq, 0))

	return c + d, c - d
}

// bilinear maps an analog pole s to the z-plane: z = (fs2+s)/(fs2-s).
func bilinear(s complex128, fs2 float64) complex128 {
	return (complex(fs2, 0) + s) / (complex(fs2, 0) - s)
}

// sectionFromConjugatePair builds the section whose denominator has
// roots {z, conj(z)} and whose numerator is g·(z²-1).
func sectionFromConjugatePair(z complex128, g float64) biquad {
	return biquad{
		b: [3]float64{g, 0, -g},
		a: [2]float64{-2 * real(z), real(z)*real(z) + imag(z)*imag(z)},
	}
}

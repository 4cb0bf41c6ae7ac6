package trca

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// rankTol scales the largest eigenvalue of Q into the cutoff below
// which directions are treated as null space (pseudo-inverse policy).
const rankTol = 1e-12

// generalizedEig solves S·w = λ·Q·w for symmetric S and symmetric
// positive semi-definite Q, returning the eigenvectors of the nComp
// largest eigenvalues as the columns of a (n × nComp) matrix.
//
// Method: eigendecompose Q, drop near-null directions, whiten
// (M = Q^{-1/2}·S·Q^{-1/2}), eigendecompose the symmetric M, and map the
// leading eigenvectors back through the whitening transform. Rank
// deficiency in Q (e.g. fewer trials than channels) therefore reduces to
// an ordinary symmetric eigenproblem on the retained subspace instead of
// failing outright.
//
// Determinism: each returned column is unit-normalized with its
// largest-magnitude entry forced positive, fixing the solver's arbitrary
// eigenvector sign.
//
// Errors: ErrDecomposition when a factorization does not converge, Q has
// no positive spectrum, or the retained rank cannot supply nComp
// components.
func generalizedEig(s, q *mat.SymDense, nComp int) (*mat.Dense, error) {
	n := q.SymmetricDim()

	var esQ mat.EigenSym
	if !esQ.Factorize(q, true) {
		return nil, ErrDecomposition
	}
	qVals := esQ.Values(nil) // ascending
	var qVecs mat.Dense
	esQ.VectorsTo(&qVecs)

	maxVal := qVals[n-1]
	if maxVal <= 0 {
		return nil, ErrDecomposition
	}

	// Whitening basis: columns v_i / sqrt(d_i) for every direction above
	// the rank cutoff.
	cutoff := maxVal * rankTol * float64(n)
	kept := make([]int, 0, n)
	for i, d := range qVals {
		if d > cutoff {
			kept = append(kept, i)
		}
	}
	rank := len(kept)
	if rank < nComp {
		return nil, ErrDecomposition
	}

	whiten := mat.NewDense(n, rank, nil)
	for j, i := range kept {
		scale := 1 / math.Sqrt(qVals[i])
		for r := 0; r < n; r++ {
			whiten.Set(r, j, qVecs.At(r, i)*scale)
		}
	}

	// M = whitenᵀ · S · whiten, symmetrized against round-off.
	var sw mat.Dense
	sw.Mul(s, whiten)
	var m mat.Dense
	m.Mul(whiten.T(), &sw)

	msym := mat.NewSymDense(rank, nil)
	for i := 0; i < rank; i++ {
		for j := i; j < rank; j++ {
			msym.SetSym(i, j, 0.5*(m.At(i, j)+m.At(j, i)))
		}
	}

	var esM mat.EigenSym
	if !esM.Factorize(msym, true) {
		return nil, ErrDecomposition
	}
	var mVecs mat.Dense
	esM.VectorsTo(&mVecs)

	// Back-transform the leading eigenvectors (largest eigenvalues sit in
	// the last columns of the ascending-ordered factorization).
	w := mat.NewDense(n, nComp, nil)
	col := make([]float64, n)
	u := make([]float64, rank)
	for k := 0; k < nComp; k++ {
		mat.Col(u, rank-1-k, &mVecs)
		for r := 0; r < n; r++ {
			var acc float64
			for j := 0; j < rank; j++ {
				acc += whiten.At(r, j) * u[j]
			}
			col[r] = acc
		}
		normalizeSigned(col)
		w.SetCol(k, col)
	}

	return w, nil
}

// normalizeSigned scales v to unit norm and flips its sign so that the
// largest-magnitude entry is positive. A zero vector is left unchanged.
func normalizeSigned(v []float64) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return
	}

	var maxAbs float64
	maxIdx := 0
	for i, x := range v {
		if a := math.Abs(x); a > maxAbs {
			maxAbs = a
			maxIdx = i
		}
	}

	scale := 1 / norm
	if v[maxIdx] < 0 {
		scale = -scale
	}
	floats.Scale(scale, v)
}

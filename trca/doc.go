// Package trca implements task-related component analysis (TRCA) and
// its filter-bank ensemble classifier (FBTRCA) for SSVEP decoding.
//
// 🚀 What is TRCA?
//
//	A spatial-filtering technique that learns, per stimulus class, the
//	channel combination maximizing inter-trial reproducibility relative
//	to total signal power. Reproducible components are exactly what a
//	periodic steady-state response produces, so correlating a filtered
//	test trial against class-averaged templates separates the classes.
//
// The math: with S the inter-trial covariance (sum of cross-covariances
// over distinct trial pairs of one class) and Q the total covariance of
// the class's concatenated trials, the spatial filter w solves the
// generalized eigenproblem
//
//	S·w = λ·Q·w
//
// and the eigenvector of the largest λ is the class filter. FBTRCA runs
// one independent TRCA per filter-bank sub-band and fuses the per-class
// correlation scores r across sub-bands as
//
//	score(c) = Σ_b  weight[b] · sign(r_bc) · r_bc²
//
// ✨ Key properties:
//   - ensemble mode: all class filters are used jointly at scoring time,
//     generalizing single-component correlation to the multi-component
//     case by flatten-and-correlate
//   - deterministic: fixed eigenvector sign convention, ties broken by
//     lowest class label
//   - rank-robust: near-singular Q is handled by a pseudo-inverse
//     whitening eigensolver; only a genuinely unsolvable problem fails
//     with ErrDecomposition
//   - data-parallel: sub-bands fan out to a bounded worker pool (NJobs)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/lucidbci/ssvep/filterbank"
//	  "github.com/lucidbci/ssvep/trca"
//	)
//
//	bank, _ := filterbank.Design(pass, stop, 250, 15, 0.5)
//	opts := trca.DefaultOptions()
//	opts.FilterWeights = trca.DefaultFilterWeights(bank.Len())
//	clf, err := trca.NewFBTRCA(bank, opts)
//	if err != nil { ... }
//	if err := clf.Fit(trainTrials, trainLabels); err != nil { ... }
//	labels, err := clf.Predict(testTrials)
//
// Estimators carry no state across fits: every Fit recomputes all
// filters and templates from scratch.
package trca

// Package ssvep is an in-memory toolkit for decoding steady-state
// visually evoked potential (SSVEP) brain signals, from filter-bank
// construction to task-related component analysis and fold generation.
//
// 🚀 What is ssvep?
//
//	A small, deterministic library that brings together:
//		• Filter banks: Chebyshev Type I band-pass cascades with
//		  zero-phase (forward-backward) application
//		• TRCA: spatial filters maximizing inter-trial reproducibility,
//		  learned per class via a generalized eigenproblem
//		• FBTRCA: the filter-bank ensemble classifier fusing per-sub-band
//		  correlation scores into a single class decision
//		• Model selection: stratified, session-aware k-fold index
//		  generation with explicit seeding
//
// ✨ Why choose ssvep?
//
//   - Deterministic by construction – fixed eigenvector sign convention,
//     explicit RNG seeding, stable tie-breaking
//   - Strict contracts – sentinel errors, no silent coercion of shapes
//   - Data-parallel – sub-band fan-out over a bounded worker pool
//
// Everything is organized under three subpackages:
//
//	filterbank/ — band-pass filter design & zero-phase filtering
//	trca/       — TRCA estimator & FBTRCA ensemble classifier
//	modelsel/   — stratified k-fold index generation & RNG policy
//
// Quick sketch of a decoding run:
//
//	trials (N×C×T) ──filterbank──► sub-band trials ──TRCA──► templates
//	                                                  │
//	test trial ──filter──► correlate vs templates ──fuse──► class label
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
package ssvep

// Package modelsel generates stratified, session-aware k-fold index
// assignments for evaluating trial-based classifiers without leaking
// trials across folds.
//
// 🚀 What does it do?
//
//	Given per-trial metadata (subject, session, class label) it
//	partitions trial indices into k folds so that:
//	  • every fold holds an approximately equal share of every class
//	    within each subject (at most one trial of deviation),
//	  • each session contributes proportionally to every fold,
//	  • the validate fold is the one immediately following the test fold
//	    (mod k), supporting model selection without touching test data.
//
// ✨ Key properties:
//   - deterministic: all randomness flows through an explicitly seeded
//     *rand.Rand created with NewRNG; no hidden global state
//   - strict: a class with fewer trials than k fails with
//     ErrClassTooSmall instead of silently producing empty folds
//   - disjoint: for every fold, (train, validate, test) are pairwise
//     disjoint and their union is the full index set
//
// ⚙️ Usage:
//
//	import "github.com/lucidbci/ssvep/modelsel"
//
//	rng := modelsel.NewRNG(38)
//	assign, err := modelsel.GenerateKFoldIndices(meta, 6, rng)
//	if err != nil { ... }
//	for k := 0; k < 6; k++ {
//	  train, validate, test, _ := modelsel.MatchKFoldIndices(k, assign)
//	  // fit on train (+validate), score on test
//	}
//
// With k = 2 the train set is empty by construction (test and validate
// cover both folds); use k ≥ 3 for train/validate/test protocols.
package modelsel

// Package modelsel: sentinel error set and core types.
//
// All exported operations return ONLY the sentinels below (optionally
// wrapped with fmt.Errorf("ctx: %w", ErrX) for context); callers match
// with errors.Is. No exported operation panics on user input.
package modelsel

import "errors"

var (
	// ErrBadFoldCount indicates kfold < 2 at generation time.
	ErrBadFoldCount = errors.New("modelsel: fold count must be at least 2")

	// ErrNoTrials indicates empty trial metadata.
	ErrNoTrials = errors.New("modelsel: empty trial metadata")

	// ErrClassTooSmall indicates a (subject, class) group with fewer
	// trials than the fold count; folds would come out empty for it.
	ErrClassTooSmall = errors.New("modelsel: class has fewer trials than folds")

	// ErrBadFold indicates a fold number outside [0, kfold) or a nil
	// assignment passed to MatchKFoldIndices.
	ErrBadFold = errors.New("modelsel: fold number out of range")
)

// TrialMeta identifies one trial for fold assignment: which subject and
// session it was recorded in and its class label. The trial's position
// in the metadata slice is the index the fold triples refer to.
type TrialMeta struct {
	Subject int
	Session int
	Label   int
}

// Assignment maps every trial index to its fold, for a fixed fold count.
// Produced by GenerateKFoldIndices and consumed read-only by
// MatchKFoldIndices; immutable once created.
type Assignment struct {
	kfold int
	fold  []int // fold id per trial index
}

// KFold returns the fold count the assignment was generated with.
func (a *Assignment) KFold() int { return a.kfold }

// Len returns the number of trials covered by the assignment.
func (a *Assignment) Len() int { return len(a.fold) }

// Fold returns the fold id assigned to trial i.
func (a *Assignment) Fold(i int) int { return a.fold[i] }

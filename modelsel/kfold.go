package modelsel

import (
	"fmt"
	"math/rand"
	"sort"
)

// GenerateKFoldIndices assigns every trial to one of kfold folds,
// class-stratified within each subject and session-aware.
//
// Procedure, deterministic for a fixed rng:
//  1. Trials are grouped by (subject, label); groups are processed in
//     ascending (subject, label) order.
//  2. Within a group, trials are sub-grouped by session (ascending),
//     shuffled within each session, and concatenated.
//  3. The concatenated group is dealt round-robin to folds, so every
//     fold's class share deviates from the group's by at most one trial
//     and every session contributes proportionally to every fold.
//
// A nil rng falls back to NewRNG(0).
//
// Errors: ErrBadFoldCount (kfold < 2), ErrNoTrials, ErrClassTooSmall
// (some (subject, label) group has fewer trials than kfold).
//
// Complexity: O(n·log n) time, O(n) memory for n trials.
func GenerateKFoldIndices(meta []TrialMeta, kfold int, rng *rand.Rand) (*Assignment, error) {
	if kfold < 2 {
		return nil, ErrBadFoldCount
	}
	if len(meta) == 0 {
		return nil, ErrNoTrials
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	type groupKey struct{ subject, label int }
	groups := make(map[groupKey][]int)
	for i, m := range meta {
		k := groupKey{m.Subject, m.Label}
		groups[k] = append(groups[k], i)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].subject != keys[j].subject {
			return keys[i].subject < keys[j].subject
		}

		return keys[i].label < keys[j].label
	})

	fold := make([]int, len(meta))
	for _, k := range keys {
		idx := groups[k]
		if len(idx) < kfold {
			return nil, fmt.Errorf("subject %d class %d: %w", k.subject, k.label, ErrClassTooSmall)
		}

		ordered := sessionOrdered(meta, idx, rng)
		for pos, trial := range ordered {
			fold[trial] = pos % kfold
		}
	}

	return &Assignment{kfold: kfold, fold: fold}, nil
}

// sessionOrdered splits one (subject, label) group by session, shuffles
// each session's trials, and concatenates sessions in ascending order.
// Round-robin dealing over this ordering spreads every session across
// all folds.
func sessionOrdered(meta []TrialMeta, idx []int, rng *rand.Rand) []int {
	bySession := make(map[int][]int)
	for _, i := range idx {
		s := meta[i].Session
		bySession[s] = append(bySession[s], i)
	}

	sessions := make([]int, 0, len(bySession))
	for s := range bySession {
		sessions = append(sessions, s)
	}
	sort.Ints(sessions)

	ordered := make([]int, 0, len(idx))
	for _, s := range sessions {
		trials := bySession[s]
		rng.Shuffle(len(trials), func(a, b int) {
			trials[a], trials[b] = trials[b], trials[a]
		})
		ordered = append(ordered, trials...)
	}

	return ordered
}

// MatchKFoldIndices reassembles fold k's index triple from an
// assignment: test is fold k, validate is fold (k+1) mod kfold, train is
// everything else. The three sets are pairwise disjoint and their union
// is the full index set. Indices come out in ascending order.
//
// With kfold == 2 the train set is empty by construction.
//
// Errors: ErrBadFold for a nil assignment or k outside [0, kfold).
func MatchKFoldIndices(k int, a *Assignment) (train, validate, test []int, err error) {
	if a == nil || k < 0 || k >= a.kfold {
		return nil, nil, nil, ErrBadFold
	}

	next := (k + 1) % a.kfold
	for i, f := range a.fold {
		switch f {
		case k:
			test = append(test, i)
		case next:
			validate = append(validate, i)
		default:
			train = append(train, i)
		}
	}

	return train, validate, test, nil
}

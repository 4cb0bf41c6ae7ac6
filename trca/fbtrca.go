package trca

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/lucidbci/ssvep/filterbank"
)

// FBTRCA is the filter-bank TRCA ensemble classifier: one independent
// TRCA estimator per sub-band, fused by weighted squared correlation.
//
// The bank and fitted estimators are read-only after Fit; sub-band work
// fans out to a bounded worker pool writing into disjoint result slots,
// so no locking is involved.
type FBTRCA struct {
	bank    *filterbank.Bank
	opts    Options
	weights []float64

	subs      []*Estimator
	nChannels int
	nSamples  int
	fitted    bool
}

// NewFBTRCA validates the configuration and returns an unfitted
// classifier. A nil FilterWeights defaults to uniform weights; an
// explicit vector must have one entry per sub-band (any ordering is
// accepted, non-increasing by convention).
//
// Errors: ErrNilBank, ErrBadComponents, ErrBadWeights.
func NewFBTRCA(bank *filterbank.Bank, opts Options) (*FBTRCA, error) {
	if bank == nil {
		return nil, ErrNilBank
	}
	if opts.NComponents < 1 {
		return nil, ErrBadComponents
	}

	weights := make([]float64, bank.Len())
	if opts.FilterWeights == nil {
		for i := range weights {
			weights[i] = 1
		}
	} else {
		if len(opts.FilterWeights) != bank.Len() {
			return nil, ErrBadWeights
		}
		copy(weights, opts.FilterWeights)
	}

	return &FBTRCA{bank: bank, opts: opts, weights: weights}, nil
}

// Classes returns the class labels in scoring order (ascending), nil
// before Fit.
func (fb *FBTRCA) Classes() []int {
	if !fb.fitted {
		return nil
	}

	return fb.subs[0].Classes()
}

// Fit trains one TRCA estimator per sub-band: every training trial is
// zero-phase filtered with the sub-band's cascade, then the estimator is
// fitted on the filtered trials with the shared labels. Sub-bands are
// mutually independent and run on the worker pool.
//
// Errors: ErrShapeMismatch, ErrTooFewClasses, ErrTooFewTrials,
// ErrBadComponents, ErrDecomposition, and filterbank sentinels for
// trials too short to filter. Inputs are never mutated.
func (fb *FBTRCA) Fit(trials [][][]float64, labels []int) error {
	nChannels, nSamples, err := checkTrials(trials)
	if err != nil {
		return err
	}
	if len(labels) != len(trials) {
		return ErrShapeMismatch
	}

	nBands := fb.bank.Len()
	subs := make([]*Estimator, nBands)
	errs := make([]error, nBands)
	fb.forEachBand(nBands, func(b int) {
		subs[b], errs[b] = fb.fitBand(b, trials, labels)
	})
	for b, err := range errs {
		if err != nil {
			return fmt.Errorf("sub-band %d: %w", b, err)
		}
	}

	fb.subs = subs
	fb.nChannels = nChannels
	fb.nSamples = nSamples
	fb.fitted = true

	return nil
}

// fitBand filters all trials with sub-band b and fits a fresh estimator.
func (fb *FBTRCA) fitBand(b int, trials [][][]float64, labels []int) (*Estimator, error) {
	filtered, err := fb.filterAll(b, trials)
	if err != nil {
		return nil, err
	}

	est := NewEstimator(fb.opts.NComponents, fb.opts.Ensemble)
	if err := est.Fit(filtered, labels); err != nil {
		return nil, err
	}

	return est, nil
}

// Transform returns the fused per-class scores for every trial:
//
//	score(c) = Σ_b weight[b] · sign(r_bc) · r_bc²
//
// where r_bc is sub-band b's Pearson correlation against class c's
// template. Columns follow Classes() order. This is the diagnostic
// output behind Predict; the primary contract is the hard labels.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (fb *FBTRCA) Transform(trials [][][]float64) ([][]float64, error) {
	if !fb.fitted {
		return nil, ErrNotFitted
	}
	nChannels, nSamples, err := checkTrials(trials)
	if err != nil {
		return nil, err
	}
	if nChannels != fb.nChannels || nSamples != fb.nSamples {
		return nil, ErrShapeMismatch
	}

	nBands := fb.bank.Len()
	feats := make([][][]float64, nBands)
	errs := make([]error, nBands)
	fb.forEachBand(nBands, func(b int) {
		filtered, ferr := fb.filterAll(b, trials)
		if ferr != nil {
			errs[b] = ferr

			return
		}
		feats[b], errs[b] = fb.subs[b].Transform(filtered)
	})
	for b, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sub-band %d: %w", b, err)
		}
	}

	nClasses := len(fb.subs[0].classes)
	scores := make([][]float64, len(trials))
	for i := range trials {
		row := make([]float64, nClasses)
		for b := 0; b < nBands; b++ {
			wb := fb.weights[b]
			for c, r := range feats[b][i] {
				if r < 0 {
					row[c] -= wb * r * r
				} else {
					row[c] += wb * r * r
				}
			}
		}
		scores[i] = row
	}

	return scores, nil
}

// Predict returns one class label per trial, in input order: the argmax
// of the fused scores, ties broken by the lowest class label.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (fb *FBTRCA) Predict(trials [][][]float64) ([]int, error) {
	scores, err := fb.Transform(trials)
	if err != nil {
		return nil, err
	}

	classes := fb.subs[0].classes
	labels := make([]int, len(scores))
	for i, row := range scores {
		labels[i] = classes[argmax(row)]
	}

	return labels, nil
}

// filterAll zero-phase filters every trial with sub-band b.
func (fb *FBTRCA) filterAll(b int, trials [][][]float64) ([][][]float64, error) {
	filtered := make([][][]float64, len(trials))
	for i, trial := range trials {
		ft, err := fb.bank.FilterTrial(b, trial)
		if err != nil {
			return nil, err
		}
		filtered[i] = ft
	}

	return filtered, nil
}

// forEachBand runs fn(b) for every sub-band on a pool of
// resolveWorkers(NJobs, nBands) goroutines. Each invocation writes only
// to its own slot, so the caller needs no synchronization beyond the
// implicit join.
func (fb *FBTRCA) forEachBand(nBands int, fn func(b int)) {
	workers := resolveWorkers(fb.opts.NJobs, nBands)
	if workers == 1 {
		for b := 0; b < nBands; b++ {
			fn(b)
		}

		return
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for b := range jobs {
				fn(b)
			}
		}()
	}
	for b := 0; b < nBands; b++ {
		jobs <- b
	}
	close(jobs)
	wg.Wait()
}

// resolveWorkers maps the NJobs knob to a concrete worker count at call
// time: values ≤ 0 mean all available execution units, and the count
// never exceeds the task count.
func resolveWorkers(nJobs, tasks int) int {
	n := nJobs
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > tasks {
		n = tasks
	}
	if n < 1 {
		n = 1
	}

	return n
}

package trca

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Estimator learns one TRCA spatial filter and one template per class
// from a single sub-band's trials.
//
// Contracts:
//   - Fit requires ≥ 2 distinct classes and ≥ 2 trials per class.
//   - All trials within one Fit/Transform/Predict call share channel and
//     sample counts; Transform/Predict dimensions must match Fit's.
//   - Filters and templates are recomputed from scratch on every Fit; no
//     incremental update path exists.
//
// An Estimator is safe for concurrent reads (Transform/Predict) after
// Fit has returned.
type Estimator struct {
	nComponents int
	ensemble    bool

	classes   []int         // sorted ascending; scoring column order
	policy    spatialPolicy // scoring-time projection variant
	templates []*mat.Dense  // per class: centered class-mean trial, channels × samples
	nChannels int
	nSamples  int
	fitted    bool
}

// spatialPolicy is the scoring-time projection variant. Keeping the two
// modes as distinct types makes each one's shape contract explicit
// instead of threading a boolean through the scoring path.
type spatialPolicy interface {
	// project applies the policy's spatial filter for the given class to
	// a centered (channels × samples) matrix.
	project(class int, x *mat.Dense) *mat.Dense
}

// sharedFilter scores every class through the joint ensemble filter
// matrix (channels × classes·nComponents): projections always have
// classes·nComponents rows.
type sharedFilter struct {
	joint *mat.Dense
}

func (s sharedFilter) project(_ int, x *mat.Dense) *mat.Dense {
	return projectWith(s.joint, x)
}

// perClassFilter scores each class through its own filter
// (channels × nComponents): projections have nComponents rows.
type perClassFilter struct {
	filters []*mat.Dense
}

func (p perClassFilter) project(class int, x *mat.Dense) *mat.Dense {
	return projectWith(p.filters[class], x)
}

func projectWith(w, x *mat.Dense) *mat.Dense {
	_, cols := w.Dims()
	_, samples := x.Dims()

	out := mat.NewDense(cols, samples, nil)
	out.Mul(w.T(), x)

	return out
}

// NewEstimator returns an unfitted TRCA estimator retaining nComponents
// spatial-filter dimensions per class. With ensemble=true all class
// filters are applied jointly at scoring time; otherwise each class is
// scored through its own filter.
func NewEstimator(nComponents int, ensemble bool) *Estimator {
	return &Estimator{nComponents: nComponents, ensemble: ensemble}
}

// Classes returns the class labels in scoring order (ascending), nil
// before Fit.
func (e *Estimator) Classes() []int {
	if !e.fitted {
		return nil
	}
	out := make([]int, len(e.classes))
	copy(out, e.classes)

	return out
}

// Fit learns per-class spatial filters and templates.
//
// Per class c with trials X_1..X_n (channel-mean-centered):
//
//	U = Σ X_i
//	S = U·Uᵀ - Σ X_i·X_iᵀ   (inter-trial covariance)
//	Q = Σ X_i·X_iᵀ          (total covariance)
//
// solve S·w = λ·Q·w and retain the nComponents leading eigenvectors;
// the template is U/n, the centered class-mean trial.
//
// Errors: ErrShapeMismatch, ErrTooFewClasses, ErrTooFewTrials,
// ErrBadComponents, ErrDecomposition. Inputs are never mutated.
//
// Complexity: O(n·C²·T + K·C³) time for n trials, C channels, T samples
// and K classes.
func (e *Estimator) Fit(trials [][][]float64, labels []int) error {
	nChannels, nSamples, err := checkTrials(trials)
	if err != nil {
		return err
	}
	if len(labels) != len(trials) {
		return ErrShapeMismatch
	}
	if e.nComponents < 1 || e.nComponents > nChannels {
		return ErrBadComponents
	}

	byClass := make(map[int][]int)
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}
	if len(byClass) < 2 {
		return ErrTooFewClasses
	}
	classes := make([]int, 0, len(byClass))
	for y := range byClass {
		classes = append(classes, y)
	}
	sort.Ints(classes)

	filters := make([]*mat.Dense, len(classes))
	templates := make([]*mat.Dense, len(classes))
	for ci, y := range classes {
		idx := byClass[y]
		if len(idx) < 2 {
			return fmt.Errorf("class %d: %w", y, ErrTooFewTrials)
		}

		w, tmpl, err := fitClass(trials, idx, nChannels, nSamples, e.nComponents)
		if err != nil {
			return fmt.Errorf("class %d: %w", y, err)
		}
		filters[ci] = w
		templates[ci] = tmpl
	}

	e.classes = classes
	e.templates = templates
	if e.ensemble {
		e.policy = sharedFilter{joint: hstack(filters, nChannels, e.nComponents)}
	} else {
		e.policy = perClassFilter{filters: filters}
	}
	e.nChannels = nChannels
	e.nSamples = nSamples
	e.fitted = true

	return nil
}

// fitClass runs the TRCA kernel for one class: accumulate S and Q over
// the class's centered trials, solve the generalized eigenproblem, and
// average the trials into the template.
func fitClass(trials [][][]float64, idx []int, nChannels, nSamples, nComp int) (*mat.Dense, *mat.Dense, error) {
	sum := mat.NewDense(nChannels, nSamples, nil)
	q := mat.NewDense(nChannels, nChannels, nil)
	var xx mat.Dense
	for _, i := range idx {
		x := centeredTrial(trials[i])
		sum.Add(sum, x)
		xx.Reset()
		xx.Mul(x, x.T())
		q.Add(q, &xx)
	}

	var ss mat.Dense
	ss.Mul(sum, sum.T())

	s := mat.NewSymDense(nChannels, nil)
	qSym := mat.NewSymDense(nChannels, nil)
	for i := 0; i < nChannels; i++ {
		for j := i; j < nChannels; j++ {
			s.SetSym(i, j, 0.5*(ss.At(i, j)+ss.At(j, i))-0.5*(q.At(i, j)+q.At(j, i)))
			qSym.SetSym(i, j, 0.5*(q.At(i, j)+q.At(j, i)))
		}
	}

	w, err := generalizedEig(s, qSym, nComp)
	if err != nil {
		return nil, nil, err
	}

	tmpl := mat.NewDense(nChannels, nSamples, nil)
	tmpl.Scale(1/float64(len(idx)), sum)

	return w, tmpl, nil
}

// Transform scores every trial against every class template: the
// returned feature matrix holds, per trial, one Pearson correlation per
// class in Classes() order.
//
// Scoring: the trial is centered and spatially projected — with the
// joint filter matrix in ensemble mode, with the class's own filter
// otherwise — and correlated against the identically projected class
// template, flattening multi-component projections before correlating.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (e *Estimator) Transform(trials [][][]float64) ([][]float64, error) {
	if !e.fitted {
		return nil, ErrNotFitted
	}
	nChannels, nSamples, err := checkTrials(trials)
	if err != nil {
		return nil, err
	}
	if nChannels != e.nChannels || nSamples != e.nSamples {
		return nil, ErrShapeMismatch
	}

	// Per-class projected templates are trial-independent; compute once.
	projTemplates := make([][]float64, len(e.classes))
	for ci := range e.classes {
		projTemplates[ci] = flatten(e.policy.project(ci, e.templates[ci]))
	}

	features := make([][]float64, len(trials))
	for i, trial := range trials {
		x := centeredTrial(trial)
		row := make([]float64, len(e.classes))
		for ci := range e.classes {
			row[ci] = stat.Correlation(flatten(e.policy.project(ci, x)), projTemplates[ci], nil)
		}
		features[i] = row
	}

	return features, nil
}

// Predict returns the class label with the highest Transform feature for
// each trial, ties broken by the lowest class label.
//
// Errors: ErrNotFitted, ErrShapeMismatch.
func (e *Estimator) Predict(trials [][][]float64) ([]int, error) {
	features, err := e.Transform(trials)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(features))
	for i, row := range features {
		labels[i] = e.classes[argmax(row)]
	}

	return labels, nil
}

// centeredTrial copies one (channels × samples) trial into a Dense with
// each channel's temporal mean removed. The input is not modified.
func centeredTrial(trial [][]float64) *mat.Dense {
	nChannels := len(trial)
	nSamples := len(trial[0])

	x := mat.NewDense(nChannels, nSamples, nil)
	for c, ch := range trial {
		mean := floats.Sum(ch) / float64(nSamples)
		for t, v := range ch {
			x.Set(c, t, v-mean)
		}
	}

	return x
}

// hstack concatenates per-class filters into the joint ensemble filter
// matrix (channels × classes·nComponents).
func hstack(filters []*mat.Dense, nChannels, nComp int) *mat.Dense {
	joint := mat.NewDense(nChannels, len(filters)*nComp, nil)
	for ci, w := range filters {
		for k := 0; k < nComp; k++ {
			for r := 0; r < nChannels; r++ {
				joint.Set(r, ci*nComp+k, w.At(r, k))
			}
		}
	}

	return joint
}

// flatten copies a Dense into a row-major vector.
func flatten(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	raw := m.RawMatrix()

	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+cols]...)
	}

	return out
}

// argmax returns the index of the strictly largest value; earlier
// indices win ties.
func argmax(row []float64) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}

	return best
}

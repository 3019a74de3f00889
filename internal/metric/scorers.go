package metric

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"heatcls/domain/core"
	"heatcls/ports"
)

// ROCAUC computes the area under the ROC curve for binary labels and
// positive-class probabilities. The value is always in [0, 1]; a test
// target with fewer than two distinct classes is a data error because
// the curve is undefined.
func ROCAUC(yTrue, probaPos []float64) (float64, error) {
	if len(yTrue) == 0 || len(yTrue) != len(probaPos) {
		return 0, core.NewComputeError("roc_auc", errors.New("label/score length mismatch"))
	}
	hasPos, hasNeg := false, false
	for _, v := range yTrue {
		if v > 0 {
			hasPos = true
		} else {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		return 0, core.ErrDegenerateClass
	}

	// stat.ROC wants scores ascending with aligned class flags.
	idx := make([]int, len(probaPos))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return probaPos[idx[a]] < probaPos[idx[b]]
	})
	scores := make([]float64, len(idx))
	classes := make([]bool, len(idx))
	for i, j := range idx {
		scores[i] = probaPos[j]
		classes[i] = yTrue[j] > 0
	}

	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	auc := integrate.Trapezoidal(fpr, tpr)

	// Trapezoidal integration can drift a hair outside the valid range.
	if auc < 0 {
		auc = 0
	}
	if auc > 1 {
		auc = 1
	}
	return auc, nil
}

// confusion tallies a binary confusion matrix at the 0.5 threshold.
func confusion(yTrue, probaPos []float64) (tp, fp, tn, fn int) {
	for i, p := range probaPos {
		predicted := p >= 0.5
		actual := yTrue[i] > 0
		switch {
		case predicted && actual:
			tp++
		case predicted && !actual:
			fp++
		case !predicted && !actual:
			tn++
		default:
			fn++
		}
	}
	return
}

type rocAUCScorer struct{}

func (rocAUCScorer) Name() string { return "roc_auc" }

func (rocAUCScorer) Score(yTrue, probaPos []float64) (float64, error) {
	return ROCAUC(yTrue, probaPos)
}

type accuracyScorer struct{}

func (accuracyScorer) Name() string { return "accuracy" }

func (accuracyScorer) Score(yTrue, probaPos []float64) (float64, error) {
	if len(yTrue) == 0 {
		return 0, core.NewComputeError("accuracy", errors.New("empty target"))
	}
	tp, fp, tn, fn := confusion(yTrue, probaPos)
	return float64(tp+tn) / float64(tp+fp+tn+fn), nil
}

type precisionScorer struct{}

func (precisionScorer) Name() string { return "precision" }

func (precisionScorer) Score(yTrue, probaPos []float64) (float64, error) {
	tp, fp, _, _ := confusion(yTrue, probaPos)
	if tp+fp == 0 {
		return 0, nil
	}
	return float64(tp) / float64(tp+fp), nil
}

type recallScorer struct{}

func (recallScorer) Name() string { return "recall" }

func (recallScorer) Score(yTrue, probaPos []float64) (float64, error) {
	tp, _, _, fn := confusion(yTrue, probaPos)
	if tp+fn == 0 {
		return 0, nil
	}
	return float64(tp) / float64(tp+fn), nil
}

type f1Scorer struct{}

func (f1Scorer) Name() string { return "f1" }

func (f1Scorer) Score(yTrue, probaPos []float64) (float64, error) {
	tp, fp, _, fn := confusion(yTrue, probaPos)
	prec, rec := 0.0, 0.0
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec == 0 {
		return 0, nil
	}
	return 2 * prec * rec / (prec + rec), nil
}

// Constructors used by the scorer registry.

func NewROCAUC() ports.Scorer    { return rocAUCScorer{} }
func NewAccuracy() ports.Scorer  { return accuracyScorer{} }
func NewPrecision() ports.Scorer { return precisionScorer{} }
func NewRecall() ports.Scorer    { return recallScorer{} }
func NewF1() ports.Scorer        { return f1Scorer{} }

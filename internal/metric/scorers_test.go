package metric

import (
	"math/rand"
	"testing"

	"heatcls/domain/core"
)

func TestROCAUC_PerfectSeparation(t *testing.T) {
	yTrue := []float64{0, 0, 0, 1, 1, 1}
	proba := []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9}

	auc, err := ROCAUC(yTrue, proba)
	if err != nil {
		t.Fatalf("ROCAUC failed: %v", err)
	}
	if auc < 1.0-1e-12 {
		t.Errorf("Expected AUC 1.0 for perfect separation, got %f", auc)
	}
}

func TestROCAUC_InvertedSeparation(t *testing.T) {
	yTrue := []float64{0, 0, 0, 1, 1, 1}
	proba := []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.1}

	auc, err := ROCAUC(yTrue, proba)
	if err != nil {
		t.Fatalf("ROCAUC failed: %v", err)
	}
	if auc > 1e-12 {
		t.Errorf("Expected AUC 0.0 for inverted separation, got %f", auc)
	}
}

func TestROCAUC_RandomScoresNearHalf(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 2000
	yTrue := make([]float64, n)
	proba := make([]float64, n)
	for i := range yTrue {
		yTrue[i] = float64(i % 2)
		proba[i] = rng.Float64()
	}

	auc, err := ROCAUC(yTrue, proba)
	if err != nil {
		t.Fatalf("ROCAUC failed: %v", err)
	}
	if auc < 0.45 || auc > 0.55 {
		t.Errorf("Expected AUC near 0.5 for random scores, got %f", auc)
	}
}

func TestROCAUC_AlwaysInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := 10 + rng.Intn(200)
		yTrue := make([]float64, n)
		proba := make([]float64, n)
		for i := range yTrue {
			yTrue[i] = float64(rng.Intn(2))
			proba[i] = rng.Float64()
		}
		// Force both classes present.
		yTrue[0], yTrue[1] = 0, 1

		auc, err := ROCAUC(yTrue, proba)
		if err != nil {
			t.Fatalf("trial %d: ROCAUC failed: %v", trial, err)
		}
		if auc < 0 || auc > 1 {
			t.Errorf("trial %d: AUC %f outside [0,1]", trial, auc)
		}
	}
}

func TestROCAUC_SingleClassIsDataError(t *testing.T) {
	_, err := ROCAUC([]float64{1, 1, 1}, []float64{0.2, 0.5, 0.8})
	if err == nil {
		t.Fatal("Expected error for single-class target")
	}
	if !core.IsDataError(err) {
		t.Errorf("Expected DataError, got %v", err)
	}

	_, err = ROCAUC([]float64{0, 0, 0}, []float64{0.2, 0.5, 0.8})
	if err == nil {
		t.Fatal("Expected error for single-class target")
	}
	if !core.IsDataError(err) {
		t.Errorf("Expected DataError, got %v", err)
	}
}

func TestROCAUC_LengthMismatch(t *testing.T) {
	_, err := ROCAUC([]float64{0, 1}, []float64{0.5})
	if err == nil {
		t.Fatal("Expected error for mismatched lengths")
	}
}

func TestAccuracyScorer(t *testing.T) {
	scorer := NewAccuracy()
	yTrue := []float64{0, 0, 1, 1}
	proba := []float64{0.1, 0.9, 0.8, 0.2} // two right, two wrong

	value, err := scorer.Score(yTrue, proba)
	if err != nil {
		t.Fatalf("accuracy failed: %v", err)
	}
	if value != 0.5 {
		t.Errorf("Expected accuracy 0.5, got %f", value)
	}
}

func TestPrecisionRecallF1(t *testing.T) {
	yTrue := []float64{1, 1, 0, 0, 1}
	proba := []float64{0.9, 0.4, 0.8, 0.1, 0.7} // tp=2 fp=1 fn=1

	precision, err := NewPrecision().Score(yTrue, proba)
	if err != nil {
		t.Fatalf("precision failed: %v", err)
	}
	if precision != 2.0/3.0 {
		t.Errorf("Expected precision 2/3, got %f", precision)
	}

	recall, err := NewRecall().Score(yTrue, proba)
	if err != nil {
		t.Fatalf("recall failed: %v", err)
	}
	if recall != 2.0/3.0 {
		t.Errorf("Expected recall 2/3, got %f", recall)
	}

	f1, err := NewF1().Score(yTrue, proba)
	if err != nil {
		t.Fatalf("f1 failed: %v", err)
	}
	if diff := f1 - 2.0/3.0; diff < -1e-12 || diff > 1e-12 {
		t.Errorf("Expected f1 2/3, got %f", f1)
	}
}

func TestScorerNames(t *testing.T) {
	names := map[string]string{
		NewROCAUC().Name():    "roc_auc",
		NewAccuracy().Name():  "accuracy",
		NewPrecision().Name(): "precision",
		NewRecall().Name():    "recall",
		NewF1().Name():        "f1",
	}
	for got, want := range names {
		if got != want {
			t.Errorf("Expected scorer name %s, got %s", want, got)
		}
	}
}

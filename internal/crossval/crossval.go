package crossval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"heatcls/domain/core"
	"heatcls/domain/tabular"
	"heatcls/internal/pipeline"
	"heatcls/ports"
)

// FoldScore is one result row: the fold index, fit/score timings, and
// one value per configured scorer.
type FoldScore struct {
	Fold      int
	FitTime   time.Duration
	ScoreTime time.Duration
	Scores    map[string]float64
}

// Result is the cross-validation table: one row per fold, one column
// per scorer, ordered by fold index.
type Result struct {
	ScorerNames []string
	Folds       []FoldScore
}

// String renders the result the way it gets logged: a fixed-width table
// with timing columns first.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-12s %-12s", "fold", "fit_time", "score_time")
	for _, name := range r.ScorerNames {
		fmt.Fprintf(&b, " %-12s", name)
	}
	b.WriteString("\n")
	for _, fold := range r.Folds {
		fmt.Fprintf(&b, "%-6d %-12s %-12s", fold.Fold, fold.FitTime.Round(time.Microsecond), fold.ScoreTime.Round(time.Microsecond))
		for _, name := range r.ScorerNames {
			fmt.Fprintf(&b, " %-12.6f", fold.Scores[name])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// CrossValidate fits an unfitted clone of the pipeline per fold and
// scores it on the held-out rows with every configured scorer. Folds
// run concurrently; rows are aggregated by fold index so concurrency
// never reorders or changes the reported scores.
func CrossValidate(ctx context.Context, pipe *pipeline.Pipeline, X *tabular.Matrix, y []float64, scorers []ports.Scorer, k int, seed int64) (*Result, error) {
	splits, err := KFold{K: k, Seed: seed}.Split(X.RowCount())
	if err != nil {
		return nil, err
	}

	names := make([]string, len(scorers))
	for i, s := range scorers {
		names[i] = s.Name()
	}

	folds := make([]FoldScore, len(splits))
	g, ctx := errgroup.WithContext(ctx)
	for f, split := range splits {
		f, split := f, split
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			clone, err := pipe.Clone()
			if err != nil {
				return fmt.Errorf("fold %d: %w", f, err)
			}

			trainX := X.TakeRows(split.Train)
			trainY := tabular.TakeValues(y, split.Train)
			testX := X.TakeRows(split.Test)
			testY := tabular.TakeValues(y, split.Test)

			fitStart := time.Now()
			if err := clone.Fit(trainX, trainY); err != nil {
				return fmt.Errorf("fold %d: %w", f, err)
			}
			fitTime := time.Since(fitStart)

			scoreStart := time.Now()
			proba, err := clone.PredictProba(testX)
			if err != nil {
				return fmt.Errorf("fold %d: %w", f, err)
			}
			probaPos := make([]float64, len(proba))
			for i, row := range proba {
				probaPos[i] = row[1]
			}

			scores := make(map[string]float64, len(scorers))
			for _, scorer := range scorers {
				value, err := scorer.Score(testY, probaPos)
				if err != nil {
					return core.NewComputeError(fmt.Sprintf("scorer %q on fold %d", scorer.Name(), f), err)
				}
				scores[scorer.Name()] = value
			}

			folds[f] = FoldScore{
				Fold:      f,
				FitTime:   fitTime,
				ScoreTime: time.Since(scoreStart),
				Scores:    scores,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{ScorerNames: names, Folds: folds}, nil
}

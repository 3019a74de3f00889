package app

import (
	"context"
	"errors"
	"log"
	"time"

	"heatcls/domain/core"
	"heatcls/domain/tabular"

	"heatcls/internal/config"
	"heatcls/internal/crossval"
	"heatcls/internal/dataset"
	"heatcls/internal/metric"
	"heatcls/internal/persist"
	"heatcls/internal/pipeline"
	"heatcls/internal/registry"
	"heatcls/ports"
)

// TrainService drives the train lifecycle: build pipeline, load data,
// cross-validate, fit, evaluate, persist. Strictly linear; the first
// failing stage aborts the run.
type TrainService struct {
	reg *registry.Registry
}

func NewTrainService(reg *registry.Registry) *TrainService {
	return &TrainService{reg: reg}
}

// RunResult is what a completed run leaves behind in memory; the metric
// file and model artifact are already on disk.
type RunResult struct {
	RunID    core.RunID
	ROCAUC   float64
	CrossVal *crossval.Result
}

// Run executes one training run. seed drives fold construction; any
// classifier randomness is seeded via its own random_state parameter.
func (s *TrainService) Run(ctx context.Context, cfg *config.TrainConfig, seed int64) (*RunResult, error) {
	runID := core.NewRunID()
	start := time.Now()
	log.Printf("[TrainService] run %s started", runID)

	// Assemble the pipeline and resolve scorers before touching any
	// data, so configuration mistakes fail fast.
	pipe, err := s.buildPipeline(cfg)
	if err != nil {
		return nil, failStage(runID, "build", err)
	}
	scorers, err := s.resolveScorers(cfg.CrossVal.Scores)
	if err != nil {
		return nil, failStage(runID, "build", err)
	}
	log.Printf("[TrainService] run %s pipeline built (stages: %v, classifier: %s)",
		runID, pipe.StageNames(), mustClassifierName(cfg))

	trainFrame, err := dataset.NewReader(cfg.Data.PathToTrain).Read()
	if err != nil {
		return nil, failStage(runID, "load", err)
	}
	testFrame, err := dataset.NewReader(cfg.Data.PathToTest).Read()
	if err != nil {
		return nil, failStage(runID, "load", err)
	}

	preparer := dataset.NewPreparer(cfg.Data.UniqueValuesLimit, cfg.Data.TargetVariable)

	// The union matrix lives only inside crossValidate and is released
	// as soon as the fold scores come back.
	log.Printf("[TrainService] run %s cross-validating over union of train and test", runID)
	cvResult, err := s.crossValidate(ctx, pipe, preparer, trainFrame, testFrame, scorers, cfg.CrossVal.CV, seed)
	if err != nil {
		return nil, failStage(runID, "cross_val", err)
	}
	log.Printf("[TrainService] run %s cross validation results:\n%s", runID, cvResult)

	log.Printf("[TrainService] run %s training classifier", runID)
	trainX, trainY, err := preparer.Prepare(trainFrame)
	if err != nil {
		return nil, failStage(runID, "train", err)
	}
	if err := pipe.Fit(trainX, trainY); err != nil {
		return nil, failStage(runID, "train", err)
	}

	testX, testY, err := preparer.Prepare(testFrame)
	if err != nil {
		return nil, failStage(runID, "evaluate", err)
	}
	proba, err := pipe.PredictProba(testX)
	if err != nil {
		return nil, failStage(runID, "evaluate", err)
	}
	probaPos := make([]float64, len(proba))
	for i, row := range proba {
		probaPos[i] = row[1]
	}
	rocAUC, err := metric.ROCAUC(testY, probaPos)
	if err != nil {
		return nil, failStage(runID, "evaluate", err)
	}
	log.Printf("[TrainService] run %s ROC AUC score: %f", runID, rocAUC)

	// Metric and model writes are independent side effects; a metric
	// failure must not prevent attempting the model write.
	log.Printf("[TrainService] run %s saving metric to %s", runID, cfg.OutputMetric)
	metricErr := persist.WriteMetric(cfg.OutputMetric, rocAUC)
	log.Printf("[TrainService] run %s saving trained model to %s", runID, cfg.ModelPath)
	modelErr := persist.SaveModel(cfg.ModelPath, pipe)
	if err := errors.Join(metricErr, modelErr); err != nil {
		return nil, failStage(runID, "persist", err)
	}

	log.Printf("[TrainService] run %s done in %v", runID, time.Since(start).Round(time.Millisecond))
	return &RunResult{RunID: runID, ROCAUC: rocAUC, CrossVal: cvResult}, nil
}

// crossValidate evaluates the unfitted pipeline over the union of the
// train and test data.
func (s *TrainService) crossValidate(ctx context.Context, pipe *pipeline.Pipeline, preparer *dataset.Preparer, trainFrame, testFrame *tabular.Frame, scorers []ports.Scorer, k int, seed int64) (*crossval.Result, error) {
	union := trainFrame.Append(testFrame)
	X, y, err := preparer.Prepare(union)
	if err != nil {
		return nil, err
	}
	return crossval.CrossValidate(ctx, pipe, X, y, scorers, k, seed)
}

func (s *TrainService) buildPipeline(cfg *config.TrainConfig) (*pipeline.Pipeline, error) {
	transforms := make([]pipeline.TransformSpec, len(cfg.FeatureTransform.Transformers))
	for i, t := range cfg.FeatureTransform.Transformers {
		transforms[i] = pipeline.TransformSpec{
			StageName: t.StageName,
			ClassName: t.ClassName,
			Params:    registry.Params(t.Params),
			Columns:   t.Columns,
		}
	}
	clsName, err := cfg.ClassifierName()
	if err != nil {
		return nil, err
	}
	cls := pipeline.ClassifierSpec{
		ClassName: clsName,
		Params:    registry.Params(cfg.ClassifierParams()),
	}
	return pipeline.Build(transforms, cls, s.reg)
}

func (s *TrainService) resolveScorers(names []string) ([]ports.Scorer, error) {
	scorers := make([]ports.Scorer, len(names))
	for i, name := range names {
		scorer, err := s.reg.Scorer(name)
		if err != nil {
			return nil, err
		}
		scorers[i] = scorer
	}
	return scorers, nil
}

func failStage(runID core.RunID, stage string, err error) error {
	log.Printf("[TrainService] run %s failed at stage %s: %v", runID, stage, err)
	return err
}

func mustClassifierName(cfg *config.TrainConfig) string {
	name, _ := cfg.ClassifierName()
	return name
}

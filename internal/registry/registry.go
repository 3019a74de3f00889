package registry

import (
	"heatcls/domain/core"
	"heatcls/internal/metric"
	"heatcls/internal/model"
	"heatcls/internal/transform"
	"heatcls/ports"
)

// TransformerFactory builds a transformer from keyword parameters.
type TransformerFactory func(params Params) (ports.Transformer, error)

// ClassifierFactory builds a classifier from keyword parameters.
type ClassifierFactory func(params Params) (ports.Classifier, error)

// ScorerFactory builds a parameterless scoring function.
type ScorerFactory func() ports.Scorer

// Registry maps stable string keys to estimator factories. Registration
// happens explicitly during initialization; resolution is pure and
// idempotent with respect to process state.
type Registry struct {
	transformers map[string]TransformerFactory
	classifiers  map[string]ClassifierFactory
	scorers      map[string]ScorerFactory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		transformers: make(map[string]TransformerFactory),
		classifiers:  make(map[string]ClassifierFactory),
		scorers:      make(map[string]ScorerFactory),
	}
}

func (r *Registry) RegisterTransformer(name string, factory TransformerFactory) {
	r.transformers[name] = factory
}

func (r *Registry) RegisterClassifier(name string, factory ClassifierFactory) {
	r.classifiers[name] = factory
}

func (r *Registry) RegisterScorer(name string, factory ScorerFactory) {
	r.scorers[name] = factory
}

// Transformer resolves a transformer name and constructs an instance.
func (r *Registry) Transformer(name string, params Params) (ports.Transformer, error) {
	factory, ok := r.transformers[name]
	if !ok {
		return nil, core.NewResolutionError("transformer", name)
	}
	return factory(params.Clone())
}

// Classifier resolves a classifier name and constructs an instance.
func (r *Registry) Classifier(name string, params Params) (ports.Classifier, error) {
	factory, ok := r.classifiers[name]
	if !ok {
		return nil, core.NewResolutionError("classifier", name)
	}
	return factory(params.Clone())
}

// Scorer resolves a scoring function by name.
func (r *Registry) Scorer(name string) (ports.Scorer, error) {
	factory, ok := r.scorers[name]
	if !ok {
		return nil, core.NewResolutionError("scorer", name)
	}
	return factory(), nil
}

// NewBuiltins returns a registry populated with every estimator the
// harness ships. This is the single registration point; nothing
// registers itself via import side effects.
func NewBuiltins() *Registry {
	r := New()

	r.RegisterTransformer("standard_scaler", func(p Params) (ports.Transformer, error) {
		withMean, err := p.popBool("standard_scaler", "with_mean", true)
		if err != nil {
			return nil, err
		}
		withStd, err := p.popBool("standard_scaler", "with_std", true)
		if err != nil {
			return nil, err
		}
		if err := p.assertEmpty("standard_scaler"); err != nil {
			return nil, err
		}
		return transform.NewStandardScaler(withMean, withStd), nil
	})

	r.RegisterTransformer("min_max_scaler", func(p Params) (ports.Transformer, error) {
		rangeMin, err := p.popFloat("min_max_scaler", "range_min", 0)
		if err != nil {
			return nil, err
		}
		rangeMax, err := p.popFloat("min_max_scaler", "range_max", 1)
		if err != nil {
			return nil, err
		}
		if rangeMax <= rangeMin {
			return nil, core.NewConstructionError("min_max_scaler", "range_max", "must exceed range_min")
		}
		if err := p.assertEmpty("min_max_scaler"); err != nil {
			return nil, err
		}
		return transform.NewMinMaxScaler(rangeMin, rangeMax), nil
	})

	r.RegisterTransformer("robust_scaler", func(p Params) (ports.Transformer, error) {
		if err := p.assertEmpty("robust_scaler"); err != nil {
			return nil, err
		}
		return transform.NewRobustScaler(), nil
	})

	r.RegisterTransformer("passthrough", func(p Params) (ports.Transformer, error) {
		if err := p.assertEmpty("passthrough"); err != nil {
			return nil, err
		}
		return transform.NewPassthrough(), nil
	})

	r.RegisterClassifier("logistic_regression", func(p Params) (ports.Classifier, error) {
		lr, err := p.popFloat("logistic_regression", "learning_rate", 0.1)
		if err != nil {
			return nil, err
		}
		epochs, err := p.popInt("logistic_regression", "epochs", 300)
		if err != nil {
			return nil, err
		}
		l2, err := p.popFloat("logistic_regression", "l2", 0)
		if err != nil {
			return nil, err
		}
		seed, err := p.popSeed("logistic_regression", "random_state", 0)
		if err != nil {
			return nil, err
		}
		if lr <= 0 {
			return nil, core.NewConstructionError("logistic_regression", "learning_rate", "must be positive")
		}
		if epochs <= 0 {
			return nil, core.NewConstructionError("logistic_regression", "epochs", "must be positive")
		}
		if err := p.assertEmpty("logistic_regression"); err != nil {
			return nil, err
		}
		return model.NewLogisticRegression(lr, epochs, l2, seed), nil
	})

	r.RegisterClassifier("linear_svc", func(p Params) (ports.Classifier, error) {
		lr, err := p.popFloat("linear_svc", "learning_rate", 0.01)
		if err != nil {
			return nil, err
		}
		epochs, err := p.popInt("linear_svc", "epochs", 200)
		if err != nil {
			return nil, err
		}
		c, err := p.popFloat("linear_svc", "c", 1)
		if err != nil {
			return nil, err
		}
		seed, err := p.popSeed("linear_svc", "random_state", 0)
		if err != nil {
			return nil, err
		}
		if lr <= 0 {
			return nil, core.NewConstructionError("linear_svc", "learning_rate", "must be positive")
		}
		if epochs <= 0 {
			return nil, core.NewConstructionError("linear_svc", "epochs", "must be positive")
		}
		if c <= 0 {
			return nil, core.NewConstructionError("linear_svc", "c", "must be positive")
		}
		if err := p.assertEmpty("linear_svc"); err != nil {
			return nil, err
		}
		return model.NewLinearSVC(lr, epochs, c, seed), nil
	})

	r.RegisterScorer("roc_auc", metric.NewROCAUC)
	r.RegisterScorer("accuracy", metric.NewAccuracy)
	r.RegisterScorer("precision", metric.NewPrecision)
	r.RegisterScorer("recall", metric.NewRecall)
	r.RegisterScorer("f1", metric.NewF1)

	return r
}

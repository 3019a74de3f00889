package registry

import (
	"fmt"
	"sort"

	"heatcls/domain/core"
)

// Params carries the keyword parameters of one estimator, as decoded
// from configuration. Factories consume keys as they read them; keys
// left over after construction are rejected, so a typo in a parameter
// name fails loudly instead of being silently ignored.
type Params map[string]any

// Clone copies the mapping so a factory can consume keys without
// mutating the caller's configuration.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func (p Params) popFloat(estimator, key string, def float64) (float64, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	delete(p, key)
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, core.NewConstructionError(estimator, key, fmt.Sprintf("expected number, got %T", raw))
	}
}

func (p Params) popInt(estimator, key string, def int) (int, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	delete(p, key)
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
		return 0, core.NewConstructionError(estimator, key, "expected integer, got fractional number")
	default:
		return 0, core.NewConstructionError(estimator, key, fmt.Sprintf("expected integer, got %T", raw))
	}
}

func (p Params) popBool(estimator, key string, def bool) (bool, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	delete(p, key)
	v, ok := raw.(bool)
	if !ok {
		return false, core.NewConstructionError(estimator, key, fmt.Sprintf("expected bool, got %T", raw))
	}
	return v, nil
}

func (p Params) popSeed(estimator, key string, def int64) (int64, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	delete(p, key)
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
		return 0, core.NewConstructionError(estimator, key, "expected integer seed")
	default:
		return 0, core.NewConstructionError(estimator, key, fmt.Sprintf("expected integer, got %T", raw))
	}
}

// assertEmpty rejects any parameter the factory did not consume.
func (p Params) assertEmpty(estimator string) error {
	if len(p) == 0 {
		return nil
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return core.NewConstructionError(estimator, keys[0], "unknown parameter")
}

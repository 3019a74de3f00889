package crossval

import (
	"errors"
	"math/rand"

	"heatcls/domain/core"
)

// KFold partitions row indices into k folds after a seeded shuffle.
// The same seed always yields the same partition, so fold construction
// never depends on execution order.
type KFold struct {
	K    int
	Seed int64
}

// FoldSplit holds the train/held-out indices for one fold.
type FoldSplit struct {
	Train []int
	Test  []int
}

// Split produces k train/test splits over n rows. Every row lands in
// exactly one held-out fold.
func (kf KFold) Split(n int) ([]FoldSplit, error) {
	if kf.K < 2 {
		return nil, core.NewConfigValidationError("cross_val.cv", "fold count must be at least 2")
	}
	if n < kf.K {
		return nil, core.NewComputeError("kfold", errors.New("fewer rows than folds"))
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewSource(kf.Seed))
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	// Spread the remainder over the first n%k folds.
	base := n / kf.K
	extra := n % kf.K

	splits := make([]FoldSplit, kf.K)
	start := 0
	for f := 0; f < kf.K; f++ {
		size := base
		if f < extra {
			size++
		}
		test := indices[start : start+size]
		train := make([]int, 0, n-size)
		train = append(train, indices[:start]...)
		train = append(train, indices[start+size:]...)
		splits[f] = FoldSplit{Train: train, Test: test}
		start += size
	}
	return splits, nil
}

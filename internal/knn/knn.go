// Package knn answers one question for the continuous estimators: how far is
// each sample from its k-th nearest neighbor, excluding the sample itself.
package knn

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"

	"infometrics/domain/core"
)

// Searcher is the nearest-neighbor capability the estimators depend on.
// Implementations return, for each row of the n x d sample x, the Euclidean
// distance to that row's k-th nearest neighbor among the other rows. Any
// spatial index satisfies the contract.
type Searcher interface {
	NearestDistances(x mat.Matrix, k int) ([]float64, error)
}

// KDSearcher implements Searcher with a k-d tree. Queries fan out over a
// bounded worker group; each worker writes to disjoint result slots, so
// output is identical to a sequential pass.
type KDSearcher struct {
	workers int
}

// NewKDSearcher returns a searcher using one worker per available CPU.
func NewKDSearcher() *KDSearcher {
	return &KDSearcher{workers: runtime.GOMAXPROCS(0)}
}

// NearestDistances queries k+1 neighbors per point. The query point is its
// own nearest match at distance zero, so the farthest of the k+1 is the
// k-th neighbor with self excluded.
func (s *KDSearcher) NearestDistances(x mat.Matrix, k int) ([]float64, error) {
	n, d := x.Dims()
	if k < 1 {
		return nil, fmt.Errorf("knn: neighbor count must be positive, got %d: %w", k, core.ErrInvalidArgument)
	}
	if k >= n {
		return nil, fmt.Errorf("knn: need more than k=%d samples, got %d: %w", k, n, core.ErrInvalidArgument)
	}

	queries := make(kdtree.Points, n)
	for i := 0; i < n; i++ {
		p := make(kdtree.Point, d)
		for j := 0; j < d; j++ {
			p[j] = x.At(i, j)
		}
		queries[i] = p
	}

	// kdtree.New partitions its input slice in place, so the tree gets a
	// copy of the slice header order while queries keeps row order.
	treePts := make(kdtree.Points, n)
	copy(treePts, queries)
	tree := kdtree.New(treePts, false)

	out := make([]float64, n)
	chunk := (n + s.workers - 1) / s.workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				keep := kdtree.NewNKeeper(k + 1)
				tree.NearestSet(keep, queries[i])
				// NearestSet leaves the keeper sorted by ascending squared
				// distance, with the query point itself first at distance
				// zero. The last entry is the k-th neighbor excluding self.
				out[i] = math.Sqrt(keep.Heap[len(keep.Heap)-1].Dist)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

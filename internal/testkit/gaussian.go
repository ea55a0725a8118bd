// Package testkit generates seeded Gaussian fixtures with known analytic
// entropy and mutual information, for gold-standard tests and the validate
// command.
package testkit

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CorrelatedGaussian draws n i.i.d. standard-normal d-vectors and mixes
// them through the d x d matrix p, returning the n x d sample X = (P*Y)^T.
// The sample's covariance is CovarianceOf(p).
func CorrelatedGaussian(p *mat.Dense, n int, seed uint64) *mat.Dense {
	d, _ := p.Dims()
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	y := mat.NewDense(d, n, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < n; j++ {
			y.Set(i, j, norm.Rand())
		}
	}

	var z mat.Dense
	z.Mul(p, y)

	x := mat.NewDense(n, d, nil)
	x.Copy(z.T())
	return x
}

// CovarianceOf returns P * P^T, the covariance of samples mixed through p.
func CovarianceOf(p *mat.Dense) *mat.Dense {
	var c mat.Dense
	c.Mul(p, p.T())
	return &c
}

// StandardNormal draws n seeded standard-normal values.
func StandardNormal(n int, seed uint64) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	out := make([]float64, n)
	for i := range out {
		out[i] = norm.Rand()
	}
	return out
}

// Column returns column j of x as a plain slice.
func Column(x *mat.Dense, j int) []float64 {
	r, _ := x.Dims()
	out := make([]float64, r)
	mat.Col(out, j, x)
	return out
}

// ColumnSample returns column j of x as an n x 1 sample.
func ColumnSample(x *mat.Dense, j int) *mat.Dense {
	col := Column(x, j)
	return mat.NewDense(len(col), 1, col)
}

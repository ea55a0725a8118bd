// Package histmi estimates (normalized) mutual information between two 1D
// variables from a Gaussian-smoothed 256x256 joint histogram, the
// image-alignment-style similarity of Studholme et al.
package histmi

import (
	"fmt"
	"math"

	"infometrics/domain/core"
)

const gridSize = 256

// MutualInformation2D builds a 256x256 joint histogram of (x, y), smooths it
// with a Gaussian of bandwidth sigma (constant zero boundary), floors it at
// machine epsilon, renormalizes to a probability mass function and computes
// mutual information from the joint and marginal terms in nats. When
// normalized is set it returns the Studholme normalized form
// (sum(s1*log s1) + sum(s2*log s2)) / sum(jh*log jh) - 1.
func MutualInformation2D(x, y []float64, sigma float64, normalized bool) (float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return 0, fmt.Errorf("histogram mi: series lengths %d and %d must match and be nonzero: %w", len(x), len(y), core.ErrInvalidArgument)
	}

	jh := jointHistogram(x, y)
	if sigma > 0 {
		smooth(jh, sigma)
	}

	var total float64
	for i := range jh {
		for j := range jh[i] {
			jh[i][j] += core.Eps
			total += jh[i][j]
		}
	}
	for i := range jh {
		for j := range jh[i] {
			jh[i][j] /= total
		}
	}

	// Marginals: s1 sums out the first axis, s2 the second.
	s1 := make([]float64, gridSize)
	s2 := make([]float64, gridSize)
	for i := range jh {
		for j, v := range jh[i] {
			s1[j] += v
			s2[i] += v
		}
	}

	var hJoint, h1, h2 float64
	for i := range jh {
		for _, v := range jh[i] {
			hJoint += v * math.Log(v)
		}
	}
	for j := range s1 {
		h1 += s1[j] * math.Log(s1[j])
		h2 += s2[j] * math.Log(s2[j])
	}

	if normalized {
		return (h1+h2)/hJoint - 1, nil
	}
	return hJoint - h1 - h2, nil
}

func jointHistogram(x, y []float64) [][]float64 {
	minX, maxX := bounds(x)
	minY, maxY := bounds(y)
	widthX := (maxX - minX) / gridSize
	widthY := (maxY - minY) / gridSize

	jh := make([][]float64, gridSize)
	for i := range jh {
		jh[i] = make([]float64, gridSize)
	}
	for i := range x {
		jh[bucket(x[i], minX, widthX)][bucket(y[i], minY, widthY)]++
	}
	return jh
}

func bounds(x []float64) (min, max float64) {
	min, max = x[0], x[0]
	for _, v := range x {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// bucket places v into one of gridSize equal-width bins; the top edge of the
// range closes the last bin.
func bucket(v, min, width float64) int {
	if width <= 0 {
		return 0
	}
	b := int((v - min) / width)
	if b < 0 {
		b = 0
	}
	if b >= gridSize {
		b = gridSize - 1
	}
	return b
}

// smooth applies a separable Gaussian filter in place. The kernel is
// truncated at four standard deviations and normalized over the window;
// samples beyond the grid edge count as zero.
func smooth(jh [][]float64, sigma float64) {
	radius := int(4*sigma + 0.5)
	if radius < 1 {
		return
	}

	kernel := make([]float64, 2*radius+1)
	var sum float64
	for t := -radius; t <= radius; t++ {
		w := math.Exp(-0.5 * float64(t*t) / (sigma * sigma))
		kernel[t+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	tmp := make([]float64, gridSize)
	for i := 0; i < gridSize; i++ {
		row := jh[i]
		for j := 0; j < gridSize; j++ {
			var acc float64
			for t := -radius; t <= radius; t++ {
				if jj := j + t; jj >= 0 && jj < gridSize {
					acc += row[jj] * kernel[t+radius]
				}
			}
			tmp[j] = acc
		}
		copy(row, tmp)
	}
	for j := 0; j < gridSize; j++ {
		for i := 0; i < gridSize; i++ {
			var acc float64
			for t := -radius; t <= radius; t++ {
				if ii := i + t; ii >= 0 && ii < gridSize {
					acc += jh[ii][j] * kernel[t+radius]
				}
			}
			tmp[i] = acc
		}
		for i := 0; i < gridSize; i++ {
			jh[i][j] = tmp[i]
		}
	}
}

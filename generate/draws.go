package generate

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// IBPAlpha is the expected number of active binary features per row.
const IBPAlpha = 2.0

// crpWeights is the uniform K-way assignment distribution.
func crpWeights(k int) []float64 {
	w := make([]float64, k)
	for i := range w {
		w[i] = 1 / float64(k)
	}
	return w
}

// ibpWeights is the per-component activation probability IBPAlpha/K.
func ibpWeights(k int) []float64 {
	w := make([]float64, k)
	for i := range w {
		w[i] = IBPAlpha / float64(k)
	}
	return w
}

// gaussian draws a rows×cols matrix of N(0,1) entries in row-major order.
func gaussian(src rand.Source, rows, cols int) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, dist.Rand())
		}
	}
	return X
}

// gaussianAround draws each entry from N(mean[i,j], sigma²).
func gaussianAround(src rand.Source, mean mat.Matrix, sigma float64) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	rows, cols := mean.Dims()
	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, mean.At(i, j)+dist.Rand())
		}
	}
	return X
}

// scaleMixture draws each entry from N(0, exp(Z[i,j])²), i.e. the standard
// deviation is exp(Z[i,j]).
func scaleMixture(src rand.Source, Z mat.Matrix) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	rows, cols := Z.Dims()
	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, math.Exp(Z.At(i, j))*dist.Rand())
		}
	}
	return X
}

// oneHot draws rows independent categorical assignments and returns them as
// a rows×len(weights) indicator matrix with exactly one 1 per row.
func oneHot(src rand.Source, rows int, weights []float64) *mat.Dense {
	cat := distuv.NewCategorical(weights, src)
	X := mat.NewDense(rows, len(weights), nil)
	for i := 0; i < rows; i++ {
		X.Set(i, int(cat.Rand()), 1)
	}
	return X
}

// indicators draws a rows×len(probs) matrix of independent Bernoulli entries,
// column j active with probability probs[j]. Probabilities above 1 are
// clipped and reported through errors.Warn.
func indicators(src rand.Source, recipe Recipe, rows int, probs []float64) *mat.Dense {
	k := len(probs)
	dists := make([]distuv.Bernoulli, k)
	for j, p := range probs {
		if p > 1 {
			errors.Warn(errors.NewProbabilityClippedWarning(recipe.String(), p, k))
			p = 1
		}
		dists[j] = distuv.Bernoulli{P: p, Src: src}
	}

	X := mat.NewDense(rows, k, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			X.Set(i, j, dists[j].Rand())
		}
	}
	return X
}

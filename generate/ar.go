package generate

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChainCorrelation is the AR(1) coefficient used by the chain and kf recipes.
const ChainCorrelation = 0.9

// AR draws a rows×cols matrix whose columns are independent stationary AR(1)
// sequences: row 0 is standard normal and row i is a·X[i-1] + ε with
// ε ~ N(0, 1-a²). Draws are consumed row by row, left to right.
// a must lie in [0, 1).
func AR(src rand.Source, rows, cols int, a float64) *mat.Dense {
	X := mat.NewDense(rows, cols, nil)

	first := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for j := 0; j < cols; j++ {
		X.Set(0, j, first.Rand())
	}

	innovation := distuv.Normal{Mu: 0, Sigma: math.Sqrt(1 - a*a), Src: src}
	for i := 1; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, a*X.At(i-1, j)+innovation.Rand())
		}
	}
	return X
}

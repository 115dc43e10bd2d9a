package preprocessing

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// AddNoise は各要素を N(x, variance) から独立に引き直した新しい行列を返す
// 乱数は行優先の順に消費される
// variance が0の場合は乱数を消費せず入力のコピーを返す
//
// パラメータ:
//   - src: 乱数源
//   - X: ノイズのない行列
//   - variance: ノイズの分散 (0以上)
//
// 戻り値:
//   - *mat.Dense: ノイズを加えた行列 (Xと同じ形状)
//   - error: varianceが負、NaN、Infの場合
func AddNoise(src rand.Source, X mat.Matrix, variance float64) (*mat.Dense, error) {
	if variance < 0 || math.IsNaN(variance) || math.IsInf(variance, 0) {
		return nil, errors.NewValidationError("variance", "must be a finite non-negative number", variance)
	}

	noisy := mat.DenseCopyOf(X)
	if variance == 0 {
		return noisy, nil
	}

	noise := distuv.Normal{Mu: 0, Sigma: math.Sqrt(variance), Src: src}
	r, c := noisy.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			noisy.Set(i, j, noisy.At(i, j)+noise.Rand())
		}
	}
	return noisy, nil
}

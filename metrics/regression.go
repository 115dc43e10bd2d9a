package metrics

import (
	"math"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// checkSameShape は2つの行列が空でなく同じ形状であることを確認する
func checkSameShape(op string, a, b mat.Matrix) (int, int, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ra == 0 || ca == 0 {
		return 0, 0, errors.NewValueError(op, "empty matrix")
	}
	if ra != rb {
		return 0, 0, errors.NewDimensionError(op, ra, rb, 0)
	}
	if ca != cb {
		return 0, 0, errors.NewDimensionError(op, ca, cb, 1)
	}
	return ra, ca, nil
}

// MSEMatrix は2つの行列の全要素にわたる平均二乗誤差を計算する
// ノイズ付加後の行列に対しては、実現したノイズ分散の推定値になる
func MSEMatrix(clean, noisy mat.Matrix) (float64, error) {
	r, c, err := checkSameShape("MSEMatrix", clean, noisy)
	if err != nil {
		return 0, err
	}

	// MSE = (1/rc) * Σ(clean - noisy)²
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := clean.At(i, j) - noisy.At(i, j)
			sum += diff * diff
		}
	}
	return sum / float64(r*c), nil
}

// RMSEMatrix は平方根平均二乗誤差を計算する
func RMSEMatrix(clean, noisy mat.Matrix) (float64, error) {
	mse, err := MSEMatrix(clean, noisy)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// R2ScoreMatrix はcleanを真値、noisyを予測とみなした決定係数（R²）を計算する
// 単位分散に正規化されたデータでは、おおよそ 1 - ノイズ分散 になる
func R2ScoreMatrix(clean, noisy mat.Matrix) (float64, error) {
	r, c, err := checkSameShape("R2ScoreMatrix", clean, noisy)
	if err != nil {
		return 0, err
	}

	var mean float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			mean += clean.At(i, j)
		}
	}
	mean /= float64(r * c)

	// 全変動（TSS）と残差変動（RSS）を計算
	var tss, rss float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			t := clean.At(i, j)
			p := noisy.At(i, j)
			tss += (t - mean) * (t - mean)
			rss += (t - p) * (t - p)
		}
	}

	if tss == 0 {
		return 0, errors.Newf("R2ScoreMatrix: total sum of squares is zero (no variance in clean matrix)")
	}
	return 1 - rss/tss, nil
}

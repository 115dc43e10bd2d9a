package metrics

import (
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Autocorrelation は各列を時系列とみなし、ラグlagの自己相関を列平均で返す
// 分散が0の列は平均から除外する
//
// パラメータ:
//   - X: 行方向に時間が進む行列
//   - lag: 1以上、行数未満のラグ
//
// 戻り値:
//   - float64: 列ごとのPearson相関係数の平均
//   - error: lagが範囲外、または有効な列がない場合
func Autocorrelation(X mat.Matrix, lag int) (float64, error) {
	r, c := X.Dims()
	if lag < 1 || lag >= r-1 {
		return 0, errors.NewValidationError("lag", "must be in [1, rows-2]", lag)
	}

	col := make([]float64, r)
	var sum float64
	var used int
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		lead, lagged := col[:r-lag], col[lag:]
		if stat.PopVariance(lead, nil) == 0 || stat.PopVariance(lagged, nil) == 0 {
			continue
		}
		sum += stat.Correlation(lead, lagged, nil)
		used++
	}

	if used == 0 {
		return 0, errors.NewValueError("Autocorrelation", "no column with non-zero variance")
	}
	return sum / float64(used), nil
}

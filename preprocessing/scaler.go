package preprocessing

import (
	"github.com/YuminosukeSato/synthgen/core/model"
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// GlobalScaler は行列全体の標準偏差で全要素を割るスケーラー
// 列ごとではなく全要素をひとつの標本として扱い、変換後の経験標準偏差を1にする
// 平均は引かない
type GlobalScaler struct {
	model.BaseEstimator

	// Scale は全要素の母標準偏差
	Scale float64
}

// NewGlobalScaler は新しいGlobalScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewGlobalScaler()
//	XScaled, err := scaler.FitTransform(X)
func NewGlobalScaler() *GlobalScaler {
	return &GlobalScaler{}
}

// Fit は全要素の母標準偏差を計算する
//
// パラメータ:
//   - X: 任意の形状の行列
//
// 戻り値:
//   - error: 空の行列、または標準偏差が0・NaNの場合
func (s *GlobalScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "GlobalScaler.Fit")
	}

	values := Flatten(X)
	if floats.Max(values) == floats.Min(values) {
		return errors.NewZeroVarianceError("GlobalScaler.Fit", values[0])
	}

	scale := stat.PopStdDev(values, nil)
	if err := errors.CheckScale("GlobalScaler.Fit", scale); err != nil {
		return err
	}

	s.Scale = scale
	s.SetFitted()
	return nil
}

// Transform は学習済みの標準偏差で全要素を割る
func (s *GlobalScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	return s.transform(X)
}

func (s *GlobalScaler) transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.IsFitted() {
		return nil, errors.NewValueError("GlobalScaler.Transform", "scaler is not fitted; call Fit first")
	}

	var result mat.Dense
	result.Scale(1/s.Scale, X)
	return &result, nil
}

// FitTransform は標準偏差を計算し、同じ行列を変換する
func (s *GlobalScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は正規化された行列を元のスケールに戻す
func (s *GlobalScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewValueError("GlobalScaler.InverseTransform", "scaler is not fitted; call Fit first")
	}

	var result mat.Dense
	result.Scale(s.Scale, X)
	return &result, nil
}

// GlobalStdDev は全要素の母標準偏差 (自由度補正なし) を返す
func GlobalStdDev(X mat.Matrix) float64 {
	return stat.PopStdDev(Flatten(X), nil)
}

// Flatten は行列の要素を行優先で1次元スライスにコピーする
func Flatten(X mat.Matrix) []float64 {
	r, c := X.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, X.At(i, j))
		}
	}
	return out
}

// Scale は行列を全要素の標準偏差で割り、使用した標準偏差とともに返す
func Scale(X mat.Matrix) (*mat.Dense, float64, error) {
	scaler := NewGlobalScaler()
	if err := scaler.Fit(X); err != nil {
		return nil, 0, err
	}
	scaled, err := scaler.transform(X)
	if err != nil {
		return nil, 0, err
	}
	return scaled, scaler.Scale, nil
}

// Transpose は転置行列を新しい密行列として返す
func Transpose(X mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(X.T())
}

// Normalize は単位分散への正規化を行い、transposeがtrueなら転置して返す
//
// 使用例:
//
//	data, err := preprocessing.Normalize(raw, false)
//	// preprocessing.GlobalStdDev(data) == 1
func Normalize(X mat.Matrix, transpose bool) (*mat.Dense, error) {
	scaled, _, err := Scale(X)
	if err != nil {
		return nil, err
	}
	if transpose {
		return Transpose(scaled), nil
	}
	return scaled, nil
}

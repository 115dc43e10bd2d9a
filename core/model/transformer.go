package model

import "gonum.org/v1/gonum/mat"

// Transformer は行列変換のインターフェース
type Transformer interface {
	// Fit は変換に必要な統計量を計算する
	Fit(X mat.Matrix) error

	// Transform は行列を変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// InvertibleTransformer は逆変換を持つTransformer
type InvertibleTransformer interface {
	Transformer

	// InverseTransform は変換前のスケールに戻す
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
}

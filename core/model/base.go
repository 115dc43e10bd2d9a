package model

// EstimatorState は変換器の学習状態を表す
type EstimatorState int

const (
	// NotFitted は統計量が未計算の状態
	NotFitted EstimatorState = iota
	// Fitted は統計量が計算済みの状態
	Fitted
)

// BaseEstimator は状態を持つ変換器に埋め込む基底構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は統計量が計算済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は計算済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は初期状態に戻す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}

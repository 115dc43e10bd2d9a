// Package errors はsynthgen全体のエラーハンドリングと警告システムを提供します。
// cockroachdb/errors によるスタックトレースと、zerolog向けの構造化情報を持つエラー型を定義します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("synthgen-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はsynthgen全体の警告ハンドラを設定します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// ProbabilityClippedWarning はBernoulli確率が1を超えたため1に切り詰めた場合の警告です。
// 成分数Kが活性化率αより小さいとき (α/K > 1) に発生します。
type ProbabilityClippedWarning struct {
	Recipe     string
	Requested  float64
	Components int
}

func (w *ProbabilityClippedWarning) Error() string {
	return fmt.Sprintf("%s: activation probability %.4g for %d components exceeds 1; clipped to 1",
		w.Recipe, w.Requested, w.Components)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ProbabilityClippedWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("recipe", w.Recipe).
		Float64("requested", w.Requested).
		Int("components", w.Components).
		Str("type", "ProbabilityClippedWarning")
}

// NewProbabilityClippedWarning は新しいProbabilityClippedWarningを作成します。
func NewProbabilityClippedWarning(recipe string, requested float64, components int) *ProbabilityClippedWarning {
	return &ProbabilityClippedWarning{Recipe: recipe, Requested: requested, Components: components}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// UnknownRecipeError は未知のレシピ名が指定された場合のエラーです。
type UnknownRecipeError struct {
	Tag string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("synthgen: unknown recipe %q", e.Tag)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnknownRecipeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("tag", e.Tag).
		Str("type", "UnknownRecipeError")
}

// NewUnknownRecipeError は新しいUnknownRecipeErrorを作成し、スタックトレースを付与します。
func NewUnknownRecipeError(tag string) error {
	return errors.WithStack(&UnknownRecipeError{Tag: tag})
}

// InvalidLevelError は探索レベルに対して実行できない操作が要求された場合のエラーです。
// 例えば、レベル1は初期化ステップを必要としません。
type InvalidLevelError struct {
	Op     string
	Level  int
	Reason string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("synthgen: %s: invalid level %d: %s", e.Op, e.Level, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidLevelError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("level", e.Level).
		Str("reason", e.Reason).
		Str("type", "InvalidLevelError")
}

// NewInvalidLevelError は新しいInvalidLevelErrorを作成し、スタックトレースを付与します。
func NewInvalidLevelError(op string, level int, reason string) error {
	return errors.WithStack(&InvalidLevelError{Op: op, Level: level, Reason: reason})
}

// DimensionError は行列の次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("synthgen: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("synthgen: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("synthgen: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// Mark はerrをreferenceと同一視されるようにマークします。
// Is(Mark(err, ref), ref) は常にtrueになります。
func Mark(err, reference error) error {
	return errors.Mark(err, reference)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	数値計算のエラー型
//
// ===========================================================================

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// NaN、Inf、ゼロ分散による正規化の失敗などを検出します。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "normalize", "generate.bmf"）
	Values    []float64 // 問題のある値
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("synthgen: numerical instability detected in %s. Values: [%s]", e.Operation, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
	}
	return errors.WithStack(err)
}

// NewZeroVarianceError は分散0の行列を正規化しようとした場合のエラーを作成します。
// NumericalInstabilityErrorとして取り出せ、ErrZeroVarianceとしても判定できます。
func NewZeroVarianceError(operation string, value float64) error {
	return Mark(NewNumericalInstabilityError(operation, []float64{value}), ErrZeroVariance)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrZeroVariance は分散が0の行列を正規化しようとした場合のエラーです。
	ErrZeroVariance = New("zero variance")
)

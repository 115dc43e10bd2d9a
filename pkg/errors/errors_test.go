package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewUnknownRecipeError(t *testing.T) {
	err := NewUnknownRecipeError("nmf")

	assert.Equal(t, `synthgen: unknown recipe "nmf"`, err.Error())

	var recipeErr *UnknownRecipeError
	require.True(t, As(err, &recipeErr), "Error should be castable to *UnknownRecipeError")
	assert.Equal(t, "nmf", recipeErr.Tag)

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	assert.Contains(t, formatted, "errors_test.go")
}

func TestNewInvalidLevelError(t *testing.T) {
	err := NewInvalidLevelError("WriteJobsInit", 1, "no need for initialization for level 1")

	want := "synthgen: WriteJobsInit: invalid level 1: no need for initialization for level 1"
	assert.Equal(t, want, err.Error())

	var levelErr *InvalidLevelError
	require.True(t, As(err, &levelErr))
	assert.Equal(t, 1, levelErr.Level)
}

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want string
	}{
		{
			name: "rows",
			axis: 0,
			want: "synthgen: AddNoise: dimension mismatch on axis 0 (rows). Expected 10, got 5",
		},
		{
			name: "columns",
			axis: 1,
			want: "synthgen: AddNoise: dimension mismatch on axis 1 (columns). Expected 10, got 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("AddNoise", 10, 5, tt.axis)
			assert.Equal(t, tt.want, err.Error())

			var dimErr *DimensionError
			assert.True(t, As(err, &dimErr))
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("rows", "must be positive", 0)

	assert.Equal(t, "synthgen: validation failed for parameter 'rows': must be positive (got: 0)", err.Error())

	var valErr *ValidationError
	assert.True(t, As(err, &valErr))
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("Normalize", "empty matrix")
	assert.Equal(t, "synthgen: Normalize: empty matrix", err.Error())

	var valErr *ValueError
	assert.True(t, As(err, &valErr))
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "in GlobalScaler.Fit")

	assert.True(t, Is(wrapped, ErrEmptyData))
	assert.Contains(t, wrapped.Error(), "in GlobalScaler.Fit")
}

func TestWrapf(t *testing.T) {
	base := NewUnknownRecipeError("foo")
	wrapped := Wrapf(base, "cell %s", "synthetic/0.1/foo")

	var recipeErr *UnknownRecipeError
	assert.True(t, As(wrapped, &recipeErr))
	assert.True(t, strings.HasPrefix(wrapped.Error(), "cell synthetic/0.1/foo"))
}

func TestWarn(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(error) {})

	Warn(NewProbabilityClippedWarning("bmf", 2.0, 1))

	require.Len(t, got, 1)
	assert.Equal(t, "bmf: activation probability 2 for 1 components exceeds 1; clipped to 1", got[0].Error())
}

func TestCheckMatrix(t *testing.T) {
	ok := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.NoError(t, CheckMatrix("test", ok))

	bad := mat.NewDense(2, 2, []float64{1, math.NaN(), 3, math.Inf(1)})
	err := CheckMatrix("test", bad)
	require.Error(t, err)

	var numErr *NumericalInstabilityError
	require.True(t, As(err, &numErr))
	assert.Equal(t, "test", numErr.Operation)
	assert.Len(t, numErr.Values, 1)
}

func TestCheckScale(t *testing.T) {
	assert.NoError(t, CheckScale("normalize", 0.5))
	assert.Error(t, CheckScale("normalize", math.NaN()))

	err := CheckScale("normalize", 0)
	require.Error(t, err)
	assert.True(t, Is(err, ErrZeroVariance))
	assert.False(t, Is(err, ErrEmptyData))

	var numErr *NumericalInstabilityError
	assert.True(t, As(err, &numErr))
	assert.Equal(t, "normalize", numErr.Operation)
}

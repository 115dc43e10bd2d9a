package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMSEMatrix(t *testing.T) {
	tests := []struct {
		name      string
		clean     *mat.Dense
		noisy     *mat.Dense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "identical",
			clean:     mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			noisy:     mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			want:      0.0,
			tolerance: 1e-12,
		},
		{
			name:      "simple case",
			clean:     mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			noisy:     mat.NewDense(2, 2, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25, // 4 * 0.5² / 4
			tolerance: 1e-12,
		},
		{
			name:      "wide matrix",
			clean:     mat.NewDense(1, 3, []float64{10, 20, 30}),
			noisy:     mat.NewDense(1, 3, []float64{12, 18, 33}),
			want:      17.0 / 3.0,
			tolerance: 1e-12,
		},
		{
			name:    "row mismatch",
			clean:   mat.NewDense(3, 1, nil),
			noisy:   mat.NewDense(2, 1, nil),
			wantErr: true,
		},
		{
			name:    "column mismatch",
			clean:   mat.NewDense(2, 3, nil),
			noisy:   mat.NewDense(2, 2, nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSEMatrix(tt.clean, tt.noisy)
			if tt.wantErr {
				var dimErr *errors.DimensionError
				assert.True(t, errors.As(err, &dimErr))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestRMSEMatrix(t *testing.T) {
	got, err := RMSEMatrix(
		mat.NewDense(1, 2, []float64{0, 0}),
		mat.NewDense(1, 2, []float64{3, 4}),
	)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), got, 1e-12)
}

func TestR2ScoreMatrix(t *testing.T) {
	clean := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	got, err := R2ScoreMatrix(clean, clean)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	// 平均値で予測するとR²=0
	mean := mat.NewDense(2, 2, []float64{2.5, 2.5, 2.5, 2.5})
	got, err = R2ScoreMatrix(clean, mean)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)

	_, err = R2ScoreMatrix(mean, clean)
	assert.Error(t, err)
}

func TestAutocorrelation(t *testing.T) {
	// 単調増加の列はラグ1で完全相関
	X := mat.NewDense(5, 2, []float64{
		1, 5,
		2, 4,
		3, 3,
		4, 2,
		5, 1,
	})
	got, err := Autocorrelation(X, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	// 交互に符号が変わる列はラグ1で-1
	alt := mat.NewDense(6, 1, []float64{1, -1, 1, -1, 1, -1})
	got, err = Autocorrelation(alt, 1)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, 1e-12)

	_, err = Autocorrelation(X, 0)
	assert.Error(t, err)

	_, err = Autocorrelation(mat.NewDense(4, 1, []float64{2, 2, 2, 2}), 1)
	assert.Error(t, err)
}

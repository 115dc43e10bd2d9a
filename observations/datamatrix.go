// Package observations wraps raw generated matrices into the persisted
// DataMatrix representation consumed by the experiment tracker.
package observations

import (
	"github.com/YuminosukeSato/synthgen/core/model"
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// DataMatrix is a real-valued observation matrix with an observed-entry mask.
// Synthetic data is fully observed.
type DataMatrix struct {
	Values   *mat.Dense
	Observed []bool // row-major, len rows*cols
}

// FromRealValues copies X into a fully observed DataMatrix.
func FromRealValues(X mat.Matrix) *DataMatrix {
	r, c := X.Dims()
	observed := make([]bool, r*c)
	for i := range observed {
		observed[i] = true
	}
	return &DataMatrix{
		Values:   mat.DenseCopyOf(X),
		Observed: observed,
	}
}

// Dims returns the matrix shape.
func (d *DataMatrix) Dims() (int, int) {
	return d.Values.Dims()
}

// IsObserved reports whether entry (i, j) is observed.
func (d *DataMatrix) IsObserved(i, j int) bool {
	_, c := d.Dims()
	return d.Observed[i*c+j]
}

// NumObserved counts the observed entries.
func (d *DataMatrix) NumObserved() int {
	n := 0
	for _, o := range d.Observed {
		if o {
			n++
		}
	}
	return n
}

// Save writes the matrix to filename in gob format.
func (d *DataMatrix) Save(filename string) error {
	return model.Save(d, filename)
}

// Load reads a DataMatrix written by Save.
func Load(filename string) (*DataMatrix, error) {
	var d DataMatrix
	if err := model.Load(&d, filename); err != nil {
		return nil, err
	}
	r, c := d.Dims()
	if len(d.Observed) != r*c {
		return nil, errors.NewDimensionError("observations.Load", r*c, len(d.Observed), 0)
	}
	return &d, nil
}

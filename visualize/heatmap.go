// Package visualize renders generated matrices as heat maps.
package visualize

import (
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Colors is the size of the heat palette.
const Colors = 64

// DefaultSize is the side length of saved images.
const DefaultSize = 6 * vg.Inch

// MatrixGrid adapts a matrix to plotter.GridXYZ. Column j is drawn at x = j
// and row i at y = rows-1-i so row 0 appears at the top.
type MatrixGrid struct {
	m mat.Matrix
}

var _ plotter.GridXYZ = MatrixGrid{}

// NewMatrixGrid wraps m.
func NewMatrixGrid(m mat.Matrix) MatrixGrid {
	return MatrixGrid{m: m}
}

// Dims returns columns then rows, as GridXYZ expects.
func (g MatrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

// Z returns the value at grid column c and row r.
func (g MatrixGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

// X returns the x coordinate of column c.
func (g MatrixGrid) X(c int) float64 { return float64(c) }

// Y returns the y coordinate of row r.
func (g MatrixGrid) Y(r int) float64 { return float64(r) }

// NewHeatMapPlot builds a heat-map plot of X titled title.
func NewHeatMapPlot(X mat.Matrix, title string) (*plot.Plot, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.ErrEmptyData
	}

	grid := NewMatrixGrid(X)
	hm := plotter.NewHeatMap(grid, palette.Heat(Colors, 1))

	// 定数行列ではパレットの範囲が潰れるので幅を持たせる
	values := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			values = append(values, X.At(i, j))
		}
	}
	if floats.Max(values) == floats.Min(values) {
		hm.Min, hm.Max = values[0]-0.5, values[0]+0.5
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(hm)
	return p, nil
}

// HeatMap renders X to path. The image format follows the file extension
// (png, svg, pdf, ...).
func HeatMap(X mat.Matrix, title, path string) error {
	p, err := NewHeatMapPlot(X, title)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultSize, DefaultSize, path); err != nil {
		return errors.Wrapf(err, "save heat map %s", path)
	}
	return nil
}

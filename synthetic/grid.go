// Package synthetic drives the synthetic experiment grid: every noise
// condition crossed with every generative recipe, registered with and
// scheduled through an experiment tracker.
package synthetic

import (
	"path/filepath"
	"strconv"
)

// Conditions are the noise variances of the grid, as they appear in
// experiment names.
var Conditions = []string{"0.1", "1.0", "3.0", "10.0"}

// AllModels are the recipes of the grid in run order.
var AllModels = []string{"pmf", "mog", "ibp", "chain", "irm", "bmf", "kf", "bctf", "sparse", "gsm"}

// Cell is one (condition, model) pair of the grid.
type Cell struct {
	Condition string
	Model     string
}

// Name is the experiment name of the cell.
func (c Cell) Name() string {
	return "synthetic/" + c.Condition + "/" + c.Model
}

// NoiseVariance parses the condition.
func (c Cell) NoiseVariance() (float64, error) {
	return strconv.ParseFloat(c.Condition, 64)
}

// Cells lists the grid with conditions outermost.
func Cells() []Cell {
	cells := make([]Cell, 0, len(Conditions)*len(AllModels))
	for _, cond := range Conditions {
		for _, model := range AllModels {
			cells = append(cells, Cell{Condition: cond, Model: model})
		}
	}
	return cells
}

// JobsFile is where the driver writes job lists under jobsPath.
func JobsFile(jobsPath string) string {
	return filepath.Join(jobsPath, "synthetic", "jobs.txt")
}

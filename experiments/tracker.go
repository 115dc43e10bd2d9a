// Package experiments defines the boundary to the experiment-tracking
// service: registering synthetic datasets, initializing search levels,
// collecting scores and listing the jobs to run.
package experiments

import (
	"github.com/YuminosukeSato/synthgen/generate"
	"github.com/YuminosukeSato/synthgen/observations"
)

// NoWinner marks a level whose search did not improve on the previous one.
// Cells whose last winning model is NoWinner are skipped at the next level.
const NoWinner = "---"

// Tracker is the experiment-tracking service the grid driver delegates to.
type Tracker interface {
	// InitExperiment registers a noisy data matrix, its latent components and
	// the clean matrix under name.
	InitExperiment(name string, data *observations.DataMatrix, components generate.Components, clean *observations.DataMatrix) error

	// InitLevel prepares the search at level for name.
	InitLevel(name string, level int, override bool) error

	// CollectScoresForLevel gathers finished job scores for level.
	CollectScoresForLevel(name string, level int) error

	// ListWinningModels returns the winning model per level up to level,
	// ending with either a model name or NoWinner.
	ListWinningModels(name string, level int) ([]string, error)

	// ListInitJobs returns the initialization jobs for level.
	ListInitJobs(name string, level int) ([]Job, error)

	// ListJobs returns the evaluation jobs for level.
	ListJobs(name string, level int) ([]Job, error)

	// ListJobsFailed returns the evaluation jobs of level without a score.
	ListJobsFailed(name string, level int) ([]Job, error)

	// WriteJobs writes jobs to path, replacing its previous contents.
	WriteJobs(jobs []Job, path string) error
}

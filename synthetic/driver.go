package synthetic

import (
	"context"
	"time"

	"github.com/YuminosukeSato/synthgen/config"
	"github.com/YuminosukeSato/synthgen/experiments"
	"github.com/YuminosukeSato/synthgen/generate"
	"github.com/YuminosukeSato/synthgen/metrics"
	"github.com/YuminosukeSato/synthgen/observations"
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"github.com/YuminosukeSato/synthgen/pkg/log"
	"github.com/YuminosukeSato/synthgen/preprocessing"
)

// ProgressFunc is called after each finished cell.
type ProgressFunc func(done, total int, cell Cell)

// Driver runs grid operations cell by cell against a tracker.
type Driver struct {
	tracker  experiments.Tracker
	gen      *generate.Generator
	cfg      config.Config
	logger   log.Logger
	progress ProgressFunc
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the driver logger.
func WithLogger(l log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithProgress registers a per-cell progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(d *Driver) {
		d.progress = fn
	}
}

// NewDriver creates a driver. gen supplies both the data and the noise draws.
func NewDriver(tracker experiments.Tracker, gen *generate.Generator, cfg config.Config, opts ...Option) *Driver {
	d := &Driver{
		tracker: tracker,
		gen:     gen,
		cfg:     cfg,
		logger:  log.GetLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// JobsFile is the job list path of this driver.
func (d *Driver) JobsFile() string {
	return JobsFile(d.cfg.JobsPath)
}

// forEach runs fn over the grid in order. The context is checked before
// every cell; errors are wrapped with the cell name.
func (d *Driver) forEach(ctx context.Context, op string, fn func(Cell) error) error {
	cells := Cells()
	for i, cell := range cells {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s stopped before %s", op, cell.Name())
		}
		if err := fn(cell); err != nil {
			return errors.Wrapf(err, "%s %s", op, cell.Name())
		}
		if d.progress != nil {
			d.progress(i+1, len(cells), cell)
		}
	}
	return nil
}

// InitExperiment generates every cell, adds noise at the cell's variance and
// registers the noisy and clean matrices with the tracker.
func (d *Driver) InitExperiment(ctx context.Context) error {
	return d.forEach(ctx, "init experiment", func(cell Cell) error {
		start := time.Now()
		logger := d.logger.With(log.ExperimentKey, cell.Name(), log.ConditionKey, cell.Condition)

		variance, err := cell.NoiseVariance()
		if err != nil {
			return errors.Wrap(err, "parse condition")
		}
		data, comps, err := d.gen.GenerateData(cell.Model, d.cfg.NumRows, d.cfg.NumCols, d.cfg.NumComponents, true)
		if err != nil {
			return err
		}
		clean := observations.FromRealValues(data)

		noisy, err := preprocessing.AddNoise(d.gen.Source(), data, variance)
		if err != nil {
			return err
		}
		if err := d.tracker.InitExperiment(cell.Name(), observations.FromRealValues(noisy), comps, clean); err != nil {
			return err
		}

		mse, err := metrics.MSEMatrix(data, noisy)
		if err != nil {
			return err
		}
		logger.Info("Experiment initialized",
			log.RecipeKey, cell.Model,
			log.NoiseVarianceKey, variance,
			log.NoiseMSEKey, mse,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
		return nil
	})
}

// InitLevel initializes level for every cell.
func (d *Driver) InitLevel(ctx context.Context, level int, override bool) error {
	return d.forEach(ctx, "init level", func(cell Cell) error {
		d.logger.Debug("Initializing level", log.ExperimentKey, cell.Name(), log.LevelKey, level)
		return d.tracker.InitLevel(cell.Name(), level, override)
	})
}

// CollectScoresForLevel collects the scores of level for every cell.
func (d *Driver) CollectScoresForLevel(ctx context.Context, level int) error {
	return d.forEach(ctx, "collect scores", func(cell Cell) error {
		d.logger.Debug("Collecting scores", log.ExperimentKey, cell.Name(), log.LevelKey, level)
		return d.tracker.CollectScoresForLevel(cell.Name(), level)
	})
}

// WriteJobsInit writes the initialization jobs of level, skipping cells whose
// previous level had no winner. Level 1 needs no initialization.
func (d *Driver) WriteJobsInit(ctx context.Context, level int) ([]experiments.Job, error) {
	if level < 2 {
		return nil, errors.NewInvalidLevelError("WriteJobsInit", level, "no need for initialization for level 1")
	}
	var jobs []experiments.Job
	err := d.forEach(ctx, "list init jobs", func(cell Cell) error {
		done, err := d.finished(cell, level)
		if err != nil || done {
			return err
		}
		cellJobs, err := d.tracker.ListInitJobs(cell.Name(), level)
		if err != nil {
			return err
		}
		jobs = append(jobs, cellJobs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := d.writeJobs(jobs, level); err != nil {
		return nil, err
	}
	return jobs, nil
}

// WriteJobsForLevel writes the evaluation jobs of level. Above level 1 cells
// whose previous level had no winner are skipped.
func (d *Driver) WriteJobsForLevel(ctx context.Context, level int) ([]experiments.Job, error) {
	var jobs []experiments.Job
	err := d.forEach(ctx, "list jobs", func(cell Cell) error {
		if level > 1 {
			done, err := d.finished(cell, level)
			if err != nil || done {
				return err
			}
		}
		cellJobs, err := d.tracker.ListJobs(cell.Name(), level)
		if err != nil {
			return err
		}
		jobs = append(jobs, cellJobs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := d.writeJobs(jobs, level); err != nil {
		return nil, err
	}
	return jobs, nil
}

// WriteJobsFailed writes the evaluation jobs of level that have no score.
func (d *Driver) WriteJobsFailed(ctx context.Context, level int) ([]experiments.Job, error) {
	var jobs []experiments.Job
	err := d.forEach(ctx, "list failed jobs", func(cell Cell) error {
		cellJobs, err := d.tracker.ListJobsFailed(cell.Name(), level)
		if err != nil {
			return err
		}
		jobs = append(jobs, cellJobs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := d.writeJobs(jobs, level); err != nil {
		return nil, err
	}
	return jobs, nil
}

// finished reports whether the search of cell stopped before level.
func (d *Driver) finished(cell Cell, level int) (bool, error) {
	winners, err := d.tracker.ListWinningModels(cell.Name(), level-1)
	if err != nil {
		return false, err
	}
	if len(winners) > 0 && winners[len(winners)-1] == experiments.NoWinner {
		d.logger.Debug("Skipping finished experiment", log.ExperimentKey, cell.Name(), log.LevelKey, level)
		return true, nil
	}
	return false, nil
}

func (d *Driver) writeJobs(jobs []experiments.Job, level int) error {
	path := d.JobsFile()
	if err := d.tracker.WriteJobs(jobs, path); err != nil {
		return errors.Wrapf(err, "write jobs to %s", path)
	}
	d.logger.Info("Jobs written", log.PathKey, path, log.LevelKey, level, log.JobsKey, len(jobs))
	return nil
}

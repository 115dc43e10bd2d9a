// Command synthgen generates synthetic matrix-factorization datasets and
// drives the synthetic experiment grid.
//
// Usage:
//
//	synthgen [-config synthgen.yaml] <command> [flags]
//
// Commands:
//
//	init                         generate and register all 40 grid experiments
//	init-level  -level N         initialize level N of every experiment
//	collect     -level N         collect the scores of level N
//	jobs-init   -level N         write the initialization jobs of level N
//	jobs        -level N         write the evaluation jobs of level N
//	jobs-failed -level N         write the unscored evaluation jobs of level N
//	score       -experiment E -level N -structure S -value X
//	                             record a structure score in the file tracker
//	generate    -recipe R -out F generate one matrix and save it
//	plot        -in F -out P     render a saved matrix as a heat map
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/synthgen/config"
	"github.com/YuminosukeSato/synthgen/core/model"
	"github.com/YuminosukeSato/synthgen/core/random"
	"github.com/YuminosukeSato/synthgen/experiments"
	"github.com/YuminosukeSato/synthgen/generate"
	"github.com/YuminosukeSato/synthgen/observations"
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"github.com/YuminosukeSato/synthgen/pkg/log"
	"github.com/YuminosukeSato/synthgen/preprocessing"
	"github.com/YuminosukeSato/synthgen/synthetic"
	"github.com/YuminosukeSato/synthgen/visualize"
	"github.com/schollz/progressbar/v3"
)

var (
	flagConfig   = flag.String("config", "", "Path of the configuration file. Defaults to ./synthgen.yaml when present.")
	flagLogLevel = flag.String("log_level", "", "Overrides the configured log level (debug, info, warn, error).")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		log.GetLogger().Error("synthgen failed", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: synthgen [-config file] [-log_level level] <command> [flags]\n\n")
	fmt.Fprintf(os.Stderr, "commands: init, init-level, collect, jobs-init, jobs, jobs-failed, score, generate, plot\n\n")
	flag.PrintDefaults()
}

// app carries what every command needs.
type app struct {
	cfg     config.Config
	logger  log.Logger
	tracker *experiments.FileTracker
}

func newApp() (*app, error) {
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return nil, err
	}
	if *flagLogLevel != "" {
		cfg.LogLevel = *flagLogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := log.NewConsoleLogger(os.Stderr, cfg.Level())
	log.SetLogger(logger)
	errors.SetZerologWarnFunc(func(w error) {
		logger.Warn("synthgen warning", w)
	})

	return &app{
		cfg:     cfg,
		logger:  logger,
		tracker: experiments.NewFileTracker(cfg.ExperimentsPath),
	}, nil
}

func run(ctx context.Context, command string, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	switch command {
	case "init":
		return a.initExperiments(ctx, args)
	case "init-level", "collect", "jobs-init", "jobs", "jobs-failed":
		return a.levelCommand(ctx, command, args)
	case "score":
		return a.score(args)
	case "generate":
		return a.generate(args)
	case "plot":
		return a.plot(args)
	default:
		usage()
		return errors.Newf("unknown command %q", command)
	}
}

func (a *app) driver(opts ...synthetic.Option) *synthetic.Driver {
	gen := generate.New(random.New(a.cfg.Seed), generate.WithLogger(a.logger))
	opts = append([]synthetic.Option{synthetic.WithLogger(a.logger)}, opts...)
	return synthetic.NewDriver(a.tracker, gen, a.cfg, opts...)
}

func (a *app) initExperiments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	noBar := fs.Bool("no_progress", false, "Disables the progress bar.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.logger.Info("Initializing synthetic grid",
		log.RandomSeedKey, a.cfg.Seed,
		log.RowsKey, a.cfg.NumRows,
		log.ColsKey, a.cfg.NumCols,
		log.ComponentsKey, a.cfg.NumComponents,
	)

	var opts []synthetic.Option
	if !*noBar {
		bar := progressbar.NewOptions(len(synthetic.Cells()),
			progressbar.OptionSetDescription("synthetic grid"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.ThemeUnicode),
		)
		defer func() { _ = bar.Close() }()
		opts = append(opts, synthetic.WithProgress(func(_, _ int, cell synthetic.Cell) {
			bar.Describe(cell.Name())
			_ = bar.Add(1)
		}))
	}
	return a.driver(opts...).InitExperiment(ctx)
}

func (a *app) levelCommand(ctx context.Context, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	level := fs.Int("level", 1, "Search level.")
	override := fs.Bool("override", false, "Re-initializes levels that already exist (init-level only).")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d := a.driver()
	var jobs []experiments.Job
	var err error
	switch command {
	case "init-level":
		return d.InitLevel(ctx, *level, *override)
	case "collect":
		return d.CollectScoresForLevel(ctx, *level)
	case "jobs-init":
		jobs, err = d.WriteJobsInit(ctx, *level)
	case "jobs":
		jobs, err = d.WriteJobsForLevel(ctx, *level)
	case "jobs-failed":
		jobs, err = d.WriteJobsFailed(ctx, *level)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%d jobs written to %s\n", len(jobs), d.JobsFile())
	return nil
}

func (a *app) score(args []string) error {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	name := fs.String("experiment", "", "Experiment name, e.g. synthetic/1.0/pmf.")
	level := fs.Int("level", 1, "Search level.")
	structure := fs.String("structure", "", "Structure the score belongs to.")
	value := fs.Float64("value", 0, "Score value; higher is better.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *structure == "" {
		return errors.New("score requires -experiment and -structure")
	}
	return a.tracker.RecordScore(*name, *level, *structure, *value)
}

func (a *app) generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	recipe := fs.String("recipe", "pmf", "Recipe tag; a trailing T transposes ("+strings.Join(recipeTags(), ", ")+").")
	rows := fs.Int("rows", a.cfg.NumRows, "Number of rows.")
	cols := fs.Int("cols", a.cfg.NumCols, "Number of columns.")
	k := fs.Int("k", a.cfg.NumComponents, "Number of latent components.")
	noise := fs.Float64("noise", 0, "Variance of the Gaussian noise added to the data.")
	out := fs.String("out", "data.gob", "Output file of the data matrix.")
	components := fs.String("components", "", "Optional output file of the latent components.")
	heatmap := fs.String("plot", "", "Optional heat map image of the data.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen := generate.New(random.New(a.cfg.Seed), generate.WithLogger(a.logger))
	data, comps, err := gen.GenerateData(*recipe, *rows, *cols, *k, *components != "")
	if err != nil {
		return err
	}
	if *noise > 0 {
		if data, err = preprocessing.AddNoise(gen.Source(), data, *noise); err != nil {
			return err
		}
	}

	if err := observations.FromRealValues(data).Save(*out); err != nil {
		return err
	}
	if *components != "" {
		if err := model.Save(comps, *components); err != nil {
			return err
		}
	}
	if *heatmap != "" {
		if err := visualize.HeatMap(data, *recipe, *heatmap); err != nil {
			return err
		}
	}
	a.logger.Info("Data generated", log.RecipeKey, *recipe, log.PathKey, *out, log.NoiseVarianceKey, *noise)
	return nil
}

func (a *app) plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	in := fs.String("in", "", "Data matrix file written by generate or init.")
	out := fs.String("out", "", "Image file; the extension selects the format.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("plot requires -in")
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, filepath.Ext(*in)) + ".png"
	}

	dm, err := observations.Load(*in)
	if err != nil {
		return err
	}
	if err := visualize.HeatMap(dm.Values, filepath.Base(*in), *out); err != nil {
		return err
	}
	a.logger.Info("Heat map written", log.PathKey, *out)
	return nil
}

func recipeTags() []string {
	var tags []string
	for _, r := range generate.Recipes() {
		tags = append(tags, r.String())
	}
	return tags
}

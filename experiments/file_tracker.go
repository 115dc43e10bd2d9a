package experiments

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/synthgen/core/model"
	"github.com/YuminosukeSato/synthgen/generate"
	"github.com/YuminosukeSato/synthgen/observations"
	"github.com/YuminosukeSato/synthgen/pkg/errors"
)

// File names used inside an experiment directory.
const (
	DataFile       = "data.gob"
	CleanFile      = "clean.gob"
	ComponentsFile = "components.gob"
	WinningFile    = "winning.txt"
	StructuresFile = "structures.txt"
	ScoresFile     = "scores.txt"
	ScoresDir      = "scores"
)

// FileTracker is a Tracker backed by a directory tree:
//
//	<root>/<name>/data.gob, clean.gob, components.gob
//	<root>/<name>/winning.txt                  one winning model per level
//	<root>/<name>/level<k>/structures.txt      candidate structures
//	<root>/<name>/level<k>/scores/<s>.txt      one score per structure, written by the scorer
//	<root>/<name>/level<k>/scores.txt          collected "structure score" lines, best first
//
// Level 1 searches Candidates. Level k > 1 refines the winner of level k-1
// by each candidate, named "<winner>/<candidate>".
type FileTracker struct {
	Root       string
	Candidates []string
}

var _ Tracker = (*FileTracker)(nil)

// NewFileTracker creates a tracker rooted at root. Without candidates the
// search space is the set of recipe tags.
func NewFileTracker(root string, candidates ...string) *FileTracker {
	if len(candidates) == 0 {
		for _, r := range generate.Recipes() {
			candidates = append(candidates, r.String())
		}
	}
	return &FileTracker{Root: root, Candidates: candidates}
}

// ExperimentDir returns the directory holding experiment name.
func (t *FileTracker) ExperimentDir(name string) string {
	return filepath.Join(t.Root, filepath.FromSlash(name))
}

// LevelDir returns the directory of level for experiment name.
func (t *FileTracker) LevelDir(name string, level int) string {
	return filepath.Join(t.ExperimentDir(name), "level"+strconv.Itoa(level))
}

// ScorePath is where the scorer writes the score of structure.
func (t *FileTracker) ScorePath(name string, level int, structure string) string {
	file := strings.ReplaceAll(structure, "/", "__") + ".txt"
	return filepath.Join(t.LevelDir(name, level), ScoresDir, file)
}

// RecordScore writes a score for structure as the scorer would.
func (t *FileTracker) RecordScore(name string, level int, structure string, score float64) error {
	return writeLines(t.ScorePath(name, level, structure), []string{strconv.FormatFloat(score, 'g', -1, 64)})
}

// InitExperiment implements Tracker.
func (t *FileTracker) InitExperiment(name string, data *observations.DataMatrix, components generate.Components, clean *observations.DataMatrix) error {
	dir := t.ExperimentDir(name)
	if err := data.Save(filepath.Join(dir, DataFile)); err != nil {
		return errors.Wrapf(err, "init experiment %s", name)
	}
	if clean != nil {
		if err := clean.Save(filepath.Join(dir, CleanFile)); err != nil {
			return errors.Wrapf(err, "init experiment %s", name)
		}
	}
	if err := model.Save(components, filepath.Join(dir, ComponentsFile)); err != nil {
		return errors.Wrapf(err, "init experiment %s", name)
	}
	// a re-initialized experiment starts its search over
	if err := os.Remove(filepath.Join(dir, WinningFile)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "init experiment %s", name)
	}
	return nil
}

// LoadComponents reads the latent components stored by InitExperiment.
func (t *FileTracker) LoadComponents(name string) (generate.Components, error) {
	var comps generate.Components
	if err := model.Load(&comps, filepath.Join(t.ExperimentDir(name), ComponentsFile)); err != nil {
		return nil, err
	}
	return comps, nil
}

// InitLevel implements Tracker. An existing level is kept unless override.
// When the previous level has no winner the search is over and nothing is
// initialized.
func (t *FileTracker) InitLevel(name string, level int, override bool) error {
	if level < 1 {
		return errors.NewInvalidLevelError("InitLevel", level, "levels start at 1")
	}
	if _, err := os.Stat(filepath.Join(t.ExperimentDir(name), DataFile)); err != nil {
		return errors.Wrapf(err, "experiment %s is not initialized", name)
	}

	structures := t.Candidates
	if level > 1 {
		winner, err := t.lastWinner(name, level-1)
		if err != nil {
			return err
		}
		if winner == NoWinner {
			return nil
		}
		structures = make([]string, len(t.Candidates))
		for i, c := range t.Candidates {
			structures[i] = winner + "/" + c
		}
	}

	dir := t.LevelDir(name, level)
	if _, err := os.Stat(dir); err == nil {
		if !override {
			return errors.NewValueError("InitLevel", "level "+strconv.Itoa(level)+" of "+name+" already initialized")
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, "override level %d of %s", level, name)
		}
	}

	if err := os.MkdirAll(filepath.Join(dir, ScoresDir), 0o755); err != nil {
		return errors.Wrapf(err, "init level %d of %s", level, name)
	}
	return writeLines(filepath.Join(dir, StructuresFile), structures)
}

type scored struct {
	structure string
	score     float64
}

// CollectScoresForLevel implements Tracker. The best structure becomes the
// level's winner when it beats the best score of the previous level;
// otherwise the level records NoWinner. A finished search carries NoWinner
// forward.
func (t *FileTracker) CollectScoresForLevel(name string, level int) error {
	if level > 1 {
		prev, err := t.lastWinner(name, level-1)
		if err != nil {
			return err
		}
		if prev == NoWinner {
			return t.recordWinner(name, level, NoWinner)
		}
	}

	structures, err := readLines(filepath.Join(t.LevelDir(name, level), StructuresFile))
	if err != nil {
		return errors.Wrapf(err, "collect scores for level %d of %s", level, name)
	}

	var results []scored
	for _, s := range structures {
		score, ok := t.readScore(name, level, s)
		if ok {
			results = append(results, scored{structure: s, score: score})
		}
	}
	if len(results) == 0 {
		return errors.NewValueError("CollectScoresForLevel", "no scores for level "+strconv.Itoa(level)+" of "+name)
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.structure + " " + strconv.FormatFloat(r.score, 'g', -1, 64)
	}
	if err := writeLines(filepath.Join(t.LevelDir(name, level), ScoresFile), lines); err != nil {
		return err
	}

	winner := results[0].structure
	if level > 1 {
		prev, err := t.bestScore(name, level-1)
		if err != nil {
			return err
		}
		if results[0].score <= prev {
			winner = NoWinner
		}
	}

	return t.recordWinner(name, level, winner)
}

func (t *FileTracker) recordWinner(name string, level int, winner string) error {
	winners, err := t.winners(name)
	if err != nil {
		return err
	}
	if len(winners) < level-1 {
		return errors.NewInvalidLevelError("CollectScoresForLevel", level, "earlier levels of "+name+" have no winner recorded")
	}
	winners = append(winners[:level-1], winner)
	return writeLines(filepath.Join(t.ExperimentDir(name), WinningFile), winners)
}

// ListWinningModels implements Tracker.
func (t *FileTracker) ListWinningModels(name string, level int) ([]string, error) {
	winners, err := t.winners(name)
	if err != nil {
		return nil, err
	}
	if level < 1 || len(winners) < level {
		return nil, errors.NewInvalidLevelError("ListWinningModels", level, "no winner recorded for "+name)
	}
	return winners[:level], nil
}

// ListInitJobs implements Tracker: one job initializing level from the
// winner of level-1.
func (t *FileTracker) ListInitJobs(name string, level int) ([]Job, error) {
	if level < 2 {
		return nil, errors.NewInvalidLevelError("ListInitJobs", level, "no need for initialization for level 1")
	}
	winner, err := t.lastWinner(name, level-1)
	if err != nil {
		return nil, err
	}
	return []Job{{Kind: KindInit, Experiment: name, Level: level, Structure: winner}}, nil
}

// ListJobs implements Tracker.
func (t *FileTracker) ListJobs(name string, level int) ([]Job, error) {
	structures, err := readLines(filepath.Join(t.LevelDir(name, level), StructuresFile))
	if err != nil {
		return nil, errors.Wrapf(err, "list jobs for level %d of %s", level, name)
	}
	jobs := make([]Job, len(structures))
	for i, s := range structures {
		jobs[i] = Job{Kind: KindEval, Experiment: name, Level: level, Structure: s}
	}
	return jobs, nil
}

// ListJobsFailed implements Tracker.
func (t *FileTracker) ListJobsFailed(name string, level int) ([]Job, error) {
	jobs, err := t.ListJobs(name, level)
	if err != nil {
		return nil, err
	}
	var failed []Job
	for _, j := range jobs {
		if _, ok := t.readScore(name, level, j.Structure); !ok {
			failed = append(failed, j)
		}
	}
	return failed, nil
}

// WriteJobs implements Tracker.
func (t *FileTracker) WriteJobs(jobs []Job, path string) error {
	return WriteJobs(jobs, path)
}

func (t *FileTracker) winners(name string) ([]string, error) {
	path := filepath.Join(t.ExperimentDir(name), WinningFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return readLines(path)
}

func (t *FileTracker) lastWinner(name string, level int) (string, error) {
	winners, err := t.ListWinningModels(name, level)
	if err != nil {
		return "", err
	}
	return winners[len(winners)-1], nil
}

func (t *FileTracker) readScore(name string, level int, structure string) (float64, bool) {
	lines, err := readLines(t.ScorePath(name, level, structure))
	if err != nil || len(lines) == 0 {
		return 0, false
	}
	score, err := strconv.ParseFloat(lines[0], 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

func (t *FileTracker) bestScore(name string, level int) (float64, error) {
	lines, err := readLines(filepath.Join(t.LevelDir(name, level), ScoresFile))
	if err != nil {
		return 0, errors.Wrapf(err, "best score of level %d of %s", level, name)
	}
	if len(lines) == 0 {
		return 0, errors.NewValueError("bestScore", "empty scores for level "+strconv.Itoa(level)+" of "+name)
	}
	fields := strings.Fields(lines[0])
	score, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse best score of level %d of %s", level, name)
	}
	return score, nil
}

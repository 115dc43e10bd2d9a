package experiments

import (
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/synthgen/generate"
	"github.com/YuminosukeSato/synthgen/observations"
	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const testName = "synthetic/1.0/pmf"

func newInitializedTracker(t *testing.T) *FileTracker {
	t.Helper()
	tr := NewFileTracker(t.TempDir(), "a", "b", "c")

	clean := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	noisy := mat.NewDense(2, 2, []float64{1.1, 2.2, 2.9, 4.2})
	comps := generate.Components{{Name: "U", Value: mat.NewDense(2, 1, []float64{1, 2})}}

	require.NoError(t, tr.InitExperiment(testName,
		observations.FromRealValues(noisy), comps, observations.FromRealValues(clean)))
	return tr
}

func TestNewFileTrackerDefaultCandidates(t *testing.T) {
	tr := NewFileTracker(t.TempDir())
	assert.Len(t, tr.Candidates, len(generate.Recipes()))
	assert.Contains(t, tr.Candidates, "bctf")
}

func TestInitExperimentPersists(t *testing.T) {
	tr := newInitializedTracker(t)

	data, err := observations.Load(filepath.Join(tr.ExperimentDir(testName), DataFile))
	require.NoError(t, err)
	assert.Equal(t, 1.1, data.Values.At(0, 0))

	clean, err := observations.Load(filepath.Join(tr.ExperimentDir(testName), CleanFile))
	require.NoError(t, err)
	assert.Equal(t, 1.0, clean.Values.At(0, 0))

	comps, err := tr.LoadComponents(testName)
	require.NoError(t, err)
	assert.Equal(t, []string{"U"}, comps.Names())
}

func TestInitLevel(t *testing.T) {
	tr := newInitializedTracker(t)

	require.NoError(t, tr.InitLevel(testName, 1, false))

	jobs, err := tr.ListJobs(testName, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, Job{Kind: KindEval, Experiment: testName, Level: 1, Structure: "a"}, jobs[0])

	// 既存のレベルは override なしでは再初期化できない
	assert.Error(t, tr.InitLevel(testName, 1, false))
	assert.NoError(t, tr.InitLevel(testName, 1, true))

	var levelErr *errors.InvalidLevelError
	assert.True(t, errors.As(tr.InitLevel(testName, 0, false), &levelErr))
}

func TestInitLevelRequiresExperiment(t *testing.T) {
	tr := NewFileTracker(t.TempDir())
	assert.Error(t, tr.InitLevel("synthetic/0.1/missing", 1, false))
}

func TestLevelSearch(t *testing.T) {
	tr := newInitializedTracker(t)
	require.NoError(t, tr.InitLevel(testName, 1, false))

	require.NoError(t, tr.RecordScore(testName, 1, "a", -10))
	require.NoError(t, tr.RecordScore(testName, 1, "b", -5))

	failed, err := tr.ListJobsFailed(testName, 1)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "c", failed[0].Structure)

	require.NoError(t, tr.CollectScoresForLevel(testName, 1))
	winners, err := tr.ListWinningModels(testName, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, winners)

	initJobs, err := tr.ListInitJobs(testName, 2)
	require.NoError(t, err)
	assert.Equal(t, []Job{{Kind: KindInit, Experiment: testName, Level: 2, Structure: "b"}}, initJobs)

	require.NoError(t, tr.InitLevel(testName, 2, false))
	jobs, err := tr.ListJobs(testName, 2)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "b/a", jobs[0].Structure)

	// レベル1の最良スコアを超えなければ勝者なし
	require.NoError(t, tr.RecordScore(testName, 2, "b/a", -7))
	require.NoError(t, tr.CollectScoresForLevel(testName, 2))
	winners, err = tr.ListWinningModels(testName, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", NoWinner}, winners)

	// 探索が終了したレベルは初期化されず、集計では勝者なしが引き継がれる
	require.NoError(t, tr.InitLevel(testName, 3, false))
	assert.NoDirExists(t, tr.LevelDir(testName, 3))
	require.NoError(t, tr.CollectScoresForLevel(testName, 3))
	winners, err = tr.ListWinningModels(testName, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", NoWinner, NoWinner}, winners)

	// スコアが改善すれば勝者が記録し直される
	require.NoError(t, tr.RecordScore(testName, 2, "b/c", -1))
	require.NoError(t, tr.CollectScoresForLevel(testName, 2))
	winners, err = tr.ListWinningModels(testName, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b/c"}, winners)
}

func TestCollectScoresWithoutScores(t *testing.T) {
	tr := newInitializedTracker(t)
	require.NoError(t, tr.InitLevel(testName, 1, false))
	assert.Error(t, tr.CollectScoresForLevel(testName, 1))
}

func TestListWinningModelsMissing(t *testing.T) {
	tr := newInitializedTracker(t)
	_, err := tr.ListWinningModels(testName, 1)
	var levelErr *errors.InvalidLevelError
	assert.True(t, errors.As(err, &levelErr))

	_, err = tr.ListInitJobs(testName, 1)
	assert.True(t, errors.As(err, &levelErr))
}

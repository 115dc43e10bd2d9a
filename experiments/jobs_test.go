package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobString(t *testing.T) {
	j := Job{Kind: KindEval, Experiment: "synthetic/0.1/pmf", Level: 2, Structure: "mog/irm"}
	assert.Equal(t, "eval synthetic/0.1/pmf 2 mog/irm", j.String())

	parsed, err := ParseJob(j.String())
	require.NoError(t, err)
	assert.Equal(t, j, parsed)
}

func TestParseJobInvalid(t *testing.T) {
	for _, line := range []string{"", "eval x 1", "eval x one pmf", "a b 1 c d"} {
		_, err := ParseJob(line)
		assert.Error(t, err, line)
	}
}

func TestWriteJobsOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic", "jobs.txt")

	first := []Job{
		{Kind: KindEval, Experiment: "synthetic/0.1/pmf", Level: 1, Structure: "pmf"},
		{Kind: KindEval, Experiment: "synthetic/0.1/pmf", Level: 1, Structure: "mog"},
	}
	require.NoError(t, WriteJobs(first, path))

	got, err := ReadJobs(path)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := []Job{{Kind: KindInit, Experiment: "synthetic/1.0/irm", Level: 2, Structure: "irm"}}
	require.NoError(t, WriteJobs(second, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "init synthetic/1.0/irm 2 irm\n", string(raw))
}

func TestWriteJobsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.txt")
	require.NoError(t, WriteJobs(nil, path))

	got, err := ReadJobs(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

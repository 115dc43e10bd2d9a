package experiments

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
)

// Job kinds.
const (
	KindInit = "init"
	KindEval = "eval"
)

// Job is one line of a job file.
type Job struct {
	Kind       string
	Experiment string
	Level      int
	Structure  string
}

// String formats the job as "<kind> <experiment> <level> <structure>".
func (j Job) String() string {
	return fmt.Sprintf("%s %s %d %s", j.Kind, j.Experiment, j.Level, j.Structure)
}

// ParseJob parses a line produced by Job.String.
func ParseJob(line string) (Job, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Job{}, errors.NewValueError("ParseJob", fmt.Sprintf("expected 4 fields, got %d in %q", len(fields), line))
	}
	level, err := strconv.Atoi(fields[2])
	if err != nil {
		return Job{}, errors.Wrapf(err, "ParseJob: level in %q", line)
	}
	return Job{Kind: fields[0], Experiment: fields[1], Level: level, Structure: fields[3]}, nil
}

// WriteJobs writes one job per line to path, creating parent directories
// and truncating any previous file.
func WriteJobs(jobs []Job, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create job directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create job file %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, j := range jobs {
		if _, err := fmt.Fprintln(w, j.String()); err != nil {
			return errors.Wrapf(err, "write job file %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "write job file %s", path)
	}
	return nil
}

// ReadJobs reads a job file written by WriteJobs.
func ReadJobs(path string) ([]Job, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	jobs := make([]Job, 0, len(lines))
	for _, line := range lines {
		j, err := ParseJob(line)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// readLines returns the non-empty, trimmed lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return lines, nil
}

// writeLines replaces path with one line per entry.
func writeLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

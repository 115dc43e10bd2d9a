// Package log defines standard attribute keys for synthetic data generation.
//
// Using these keys keeps logs from the generators, the preprocessing stage and
// the grid driver consistent, so a whole grid run can be filtered by recipe,
// condition or level.

package log

// Generation Context
// These attributes identify the recipe and the shape being generated.
const (
	// RecipeKey identifies the generative recipe.
	// Examples: "pmf", "irm", "bctf"
	RecipeKey = "recipe.name"

	// TransposeKey records whether the recipe was requested transposed.
	TransposeKey = "recipe.transpose"

	// FactorKey names a latent factor being drawn.
	// Examples: "U", "R", "V", "F1"
	FactorKey = "recipe.factor"

	// RowsKey indicates the number of rows of a matrix.
	RowsKey = "data.rows"

	// ColsKey indicates the number of columns of a matrix.
	ColsKey = "data.cols"

	// ComponentsKey indicates the latent dimensionality K.
	ComponentsKey = "data.components"

	// StdDevKey records the global standard deviation used for normalization.
	StdDevKey = "data.std_dev"
)

// Grid Context
// These attributes describe the position in the experiment grid.
const (
	// ExperimentKey is the namespaced experiment name, "synthetic/<condition>/<recipe>".
	ExperimentKey = "grid.experiment"

	// ConditionKey is the noise-variance label of a grid cell.
	ConditionKey = "grid.condition"

	// LevelKey is the structure-search level.
	LevelKey = "grid.level"

	// JobsKey records the number of job descriptors collected or written.
	JobsKey = "grid.jobs"

	// PathKey records a filesystem path written or read.
	PathKey = "grid.path"
)

// Noise and Quality
const (
	// NoiseVarianceKey records the requested noise variance.
	NoiseVarianceKey = "noise.variance"

	// NoiseMSEKey records the realized mean squared deviation of the noisy matrix.
	NoiseMSEKey = "noise.mse"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "UnknownRecipeError", "InvalidLevelError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

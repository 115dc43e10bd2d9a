package generate

import (
	"strings"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
)

// Recipe enumerates the generative models.
type Recipe int

const (
	// PMF is probabilistic matrix factorization: Gaussian U times Gaussian V.
	PMF Recipe = iota
	// MOG is a mixture of Gaussians: one-hot cluster assignments times Gaussian centers.
	MOG
	// IBP uses sparse binary features with activation rate IBPAlpha/K.
	IBP
	// Sparse uses heavy-tailed Gaussian scale mixture coefficients.
	Sparse
	// GSM uses scale mixture coefficients whose log-scales have low-rank structure.
	GSM
	// IRM is the infinite relational model: block structure from row and column clusters.
	IRM
	// BMF is binary matrix factorization with a Gaussian core.
	BMF
	// MGB mixes row clusters with binary column features.
	MGB
	// Chain is a Markov chain along rows (AR(1) per column).
	Chain
	// KF is a Kalman-filter style model: AR(1) latent states times Gaussian loadings.
	KF
	// BCTF is Bayesian clustered tensor factorization built from two MOG draws.
	BCTF
)

// TransposeMarker is the trailing character that requests a transposed recipe.
const TransposeMarker = "T"

var recipeTags = [...]string{
	PMF:    "pmf",
	MOG:    "mog",
	IBP:    "ibp",
	Sparse: "sparse",
	GSM:    "gsm",
	IRM:    "irm",
	BMF:    "bmf",
	MGB:    "mgb",
	Chain:  "chain",
	KF:     "kf",
	BCTF:   "bctf",
}

// String returns the recipe tag.
func (r Recipe) String() string {
	if r < 0 || int(r) >= len(recipeTags) {
		return "unknown"
	}
	return recipeTags[r]
}

// Valid reports whether r is one of the defined recipes.
func (r Recipe) Valid() bool {
	return r >= 0 && int(r) < len(recipeTags)
}

// Recipes returns every defined recipe in declaration order.
func Recipes() []Recipe {
	out := make([]Recipe, len(recipeTags))
	for i := range recipeTags {
		out[i] = Recipe(i)
	}
	return out
}

// ParseRecipe resolves a tag such as "irm" or "pmfT". A single trailing
// TransposeMarker is stripped and reported through transpose.
func ParseRecipe(tag string) (recipe Recipe, transpose bool, err error) {
	name := tag
	if strings.HasSuffix(name, TransposeMarker) {
		name = strings.TrimSuffix(name, TransposeMarker)
		transpose = true
	}
	for i, t := range recipeTags {
		if t == name {
			return Recipe(i), transpose, nil
		}
	}
	return 0, false, errors.NewUnknownRecipeError(tag)
}

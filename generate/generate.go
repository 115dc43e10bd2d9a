// Package generate implements the synthetic data recipes.
//
// Every recipe draws latent factors from an explicitly passed random source,
// multiplies them into a data matrix and rescales the result to unit global
// standard deviation. The order of draws inside each recipe is fixed, so a
// seeded source reproduces the same matrices bit for bit.
package generate

import (
	"context"
	"math/rand/v2"

	"github.com/YuminosukeSato/synthgen/pkg/errors"
	"github.com/YuminosukeSato/synthgen/pkg/log"
	"github.com/YuminosukeSato/synthgen/preprocessing"
	"gonum.org/v1/gonum/mat"
)

// Request describes one generation call.
type Request struct {
	Recipe     Recipe
	Transpose  bool
	Rows       int
	Cols       int
	Components int
}

// NewRequest parses tag (with an optional trailing "T") and validates the shape.
func NewRequest(tag string, rows, cols, components int) (Request, error) {
	recipe, transpose, err := ParseRecipe(tag)
	if err != nil {
		return Request{}, err
	}
	req := Request{
		Recipe:     recipe,
		Transpose:  transpose,
		Rows:       rows,
		Cols:       cols,
		Components: components,
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks that the recipe is known and every dimension is positive.
func (r Request) Validate() error {
	if !r.Recipe.Valid() {
		return errors.NewUnknownRecipeError(r.Recipe.String())
	}
	if r.Rows < 1 {
		return errors.NewValidationError("rows", "must be positive", r.Rows)
	}
	if r.Cols < 1 {
		return errors.NewValidationError("cols", "must be positive", r.Cols)
	}
	if r.Components < 1 {
		return errors.NewValidationError("components", "must be positive", r.Components)
	}
	return nil
}

// Tag returns the recipe tag including the transpose marker.
func (r Request) Tag() string {
	if r.Transpose {
		return r.Recipe.String() + TransposeMarker
	}
	return r.Recipe.String()
}

// Generator runs recipes against a single random source.
type Generator struct {
	src    rand.Source
	logger log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-recipe debug records.
func WithLogger(l log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator drawing from src.
func New(src rand.Source, opts ...Option) *Generator {
	g := &Generator{src: src, logger: log.GetLogger()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Source returns the random source the generator draws from.
func (g *Generator) Source() rand.Source {
	return g.src
}

// GenerateData is the tag-based entry point. Components are returned only
// when returnComponents is set.
func (g *Generator) GenerateData(tag string, rows, cols, components int, returnComponents bool) (*mat.Dense, Components, error) {
	req, err := NewRequest(tag, rows, cols, components)
	if err != nil {
		return nil, nil, err
	}
	data, comps, err := g.Generate(req)
	if err != nil {
		return nil, nil, err
	}
	if !returnComponents {
		comps = nil
	}
	return data, comps, nil
}

// Generate produces the normalized data matrix for req together with its
// latent factors. The result has shape Rows×Cols and unit global standard
// deviation. A transposed request is drawn with rows and columns swapped and
// transposed after normalization.
func (g *Generator) Generate(req Request) (data *mat.Dense, comps Components, err error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	defer errors.Recover(&err, "generate."+req.Tag())

	rows, cols := req.Rows, req.Cols
	if req.Transpose {
		rows, cols = cols, rows
	}

	raw, comps, err := g.draw(req.Recipe, rows, cols, req.Components)
	if err != nil {
		return nil, nil, err
	}

	scaled, std, err := preprocessing.Scale(raw)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "normalize %s", req.Tag())
	}
	if req.Recipe == Chain {
		comps = Components{{Name: "X", Value: scaled}}
	}

	data = scaled
	if req.Transpose {
		data = preprocessing.Transpose(scaled)
	}

	if g.logger.Enabled(context.Background(), log.LevelDebug) {
		g.logger.Debug("Generated data",
			log.RecipeKey, req.Recipe.String(),
			log.TransposeKey, req.Transpose,
			log.RowsKey, req.Rows,
			log.ColsKey, req.Cols,
			log.ComponentsKey, req.Components,
			log.StdDevKey, std,
		)
	}
	return data, comps, nil
}

// draw dispatches to the recipe and returns the unnormalized rows×cols matrix.
func (g *Generator) draw(recipe Recipe, rows, cols, k int) (*mat.Dense, Components, error) {
	switch recipe {
	case PMF:
		return g.pmf(rows, cols, k)
	case MOG:
		return g.mog(rows, cols, k)
	case IBP:
		return g.ibp(rows, cols, k)
	case Sparse:
		return g.sparse(rows, cols, k)
	case GSM:
		return g.gsm(rows, cols, k)
	case IRM:
		return g.irm(rows, cols, k)
	case BMF:
		return g.bmf(rows, cols, k)
	case MGB:
		return g.mgb(rows, cols, k)
	case Chain:
		return AR(g.src, rows, cols, ChainCorrelation), nil, nil
	case KF:
		return g.kf(rows, cols, k)
	case BCTF:
		return g.bctf(rows, cols, k)
	default:
		return nil, nil, errors.NewUnknownRecipeError(recipe.String())
	}
}

package generate

import (
	"github.com/YuminosukeSato/synthgen/preprocessing"
	"gonum.org/v1/gonum/mat"
)

// lowRank returns U·V with the factors stored as (U, V).
func lowRank(U, V *mat.Dense) (*mat.Dense, Components, error) {
	var data mat.Dense
	data.Mul(U, V)
	return &data, Components{{Name: "U", Value: U}, {Name: "V", Value: V}}, nil
}

// bilinear returns U·R·V with the factors stored as (U, R, V).
func bilinear(U, R, V *mat.Dense) (*mat.Dense, Components, error) {
	var UR, data mat.Dense
	UR.Mul(U, R)
	data.Mul(&UR, V)
	return &data, Components{{Name: "U", Value: U}, {Name: "R", Value: R}, {Name: "V", Value: V}}, nil
}

func (g *Generator) pmf(rows, cols, k int) (*mat.Dense, Components, error) {
	U := gaussian(g.src, rows, k)
	V := gaussian(g.src, k, cols)
	return lowRank(U, V)
}

func (g *Generator) mog(rows, cols, k int) (*mat.Dense, Components, error) {
	U := oneHot(g.src, rows, crpWeights(k))
	V := gaussian(g.src, k, cols)
	return lowRank(U, V)
}

func (g *Generator) ibp(rows, cols, k int) (*mat.Dense, Components, error) {
	U := indicators(g.src, IBP, rows, ibpWeights(k))
	V := gaussian(g.src, k, cols)
	return lowRank(U, V)
}

func (g *Generator) sparse(rows, cols, k int) (*mat.Dense, Components, error) {
	Z := gaussian(g.src, rows, k)
	U := scaleMixture(g.src, Z)
	V := gaussian(g.src, k, cols)
	return lowRank(U, V)
}

// gsm draws log-scales Z ~ N(u·vᵀ, 1) around a rank-one mean before the
// scale mixture.
func (g *Generator) gsm(rows, cols, k int) (*mat.Dense, Components, error) {
	uInner := gaussian(g.src, rows, 1)
	vInner := gaussian(g.src, 1, k)
	var mean mat.Dense
	mean.Mul(uInner, vInner)
	Z := gaussianAround(g.src, &mean, 1)

	U := scaleMixture(g.src, Z)
	V := gaussian(g.src, k, cols)
	return lowRank(U, V)
}

func (g *Generator) irm(rows, cols, k int) (*mat.Dense, Components, error) {
	weights := crpWeights(k)
	U := oneHot(g.src, rows, weights)
	R := gaussian(g.src, k, k)
	V := preprocessing.Transpose(oneHot(g.src, cols, weights))
	return bilinear(U, R, V)
}

func (g *Generator) bmf(rows, cols, k int) (*mat.Dense, Components, error) {
	probs := ibpWeights(k)
	U := indicators(g.src, BMF, rows, probs)
	R := gaussian(g.src, k, k)
	V := preprocessing.Transpose(indicators(g.src, BMF, cols, probs))
	return bilinear(U, R, V)
}

func (g *Generator) mgb(rows, cols, k int) (*mat.Dense, Components, error) {
	U := oneHot(g.src, rows, crpWeights(k))
	R := gaussian(g.src, k, k)
	V := preprocessing.Transpose(indicators(g.src, MGB, cols, ibpWeights(k)))
	return bilinear(U, R, V)
}

func (g *Generator) kf(rows, cols, k int) (*mat.Dense, Components, error) {
	U := AR(g.src, rows, k, ChainCorrelation)
	V := gaussian(g.src, k, cols)
	return lowRank(U, V)
}

// bctf composes two independent normalized mog draws. Each is perturbed with
// unit Gaussian noise and the data is F1·F2ᵀ. The first draw is rows×cols and
// the second cols×cols, so the product is rows×cols and shares the column
// count as its inner dimension.
func (g *Generator) bctf(rows, cols, k int) (*mat.Dense, Components, error) {
	temp1, c1, err := g.Generate(Request{Recipe: MOG, Rows: rows, Cols: cols, Components: k})
	if err != nil {
		return nil, nil, err
	}
	F1 := gaussianAround(g.src, temp1, 1)

	temp2, c2, err := g.Generate(Request{Recipe: MOG, Rows: cols, Cols: cols, Components: k})
	if err != nil {
		return nil, nil, err
	}
	F2 := gaussianAround(g.src, temp2, 1)

	var data mat.Dense
	data.Mul(F1, F2.T())

	U1, _ := c1.Get("U")
	V1, _ := c1.Get("V")
	U2, _ := c2.Get("U")
	V2, _ := c2.Get("V")
	return &data, Components{
		{Name: "U1", Value: U1},
		{Name: "V1", Value: V1},
		{Name: "F1", Value: F1},
		{Name: "U2", Value: U2},
		{Name: "V2", Value: V2},
		{Name: "F2", Value: F2},
	}, nil
}

package generate

import "gonum.org/v1/gonum/mat"

// Factor is one named latent matrix produced by a recipe.
type Factor struct {
	Name  string
	Value *mat.Dense
}

// Components is the ordered tuple of latent factors behind a data matrix.
//
//	pmf, mog, ibp, sparse, gsm, kf: U (N×K), V (K×M)
//	irm, bmf, mgb:                  U (N×K), R (K×K), V (K×M)
//	chain:                          X, the normalized data before any transpose
//	bctf:                           U1, V1, F1, U2, V2, F2
type Components []Factor

// Get returns the factor with the given name.
func (c Components) Get(name string) (*mat.Dense, bool) {
	for _, f := range c {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names lists the factor names in order.
func (c Components) Names() []string {
	names := make([]string, len(c))
	for i, f := range c {
		names[i] = f.Name
	}
	return names
}

// Package synthgen generates synthetic matrix-factorization datasets for
// benchmarking structure-discovery procedures, and drives the batch
// experiment grid built on top of them.
//
// # Recipes
//
// A recipe names a generative model. Each one draws latent factors, forms a
// data matrix from them and rescales it to unit global standard deviation:
//
//   - pmf: Gaussian U times Gaussian V
//   - mog: one-hot cluster assignments times Gaussian centers
//   - ibp: Bernoulli(2/K) features times Gaussian loadings
//   - sparse, gsm: Gaussian scale mixture coefficients
//   - irm, bmf, mgb: cluster or binary indicators around a Gaussian core
//   - chain: AR(1) columns with correlation 0.9
//   - kf: AR(1) latent states times Gaussian loadings
//   - bctf: the product of two noisy mog draws
//
// A trailing "T" requests the transpose, for example "irmT".
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/synthgen/core/random"
//	    "github.com/YuminosukeSato/synthgen/generate"
//	    "github.com/YuminosukeSato/synthgen/preprocessing"
//	)
//
//	func main() {
//	    gen := generate.New(random.New(42))
//
//	    X, comps, err := gen.GenerateData("mog", 200, 200, 10, true)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    noisy, err := preprocessing.AddNoise(gen.Source(), X, 1.0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(comps.Names(), noisy.At(0, 0))
//	}
//
// # Packages
//
//   - generate: recipes, the AR(1) generator and the dispatching Generator
//   - preprocessing: unit-variance scaling, transpose and noise injection
//   - metrics: matrix MSE, R² and lag-k autocorrelation
//   - observations: the DataMatrix handed to the experiment tracker
//   - experiments: the Tracker boundary, job descriptors and a file tracker
//   - synthetic: the 4×10 grid of noise conditions and recipes
//   - config: viper-backed settings
//   - visualize: heat maps of generated matrices
//   - core/random: seeded random sources
//   - core/model: transformer interfaces and gob persistence
//   - pkg/errors, pkg/log: error types and structured logging
//
// The synthgen command in cmd/synthgen exposes the grid operations.
package synthgen

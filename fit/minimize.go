// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Minimizer wraps derivative-free Nelder-Mead simplex minimization of the
// negative log likelihood.  The likelihood surface is smooth but has
// shallow ridges near sigma -> 0 and for bounds outside the stimulus
// range, so a simplex method is preferred over gradient methods.  Given a
// fixed starting point the search is fully deterministic, and it never
// fails: if the optimizer errors out or exhausts its iteration budget,
// the best point found so far is returned and model selection naturally
// disfavors the poor fit.
type Minimizer struct {

	// maximum number of major iterations per fit -- acts as an implicit
	// timeout guaranteeing termination
	MaxIters int `default:"1000" min:"1"`

	// absolute function-value convergence tolerance
	FuncTol float64 `default:"1e-10" min:"0"`

	// number of iterations with improvement below FuncTol to declare
	// convergence
	ConvIters int `default:"100" min:"1"`
}

func (mz *Minimizer) Defaults() {
	mz.MaxIters = 1000
	mz.FuncTol = 1e-10
	mz.ConvIters = 100
}

// Minimize minimizes obj starting from x0, returning the best parameter
// vector found and its objective value.  x0 is not modified.
func (mz *Minimizer) Minimize(obj func(x []float64) float64, x0 []float64) ([]float64, float64) {
	prob := optimize.Problem{Func: obj}
	set := &optimize.Settings{
		MajorIterations: mz.MaxIters,
		Converger: &optimize.FunctionConverge{
			Absolute:   mz.FuncTol,
			Iterations: mz.ConvIters,
		},
	}
	start := append([]float64(nil), x0...)
	res, err := optimize.Minimize(prob, start, set, &optimize.NelderMead{})
	if err != nil || res == nil || math.IsNaN(res.F) || math.IsInf(res.F, 0) {
		return start, obj(start)
	}
	return res.X, res.F
}

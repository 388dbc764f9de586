// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbm

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Like parameterizes the response likelihood: perceptual noise is modeled
// as isotropic Gaussian perturbation of the discriminant, so the
// probability of the A response is PA = Phi(-sideSign * d / sigma), with
// Phi the standard normal CDF.  Probabilities are clamped away from
// exactly 0 and 1 so the negative log likelihood stays finite when the
// optimizer proposes an extreme bound.
type Like struct {

	// clamp for response probabilities, kept in [Eps, 1-Eps]
	Eps float64 `default:"1e-10" min:"0"`

	// objective value returned for invalid (sigma <= 0) proposals,
	// steering the optimizer back into the valid region
	Penalty float64 `default:"1e10"`
}

func (lk *Like) Defaults() {
	lk.Eps = 1e-10
	lk.Penalty = 1e10
}

// PA returns the probability of the A response for discriminant d under
// model md with noise scale sigma > 0.  The result is strictly within
// (0, 1).
func (lk *Like) PA(md Model, d, sigma float64) float64 {
	pa := distuv.UnitNormal.CDF(-md.SideSign() * d / sigma)
	if pa < lk.Eps {
		return lk.Eps
	}
	if pa > 1-lk.Eps {
		return 1 - lk.Eps
	}
	return pa
}

// NLL returns the negative log likelihood of the observed responses over
// one group of trials, for model md with parameter vector p (noise scale
// last).  resp is 1 for the A response, 0 for B.  Returns Penalty, never
// panicking, if the proposed noise scale is not positive or the parameters
// are not finite.
func (lk *Like) NLL(md Model, xs, ys []float64, resp []int, p []float64) float64 {
	sigma := p[len(p)-1]
	if sigma <= 0 || math.IsNaN(sigma) {
		return lk.Penalty
	}
	for _, pv := range p {
		if math.IsNaN(pv) || math.IsInf(pv, 0) {
			return lk.Penalty
		}
	}
	nll := 0.0
	for i := range xs {
		d := md.Family.Discrim(xs[i], ys[i], p)
		pa := lk.PA(md, d, sigma)
		if resp[i] == 1 {
			nll -= math.Log(pa)
		} else {
			nll -= math.Log(1 - pa)
		}
	}
	return nll
}

// BIC returns the Bayesian Information Criterion k*ln(n) + 2*nll for a
// model with k free parameters fit to n trials achieving negative log
// likelihood nll.  Lower is better; the k term penalizes complexity.
func BIC(k, n int, nll float64) float64 {
	return float64(k)*math.Log(float64(n)) + 2*nll
}

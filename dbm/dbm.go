// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dbm provides the decision-bound model (DBM) family for category
learning: parametric decision functions over a 2D stimulus space, the
Gaussian-noise likelihood of observed binary responses, and the BIC score
used to compare fitted models.

A decision bound divides the stimulus space in two; the signed discriminant
of a stimulus point relative to the bound predicts the response.  Three
families are supported: a unidimensional bound on x, a unidimensional bound
on y, and the general linear classifier (GLC), an arbitrary line in the
space.  Each family is additionally fit with both possible response-label
directions (the Side flag), giving six models per unit of data.

The unidimensional families are taken as proxies for explicit rule-based
strategies, the GLC as a proxy for procedural (integration) strategies.
*/
package dbm

import "fmt"

// Family is one of the decision-bound model families.  Each family fixes
// the form of the discriminant function and the number of free parameters
// (including the perceptual noise scale, which is always the last
// parameter in the vector).
type Family int32

const (
	// UniX is a unidimensional bound on the x coordinate: d = x - bound.
	// Free parameters: bound, noise.
	UniX Family = iota

	// UniY is a unidimensional bound on the y coordinate: d = y - bound.
	// Free parameters: bound, noise.
	UniY

	// GLC is the general linear classifier with bound y = slope*x + intercept:
	// d = slope*x + intercept - y.  Free parameters: slope, intercept, noise.
	// The canonical line form removes the scale ambiguity of two
	// unconstrained coefficients.
	GLC

	FamilyN
)

// strategy class names for the two theoretical learning systems
const (
	Procedural = "procedural"
	RuleBased  = "rule-based"
)

func (fm Family) String() string {
	switch fm {
	case UniX:
		return "unix"
	case UniY:
		return "uniy"
	case GLC:
		return "glc"
	}
	return fmt.Sprintf("Family(%d)", int32(fm))
}

// NParams returns the number of free parameters (k) for this family,
// including the noise scale.
func (fm Family) NParams() int {
	if fm == GLC {
		return 3
	}
	return 2
}

// Class returns the strategy class this family is a proxy for:
// Procedural for GLC, RuleBased for the unidimensional families.
func (fm Family) Class() string {
	if fm == GLC {
		return Procedural
	}
	return RuleBased
}

// Discrim returns the signed discriminant of stimulus point (x, y) under
// parameter vector p.  The sign predicts the category; magnitude scales
// with distance from the bound.
func (fm Family) Discrim(x, y float64, p []float64) float64 {
	switch fm {
	case UniX:
		return x - p[0]
	case UniY:
		return y - p[0]
	default:
		return p[0]*x + p[1] - y
	}
}

// Discrims computes discriminants for an ordered sequence of points into
// out, which must be at least len(xs) long.  Results are numerically
// identical to per-point Discrim calls.
func (fm Family) Discrims(xs, ys []float64, p []float64, out []float64) {
	switch fm {
	case UniX:
		for i, x := range xs {
			out[i] = x - p[0]
		}
	case UniY:
		for i, y := range ys {
			out[i] = y - p[0]
		}
	default:
		for i, x := range xs {
			out[i] = p[0]*x + p[1] - ys[i]
		}
	}
}

// Model is one concrete fittable model: a family plus the Side flag that
// resolves the direction of the response mapping relative to the bound.
// Side is fit as just another enumerated model variant, compared by BIC
// like the rest.
type Model struct {

	// model family, determining discriminant form and parameter count
	Family Family

	// 0 or 1: which direction across the bound maps to the A response
	Side int
}

// Name returns the family_side identifier used in fit-result tables,
// e.g. "glc_0", "unix_1".  Names sort lexicographically for the
// deterministic tie-break in model selection.
func (md Model) Name() string {
	return fmt.Sprintf("%s_%d", md.Family, md.Side)
}

// SideSign returns +1 for side 0 and -1 for side 1, the multiplier applied
// to the discriminant in the response probability.
func (md Model) SideSign() float64 {
	if md.Side == 1 {
		return -1
	}
	return 1
}

// Models returns all six family x side model variants, in name-sorted
// order: glc_0, glc_1, unix_0, unix_1, uniy_0, uniy_1.
func Models() []Model {
	return []Model{
		{GLC, 0}, {GLC, 1},
		{UniX, 0}, {UniX, 1},
		{UniY, 0}, {UniY, 1},
	}
}

// ModelByName parses a family_side identifier produced by Model.Name,
// for loading previously saved fit-result tables.
func ModelByName(name string) (Model, error) {
	for _, md := range Models() {
		if md.Name() == name {
			return md, nil
		}
	}
	return Model{}, fmt.Errorf("dbm.ModelByName: unknown model name: %q", name)
}

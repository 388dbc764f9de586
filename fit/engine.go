// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fit implements the decision-bound model fitting engine and model
selection: for each (subject, day) group of trials, each of the six
family x side model variants is fit by maximum likelihood with a
derivative-free optimizer, scored with BIC, and the minimum-BIC model is
selected and collapsed to its strategy class.

Fitting is embarrassingly parallel across groups: each fit reads only its
own trial slice and writes only its own result slot, so groups are fanned
out over a bounded worker pool with no locking.
*/
package fit

import (
	"fmt"
	"log"
	"runtime"

	"cogentcore.org/core/math32/minmax"
	"github.com/emer/dbm/dbm"
	"github.com/emer/dbm/trial"
	"golang.org/x/sync/errgroup"
)

// Config has the fitting engine configuration parameters.
type Config struct {

	// number of trials per session block -- used for the derived block
	// column and, when BICN is set to it, as the BIC sample size
	BlockSize int `default:"25" min:"1"`

	// sample size n used in the BIC complexity term: 0 = the actual
	// number of trials fit per group (the default, matching the BIC
	// definition); > 0 = a fixed n regardless of group size (set to
	// BlockSize to reproduce analyses that fixed n at the block size)
	BICN int `default:"0" min:"0"`

	// starting value for the noise-scale parameter in every fit
	SigmaInit float64 `default:"1" min:"0"`

	// fit the transformed (xt, yt) display coordinates instead of the
	// native (x, y) stimulus units
	Transformed bool

	// maximum number of concurrent group fits; 0 = number of processors
	Workers int `min:"0"`
}

func (cf *Config) Defaults() {
	cf.BlockSize = 25
	cf.BICN = 0
	cf.SigmaInit = 1
	cf.Transformed = false
	cf.Workers = 0
}

// Engine fits all six decision-bound model variants to each (subject, day)
// group of trials and records one Result per variant.
type Engine struct {

	// engine configuration parameters
	Config Config `display:"add-fields"`

	// response-likelihood parameters
	Like dbm.Like `display:"add-fields"`

	// optimizer parameters
	Min Minimizer `display:"add-fields"`
}

// NewEngine returns an Engine with all defaults applied.
func NewEngine() *Engine {
	en := &Engine{}
	en.Defaults()
	return en
}

func (en *Engine) Defaults() {
	en.Config.Defaults()
	en.Like.Defaults()
	en.Min.Defaults()
}

// Result is one fitted model for one (subject, day) group: the parameter
// estimate, achieved negative log likelihood, sample size, and BIC.
// Results are never mutated after creation.
type Result struct {

	// participant id
	Subject int

	// day index
	Day int

	// the model variant fit
	Model dbm.Model

	// fitted parameter vector (noise scale last)
	Params []float64

	// achieved negative log likelihood
	NLL float64

	// number of trials fit
	N int

	// Bayesian Information Criterion for this fit
	BIC float64
}

// Start returns the deterministic starting parameter vector for fitting
// model md to group gp: the bound starts at the midpoint of the observed
// coordinate range (zero slope and midpoint intercept for the GLC), and
// the noise scale at Config.SigmaInit.  Fixed starts make fits repeatable
// across runs on identical input.
func (en *Engine) Start(md dbm.Model, gp *trial.Group) []float64 {
	var xr, yr minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()
	for i := range gp.X {
		xr.FitValInRange(gp.X[i])
		yr.FitValInRange(gp.Y[i])
	}
	switch md.Family {
	case dbm.UniX:
		return []float64{0.5 * (xr.Min + xr.Max), en.Config.SigmaInit}
	case dbm.UniY:
		return []float64{0.5 * (yr.Min + yr.Max), en.Config.SigmaInit}
	default:
		return []float64{0, 0.5 * (yr.Min + yr.Max), en.Config.SigmaInit}
	}
}

// FitGroup fits all six model variants to one group, returning six
// Results in model-name order.  A group with no trials returns an error
// and no results -- it is reported unfit, never fabricated.
func (en *Engine) FitGroup(gp *trial.Group) ([]Result, error) {
	n := gp.N()
	if n == 0 {
		return nil, fmt.Errorf("fit.FitGroup: group (subject %d, day %d) has no trials", gp.Subject, gp.Day)
	}
	bn := n
	if en.Config.BICN > 0 {
		bn = en.Config.BICN
	}
	mds := dbm.Models()
	rs := make([]Result, len(mds))
	for i, md := range mds {
		md := md
		obj := func(p []float64) float64 {
			return en.Like.NLL(md, gp.X, gp.Y, gp.Resp, p)
		}
		p, nll := en.Min.Minimize(obj, en.Start(md, gp))
		rs[i] = Result{
			Subject: gp.Subject,
			Day:     gp.Day,
			Model:   md,
			Params:  p,
			NLL:     nll,
			N:       n,
			BIC:     dbm.BIC(md.Family.NParams(), bn, nll),
		}
	}
	return rs, nil
}

// GroupError records a group that could not be fit, identifying the
// (subject, day) and the reason.
type GroupError struct {
	Subject int
	Day     int
	Err     error
}

func (ge *GroupError) Error() string {
	return fmt.Sprintf("group (subject %d, day %d): %v", ge.Subject, ge.Day, ge.Err)
}

// FitAll fits every group, in parallel across groups bounded by
// Config.Workers.  Results are returned flattened in group order (groups
// are independent so there is no ordering between fits, but the output
// order is deterministic).  Failed groups are omitted from the results
// and returned as GroupErrors; the run always continues past them, and
// aggregate success / failure counts are logged.
func (en *Engine) FitAll(gps []*trial.Group) ([]Result, []GroupError) {
	nw := en.Config.Workers
	if nw <= 0 {
		nw = runtime.GOMAXPROCS(0)
	}
	grs := make([][]Result, len(gps))
	ges := make([]error, len(gps))
	var g errgroup.Group
	g.SetLimit(nw)
	for i, gp := range gps {
		i, gp := i, gp
		g.Go(func() error {
			if gp.Degenerate() {
				log.Printf("fit: group (subject %d, day %d) has all-one-response data; fit may be poorly constrained", gp.Subject, gp.Day)
			}
			grs[i], ges[i] = en.FitGroup(gp)
			return nil
		})
	}
	g.Wait()
	var rs []Result
	var fails []GroupError
	for i, gp := range gps {
		if ges[i] != nil {
			fails = append(fails, GroupError{Subject: gp.Subject, Day: gp.Day, Err: ges[i]})
			continue
		}
		rs = append(rs, grs[i]...)
	}
	log.Printf("fit: %d groups fit, %d failed", len(gps)-len(fails), len(fails))
	return rs, fails
}

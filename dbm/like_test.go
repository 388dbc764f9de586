// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbm

import (
	"math"
	"testing"
)

func TestPAClamped(t *testing.T) {
	lk := Like{}
	lk.Defaults()
	// extreme discriminants and tiny noise must never reach exactly 0 or 1
	ds := []float64{-1e6, -100, -1, 0, 1, 100, 1e6}
	sigmas := []float64{1e-8, 0.01, 1, 100}
	for _, md := range Models() {
		for _, d := range ds {
			for _, sig := range sigmas {
				pa := lk.PA(md, d, sig)
				if !(pa > 0 && pa < 1) {
					t.Errorf("PA err: model: %v, d: %v, sigma: %v, pa: %v\n", md.Name(), d, sig, pa)
				}
			}
		}
	}
}

func TestNLLInvalidSigma(t *testing.T) {
	lk := Like{}
	lk.Defaults()
	xs := []float64{-1, 1}
	ys := []float64{0, 0}
	resp := []int{1, 0}
	md := Model{UniX, 0}
	for _, sig := range []float64{0, -1, math.NaN()} {
		nll := lk.NLL(md, xs, ys, resp, []float64{0, sig})
		if nll != lk.Penalty {
			t.Errorf("NLL err: sigma: %v, nll: %v, want penalty %v\n", sig, nll, lk.Penalty)
		}
	}
	nll := lk.NLL(md, xs, ys, resp, []float64{math.Inf(1), 1})
	if nll != lk.Penalty {
		t.Errorf("NLL err: inf bound, nll: %v, want penalty %v\n", nll, lk.Penalty)
	}
}

func TestNLLPerfectSeparation(t *testing.T) {
	lk := Like{}
	lk.Defaults()
	xs := []float64{-3, -2, -1, 1, 2, 3}
	ys := make([]float64, len(xs))
	resp := []int{1, 1, 1, 0, 0, 0} // x < 0 -> A
	nll := lk.NLL(Model{UniX, 0}, xs, ys, resp, []float64{0, 0.05})
	if nll > 1e-6 {
		t.Errorf("NLL err: perfectly separated data, nll: %v, want ~0\n", nll)
	}
	// opposite side must be maximally wrong on the same data
	nll1 := lk.NLL(Model{UniX, 1}, xs, ys, resp, []float64{0, 0.05})
	if nll1 < 100 {
		t.Errorf("NLL err: wrong side should be heavily penalized, nll: %v\n", nll1)
	}
}

func TestNLLSideFlip(t *testing.T) {
	lk := Like{}
	lk.Defaults()
	xs := []float64{-2, -1.5, -0.5, 0.3, 1.1, 2.4}
	ys := []float64{0.5, -1, 2, 0, -0.3, 1}
	resp := []int{1, 0, 1, 0, 0, 1}
	flip := make([]int, len(resp))
	for i, r := range resp {
		flip[i] = 1 - r
	}
	for _, fm := range []Family{UniX, UniY, GLC} {
		p := []float64{0.2, 1.3}
		if fm == GLC {
			p = []float64{0.7, 0.2, 1.3}
		}
		n0 := lk.NLL(Model{fm, 0}, xs, ys, resp, p)
		n1 := lk.NLL(Model{fm, 1}, xs, ys, flip, p)
		if math.Abs(n0-n1) > difTol {
			t.Errorf("NLL side flip err: fam: %v, side0: %v, side1 flipped: %v\n", fm, n0, n1)
		}
	}
}

func TestBIC(t *testing.T) {
	n := 25
	nll := 3.7
	want := 2*math.Log(25) + 2*3.7
	if math.Abs(BIC(2, n, nll)-want) > difTol {
		t.Errorf("BIC err: got %v, want %v\n", BIC(2, n, nll), want)
	}
	// more parameters at equal fit quality must always score worse (n > 1)
	if BIC(3, n, nll) <= BIC(2, n, nll) {
		t.Errorf("BIC err: k=3 (%v) must exceed k=2 (%v) at fixed nll\n", BIC(3, n, nll), BIC(2, n, nll))
	}
}

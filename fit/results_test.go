// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"reflect"
	"testing"

	"cogentcore.org/core/tensor/table"
	"github.com/emer/dbm/dbm"
)

func TestResultsRoundTrip(t *testing.T) {
	rs := []Result{
		{Subject: 1, Day: 3, Model: dbm.Model{Family: dbm.UniX, Side: 0},
			Params: []float64{-0.21875, 0.0034567891234}, NLL: 1.25e-7, N: 25, BIC: 6.4378},
		{Subject: 1, Day: 3, Model: dbm.Model{Family: dbm.GLC, Side: 1},
			Params: []float64{1.0000000001, -3.5, 2}, NLL: 14.75, N: 25, BIC: 39.2},
	}
	dt := ResultsTable(rs)
	if dt.Rows != 2 {
		t.Fatalf("ResultsTable: got %v rows, want 2\n", dt.Rows)
	}
	back, err := ResultsFromTable(dt)
	if err != nil {
		t.Fatalf("ResultsFromTable err: %v\n", err)
	}
	if !reflect.DeepEqual(rs, back) {
		t.Errorf("results round trip: got %v, want %v\n", back, rs)
	}
}

func TestResultsFromTableSchema(t *testing.T) {
	dt := &table.Table{}
	dt.AddIntColumn("subject")
	dt.AddIntColumn("day")
	if _, err := ResultsFromTable(dt); err == nil {
		t.Errorf("ResultsFromTable: expected schema error for missing columns\n")
	}
	dt = &table.Table{}
	ConfigResultsTable(dt)
	dt.SetNumRows(1)
	dt.SetString("model", 0, "nosuch_0")
	dt.SetString("p", 0, "0 1")
	if _, err := ResultsFromTable(dt); err == nil {
		t.Errorf("ResultsFromTable: expected error for unknown model name\n")
	}
}

func TestParamsFormat(t *testing.T) {
	p := []float64{-0.000123456789012345, 7, 1e300}
	back, err := ParseParams(FormatParams(p))
	if err != nil {
		t.Fatalf("ParseParams err: %v\n", err)
	}
	if !reflect.DeepEqual(p, back) {
		t.Errorf("params round trip: got %v, want %v\n", back, p)
	}
	if _, err := ParseParams("1.5 bad"); err == nil {
		t.Errorf("ParseParams: expected error for bad value\n")
	}
}

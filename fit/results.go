// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/tensor/table"
	"github.com/emer/dbm/dbm"
)

// results table column names: one row per fitted model per (subject, day),
// with the parameter vector serialized into the p column
var resultsColumns = []string{"subject", "day", "model", "bic", "nll", "n", "p"}

// ConfigResultsTable configures dt with the fit-results schema.
func ConfigResultsTable(dt *table.Table) {
	dt.SetMetaData("name", "DBMResults")
	dt.AddIntColumn("subject")
	dt.AddIntColumn("day")
	dt.AddStringColumn("model")
	dt.AddFloat64Column("bic")
	dt.AddFloat64Column("nll")
	dt.AddIntColumn("n")
	dt.AddStringColumn("p")
}

// ResultsTable returns a new table with one row per Result, suitable for
// saving and for later reloading via ResultsFromTable.
func ResultsTable(rs []Result) *table.Table {
	dt := &table.Table{}
	ConfigResultsTable(dt)
	dt.SetNumRows(len(rs))
	for i, r := range rs {
		dt.SetFloat("subject", i, float64(r.Subject))
		dt.SetFloat("day", i, float64(r.Day))
		dt.SetString("model", i, r.Model.Name())
		dt.SetFloat("bic", i, r.BIC)
		dt.SetFloat("nll", i, r.NLL)
		dt.SetFloat("n", i, float64(r.N))
		dt.SetString("p", i, FormatParams(r.Params))
	}
	return dt
}

// ResultsFromTable parses a fit-results table back into Results, so a
// previously computed fit table can be loaded instead of refitting
// (fit-if-absent mode).  Missing columns are a fatal schema error; the
// optional n column defaults to 0 when absent.
func ResultsFromTable(dt *table.Table) ([]Result, error) {
	var miss []string
	for _, cn := range resultsColumns {
		if cn == "n" {
			continue
		}
		if _, err := dt.ColumnByName(cn); err != nil {
			miss = append(miss, cn)
		}
	}
	if len(miss) > 0 {
		return nil, fmt.Errorf("fit.ResultsFromTable: missing required columns: %v", miss)
	}
	_, nerr := dt.ColumnByName("n")
	rs := make([]Result, dt.Rows)
	for i := 0; i < dt.Rows; i++ {
		md, err := dbm.ModelByName(dt.StringValue("model", i))
		if err != nil {
			return nil, fmt.Errorf("fit.ResultsFromTable: row %d: %w", i, err)
		}
		ps, err := ParseParams(dt.StringValue("p", i))
		if err != nil {
			return nil, fmt.Errorf("fit.ResultsFromTable: row %d: %w", i, err)
		}
		rs[i] = Result{
			Subject: int(dt.Float("subject", i)),
			Day:     int(dt.Float("day", i)),
			Model:   md,
			Params:  ps,
			NLL:     dt.Float("nll", i),
			BIC:     dt.Float("bic", i),
		}
		if nerr == nil {
			rs[i].N = int(dt.Float("n", i))
		}
	}
	return rs, nil
}

// FormatParams serializes a parameter vector as a space-separated string
// with full float64 round-trip precision.
func FormatParams(p []float64) string {
	ss := make([]string, len(p))
	for i, v := range p {
		ss[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(ss, " ")
}

// ParseParams parses a FormatParams string back into a parameter vector.
func ParseParams(s string) ([]float64, error) {
	fs := strings.Fields(s)
	p := make([]float64, len(fs))
	for i, f := range fs {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("fit.ParseParams: bad parameter value %q: %w", f, err)
		}
		p[i] = v
	}
	return p, nil
}

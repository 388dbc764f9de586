// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package trial manages the canonical per-trial stimulus / response table for
category-learning experiments: schema validation, derived accuracy and
block columns, and grouping of trials by (subject, day) into the dense
slices consumed by the fitting engine.

The table is an already-corrected long-format record of the experiment;
per-subject data cleaning and raw-file ingestion happen upstream and no
subject-specific logic lives here.
*/
package trial

import (
	"fmt"
	"sort"
	"strconv"

	"cogentcore.org/core/tensor/stats/split"
	"cogentcore.org/core/tensor/table"
)

// category / response labels
const (
	LabelA = "A"
	LabelB = "B"
)

// RequiredColumns are the columns every trial table must provide.
// cat and resp hold the LabelA / LabelB category and response labels;
// (x, y) are native stimulus units and (xt, yt) the transformed display
// units (spatial frequency, orientation).
var RequiredColumns = []string{"subject", "day", "trial", "cat", "resp", "rt", "x", "y", "xt", "yt"}

// ConfigTable configures dt with the canonical trial schema, including the
// derived block and acc columns.
func ConfigTable(dt *table.Table) {
	dt.SetMetaData("name", "Trials")
	dt.AddIntColumn("subject")
	dt.AddIntColumn("day")
	dt.AddIntColumn("trial")
	dt.AddIntColumn("block")
	dt.AddStringColumn("cat")
	dt.AddStringColumn("resp")
	dt.AddFloat64Column("rt")
	dt.AddFloat64Column("x")
	dt.AddFloat64Column("y")
	dt.AddFloat64Column("xt")
	dt.AddFloat64Column("yt")
	dt.AddIntColumn("acc")
}

// ValidateTable checks that dt has all RequiredColumns, returning an error
// naming every missing column.  Callers must treat this as fatal and not
// proceed to fitting: fits on a malformed table would be meaningless.
func ValidateTable(dt *table.Table) error {
	var miss []string
	for _, cn := range RequiredColumns {
		if _, err := dt.ColumnByName(cn); err != nil {
			miss = append(miss, cn)
		}
	}
	if len(miss) > 0 {
		return fmt.Errorf("trial.ValidateTable: table %q is missing required columns: %v", dt.MetaData["name"], miss)
	}
	return nil
}

// AddDerived adds the derived columns to a validated table: acc (1 when
// resp matches cat) and block (trial index within day divided by
// blockSize).  An existing block column is honored; acc is always
// recomputed.
func AddDerived(dt *table.Table, blockSize int) {
	if _, err := dt.ColumnByName("acc"); err != nil {
		dt.AddIntColumn("acc")
	}
	_, berr := dt.ColumnByName("block")
	if berr != nil {
		dt.AddIntColumn("block")
	}
	for row := 0; row < dt.Rows; row++ {
		acc := 0.0
		if dt.StringValue("cat", row) == dt.StringValue("resp", row) {
			acc = 1
		}
		dt.SetFloat("acc", row, acc)
		if berr != nil {
			tr := int(dt.Float("trial", row))
			dt.SetFloat("block", row, float64(tr/blockSize))
		}
	}
}

// Group holds the trials of one (subject, day) unit, extracted into dense
// slices for the fitting hot loop.  X, Y are the fitting coordinates
// (native or transformed, per the Transformed flag given to Groups);
// Resp is 1 for the A response and 0 for B.
type Group struct {

	// participant id
	Subject int

	// day index within the longitudinal design
	Day int

	// stimulus coordinates, one entry per trial in table order
	X, Y []float64

	// observed responses: 1 = A, 0 = B
	Resp []int
}

// N returns the number of trials in the group.
func (gp *Group) N() int {
	return len(gp.Resp)
}

// NA returns the number of A responses.
func (gp *Group) NA() int {
	na := 0
	for _, r := range gp.Resp {
		na += r
	}
	return na
}

// Degenerate reports whether every trial has the same response, which
// makes the likelihood surface flat in the bound direction.  Such groups
// still fit (clamping keeps the objective finite) but are worth flagging.
func (gp *Group) Degenerate() bool {
	na := gp.NA()
	return na == 0 || na == gp.N()
}

// Groups splits a validated trial table into per-(subject, day) groups,
// in ascending (subject, day) order.  If transformed is true the (xt, yt)
// display coordinates are used as the fitting coordinates instead of the
// native (x, y).
func Groups(dt *table.Table, transformed bool) []*Group {
	xc, yc := "x", "y"
	if transformed {
		xc, yc = "xt", "yt"
	}
	ix := table.NewIndexView(dt)
	spl := split.GroupBy(ix, "subject", "day")
	gps := make([]*Group, 0, len(spl.Splits))
	for si, six := range spl.Splits {
		gp := &Group{
			Subject: atoi(spl.Values[si][0]),
			Day:     atoi(spl.Values[si][1]),
		}
		n := len(six.Indexes)
		gp.X = make([]float64, n)
		gp.Y = make([]float64, n)
		gp.Resp = make([]int, n)
		for i, row := range six.Indexes {
			gp.X[i] = dt.Float(xc, row)
			gp.Y[i] = dt.Float(yc, row)
			if dt.StringValue("resp", row) == LabelA {
				gp.Resp[i] = 1
			}
		}
		gps = append(gps, gp)
	}
	sort.Slice(gps, func(i, j int) bool {
		if gps[i].Subject != gps[j].Subject {
			return gps[i].Subject < gps[j].Subject
		}
		return gps[i].Day < gps[j].Day
	})
	return gps
}

// atoi parses a group-by key value, which can format as either an int or
// a float depending on the source column type.
func atoi(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

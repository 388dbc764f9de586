// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"sort"

	"cogentcore.org/core/tensor/stats/split"
	"cogentcore.org/core/tensor/stats/stats"
	"cogentcore.org/core/tensor/table"
)

// Assignment is the best-model reduction for one (subject, day) group:
// the minimum-BIC fit collapsed to its strategy class.
type Assignment struct {

	// participant id
	Subject int

	// day index
	Day int

	// the winning Result
	Best Result

	// strategy class of the winning family: procedural or rule-based
	Class string
}

// SelectBest reduces fit Results to one Assignment per (subject, day):
// the Result with minimum BIC, with exact ties broken by taking the
// lexicographically first model name, a fixed rule for reproducibility.
// Groups with no Results are simply absent.  Output is sorted by
// (subject, day).
func SelectBest(rs []Result) []Assignment {
	type key struct {
		sub, day int
	}
	best := map[key]Result{}
	for _, r := range rs {
		k := key{r.Subject, r.Day}
		b, ok := best[k]
		if !ok || r.BIC < b.BIC || (r.BIC == b.BIC && r.Model.Name() < b.Model.Name()) {
			best[k] = r
		}
	}
	as := make([]Assignment, 0, len(best))
	for _, r := range best {
		as = append(as, Assignment{
			Subject: r.Subject,
			Day:     r.Day,
			Best:    r,
			Class:   r.Model.Family.Class(),
		})
	}
	sort.Slice(as, func(i, j int) bool {
		if as[i].Subject != as[j].Subject {
			return as[i].Subject < as[j].Subject
		}
		return as[i].Day < as[j].Day
	})
	return as
}

// ConfigAssignTable configures dt with the best-model assignment schema.
func ConfigAssignTable(dt *table.Table) {
	dt.SetMetaData("name", "DBMBestModels")
	dt.AddIntColumn("subject")
	dt.AddIntColumn("day")
	dt.AddFloat64Column("bic")
	dt.AddStringColumn("best_model")
	dt.AddStringColumn("best_model_class")
}

// AssignTable returns a new table with one row per Assignment.
func AssignTable(as []Assignment) *table.Table {
	dt := &table.Table{}
	ConfigAssignTable(dt)
	dt.SetNumRows(len(as))
	for i, a := range as {
		dt.SetFloat("subject", i, float64(a.Subject))
		dt.SetFloat("day", i, float64(a.Day))
		dt.SetFloat("bic", i, a.Best.BIC)
		dt.SetString("best_model", i, a.Best.Model.Name())
		dt.SetString("best_model_class", i, a.Class)
	}
	return dt
}

// Summary aggregates an assignment table by (day, class): count of
// assignments, mean winning BIC, and the proportion of each class within
// its day.
func Summary(at *table.Table) *table.Table {
	ix := table.NewIndexView(at)
	spl := split.GroupBy(ix, "day", "best_model_class")
	split.AggColumn(spl, "bic", stats.Count)
	split.AggColumn(spl, "bic", stats.Mean)
	ag := spl.AggsToTable(table.AddAggName)
	ag.SetMetaData("name", "DBMSummary")
	ag.AddFloat64Column("prop")
	dayN := map[int]float64{}
	for i := 0; i < ag.Rows; i++ {
		dayN[int(ag.Float("day", i))] += ag.Float("bic:Count", i)
	}
	for i := 0; i < ag.Rows; i++ {
		ag.SetFloat("prop", i, ag.Float("bic:Count", i)/dayN[int(ag.Float("day", i))])
	}
	return ag
}

// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dbm is the overall repository for decision-bound model (DBM) fitting
of category-learning behavior, implemented in the Go language (golang).

Participants in category-learning experiments are hypothesized to separate
two stimulus categories using a decision bound in the 2D stimulus space.
Fitting a small family of competing bound models to each participant's
trial-by-trial responses, and selecting the best-supported model by BIC,
yields a per-day classification of the decision strategy as procedural
(general linear classifier) vs. rule-based (unidimensional bound).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* trial: the canonical per-trial stimulus / response table, with schema
validation, derived accuracy and block columns, and grouping of trials by
(subject, day) for fitting.

* dbm: the core model family -- discriminant functions for the
unidimensional-x, unidimensional-y, and general linear classifier bounds,
the Gaussian-noise response likelihood, and the BIC model-comparison score.

* fit: the fitting engine -- derivative-free maximum-likelihood optimization
of each family x side variant per (subject, day) group, parallel across
groups, and selection of the minimum-BIC model per group.

* examples: these compile into runnable programs.  examples/dbmfit is the
standard analysis driver: it loads a trial table, fits all models (or loads
a previously saved fit table), and writes the fit and best-model tables.
*/
package dbm

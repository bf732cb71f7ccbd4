// Package demand computes, for fixed item prices and fixed student budgets,
// the budget-feasible value-maximizing bundles of every student, and every
// allocation that assigns one such bundle per student.
//
// The computation has two sequential stages:
//
//  1. Per-student best-bundle search: for each student independently,
//     enumerate every subset of items of size 1..capacity, discard subsets
//     the student cannot afford, and keep all subsets achieving the maximum
//     valuation among the affordable ones (ties included). A student who
//     can afford nothing gets the empty bundle.
//  2. Cross-student assembly: form the Cartesian product over the
//     per-student best-bundle lists, re-check every student's budget in
//     each candidate, and keep the candidates in which every student passed.
//
// Both stages are pure functions of (prices, instance, budgets): no shared
// state, no side effects, deterministic output order.
//
// The search is exhaustive by contract. Stage 1 is exponential in the
// number of items and stage 2 is exponential in the number of tied best
// bundles per student; callers needing a time bound must impose it around
// the whole call.
package demand

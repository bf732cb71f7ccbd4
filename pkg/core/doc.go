// Package core defines the domain model for course allocation: bundles,
// price and budget vectors, the read-only problem instance, and the
// allocation builder used to commit a final assignment.
//
// Key Components:
//
//   - Instance: read-only view of agents, items, capacities, and valuations
//   - ValuationInstance: additive-valuation implementation of Instance
//   - Prices / Budgets: typed item-price and student-budget vectors
//   - AllocationBuilder: capacity-tracking sink for a final allocation
//
// All core types are plain values. An Instance is immutable for the
// duration of a computation; the ordering of Agents() and Items() is fixed
// at construction and defines the ordering of every downstream result.
package core

// Package tabu implements the tabu price search of Budish, Gao, Othman,
// Rubinstein and Zhang, "Practical algorithms and experimentally validated
// incentives for equilibrium-based fair division (A-CEEI)" (2023),
// Algorithm 3.
//
// Starting from a random price vector, the search repeatedly evaluates the
// budget-feasible demand of every student, measures the market clearing
// error, records the price region equivalent to the current vector as tabu,
// and moves to the non-tabu neighbor with the smallest error. It
// terminates when the market clears, the neighborhood is exhausted, the
// iteration cap is reached, or the context is cancelled, and returns the
// best allocation and prices seen.
//
// The per-price demand evaluation is delegated to pkg/demand; this package
// only searches over prices.
package tabu

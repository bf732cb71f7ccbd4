// Package market evaluates how far a candidate allocation is from clearing
// the market: per-item excess demand, its clipped form for zero-priced
// items, and the L2 clearing error used to rank candidate allocations and
// candidate price vectors.
package market

// Package selector implements the breed selection algorithms behind the
// mock identification draw:
//
//   - Weighted: independent random sample proportional to each record's
//     selection weight (the default)
//   - Uniform: equal probability across all records
//
// Selectors take an injectable random source so tests can pin determinism.
package selector

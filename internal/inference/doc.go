// Package inference implements the mock identification engine.
//
// There is no real model behind it: the engine sleeps for a random
// duration to emulate inference cost, draws a breed from the catalog's
// weighted distribution, and draws a confidence score from a fixed
// uniform range. The certainty bucket, recommendations and next steps
// are pure functions of that outcome.
package inference

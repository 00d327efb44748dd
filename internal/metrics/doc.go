// Package metrics collects identification events and serves the perturbed
// usage counters behind the stats endpoint.
//
// The counters are explicitly mock analytics: a fixed baseline plus small
// random deltas on each read, supplemented by the identifications actually
// observed in this process. Events flow through a buffered channel so the
// request path never blocks on bookkeeping.
package metrics

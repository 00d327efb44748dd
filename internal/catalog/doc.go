// Package catalog holds the static cattle and buffalo breed table.
//
// The table is loaded once at process start and is read-only afterwards,
// so lookups need no locking. Records are keyed by a stable slug and
// exposed by integer id, with cattle/buffalo partitions for the listing
// endpoints.
package catalog

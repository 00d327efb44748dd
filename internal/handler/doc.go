// Package handler implements the HTTP surface of the breed identifier:
// the identify upload endpoint, catalog listings, stats, liveness, the
// service banner and the JSON 404 fallback.
package handler

// Package ratelimit provides request pacing for the UniProt API.
//
// FixedInterval is the default: it spaces requests by a fixed delay so the
// fetch loop stays under the published limit of ~3 requests per second.
// TokenBucket is available for per-minute request budgets.
package ratelimit

// Package kernel holds the value objects shared by every aggregate of the
// document workflow tracker.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Amount: a non-negative monetary value with an ISO 4217 currency code
//   - Weight: a non-negative mass in kilograms
//
// Zero values of these types are invalid and fail Validate; use the
// constructors. Amounts and weights are backed by shopspring/decimal so
// totals on manifests never drift through float rounding.
package kernel

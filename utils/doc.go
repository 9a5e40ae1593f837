// Package utils provides internal utility functions for the travel-order
// resolver. This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting and conversion utilities
//   - Distance formatting for logs and summaries
package utils

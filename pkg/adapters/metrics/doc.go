// Package metrics provides metrics collector implementations.
//
// Implementations:
//   - prometheus: counters and histograms on a private registry
package metrics

// Package health builds the health report served by the API.
//
// The reporter captures the build version and the mem0 credential state
// once, at construction. Every call to Report returns a fresh value derived
// only from those two inputs, so concurrent callers always observe the same
// report for the life of the process.
package health

// Package kernel contains shared value objects used across all domain
// aggregates: identifiers and the constructor guard that keeps zero-value
// structs out of the domain.
package kernel

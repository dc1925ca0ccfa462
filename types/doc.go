// Package types provides core type definitions and interfaces for the teamdraw library.
//
// This package contains shared types that are used across multiple packages.
// By keeping these types in a separate package, we avoid import cycles
// between the root teamdraw package and its implementation packages.
//
// Key types:
//   - Person: One roster row
//   - Team, Partition: The output of one allocation run
//   - LookupKey, LookupEntry: Name lookup index entries
//   - AllocationStrategy: Allocation algorithm interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types

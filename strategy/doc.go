// Package strategy provides built-in allocation strategy implementations.
//
// Allocation strategies determine how a roster is split into teams.
// The package includes two built-in strategies:
//
//   - DepartmentBalanced: Spreads every department across teams while keeping sizes balanced (default)
//   - RoundRobin: Department-blind shuffled deal
//
// # Strategy Selection Guide
//
// DepartmentBalanced:
//   - Use when teams should mix people from different departments
//   - Team sizes differ by at most one
//   - A department larger than the number of teams lands at most one extra member per team per round
//
// RoundRobin:
//   - Use when departments do not matter
//   - Team sizes differ by at most one
//   - No department awareness
//
// Both strategies draw every random decision from the *rand.Rand passed to
// Allocate, so a seeded source reproduces the same partition.
//
// Custom strategies can be implemented by satisfying the types.AllocationStrategy interface.
package strategy

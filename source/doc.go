// Package source provides built-in roster source implementations.
//
// Roster sources supply the people to allocate. The package includes:
//
//   - Static: Fixed list of people
//   - File: YAML or JSON roster file
//
// Every source rejects rows with a missing required field (first name, last
// name, position, department) with types.ErrInvalidRoster, naming the row.
//
// Custom sources can be implemented by satisfying the types.RosterSource interface.
package source

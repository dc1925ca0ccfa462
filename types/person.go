package types

import (
	"strings"

	"github.com/arloliu/teamdraw/normalize"
)

// Person is one roster entry.
//
// All fields are free-form text. Persons are treated as immutable once loaded;
// use NewPerson to build one so the text fields are whitespace-collapsed.
type Person struct {
	FirstName  string `json:"first_name" yaml:"first_name"`
	LastName   string `json:"last_name" yaml:"last_name"`
	Position   string `json:"position" yaml:"position"`
	Department string `json:"department" yaml:"department"`

	// SequenceNo is the roster's own row number ("Lp."), kept as text.
	SequenceNo string `json:"sequence_no,omitempty" yaml:"sequence_no,omitempty"`
}

// NewPerson creates a Person with whitespace-collapsed name, position and department.
//
// Parameters:
//   - firstName, lastName: Name parts as typed in the roster
//   - position: Job title
//   - department: Organizational department used for spreading
//   - sequenceNo: Roster row number (trimmed only)
//
// Returns:
//   - Person: The cleaned roster entry
func NewPerson(firstName, lastName, position, department, sequenceNo string) Person {
	return Person{
		FirstName:  normalize.CollapseSpaces(firstName),
		LastName:   normalize.CollapseSpaces(lastName),
		Position:   normalize.CollapseSpaces(position),
		Department: normalize.CollapseSpaces(department),
		SequenceNo: strings.TrimSpace(sequenceNo),
	}
}

// Clean returns a copy of p with the same whitespace rules NewPerson applies.
func (p Person) Clean() Person {
	return NewPerson(p.FirstName, p.LastName, p.Position, p.Department, p.SequenceNo)
}

// DisplayName returns "First Last" with the original casing and diacritics.
func (p Person) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Missing returns the names of required fields that are empty.
//
// Required fields are first name, last name, position and department.
func (p Person) Missing() []string {
	var missing []string
	if strings.TrimSpace(p.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(p.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if strings.TrimSpace(p.Position) == "" {
		missing = append(missing, "position")
	}
	if strings.TrimSpace(p.Department) == "" {
		missing = append(missing, "department")
	}

	return missing
}

// CompareByLastName orders persons by last name, then first name.
//
// Ordinary lexicographic comparison on the collapsed display text.
//
// Returns:
//   - int: -1 if p < q, 0 if equal, +1 if p > q
func (p Person) CompareByLastName(q Person) int {
	if c := strings.Compare(p.LastName, q.LastName); c != 0 {
		return c
	}

	return strings.Compare(p.FirstName, q.FirstName)
}

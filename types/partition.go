package types

import "slices"

// Team is one group of a partition.
//
// Members are kept in display order (sorted by last name). Team values share
// their member slice, so callers must treat Members as read-only.
type Team struct {
	// Number is the 1-based team index within its partition.
	Number int `json:"number"`

	// Members is the team roster in display order.
	Members []Person `json:"members"`
}

// Size returns the number of members.
func (t Team) Size() int {
	return len(t.Members)
}

// Contains reports whether the team holds a member equal to p.
func (t Team) Contains(p Person) bool {
	return slices.Contains(t.Members, p)
}

// Partition is the full list of teams produced by one allocation run.
type Partition struct {
	Teams []Team `json:"teams"`
}

// NewPartition creates a partition of k empty, numbered teams.
//
// Parameters:
//   - k: Number of teams (values < 0 are treated as 0)
//
// Returns:
//   - Partition: Partition with teams numbered 1..k
func NewPartition(k int) Partition {
	k = max(k, 0)
	teams := make([]Team, k)
	for i := range teams {
		teams[i] = Team{Number: i + 1, Members: []Person{}}
	}

	return Partition{Teams: teams}
}

// Len returns the number of teams.
func (p Partition) Len() int {
	return len(p.Teams)
}

// IsZero reports whether the partition has no teams at all.
func (p Partition) IsZero() bool {
	return len(p.Teams) == 0
}

// Sizes returns the member count of every team, in team order.
func (p Partition) Sizes() []int {
	sizes := make([]int, len(p.Teams))
	for i, t := range p.Teams {
		sizes[i] = len(t.Members)
	}

	return sizes
}

// TotalMembers returns the number of persons across all teams.
func (p Partition) TotalMembers() int {
	total := 0
	for _, t := range p.Teams {
		total += len(t.Members)
	}

	return total
}

// Team returns the team with the given 1-based number.
//
// Returns:
//   - Team: The team (zero value if not found)
//   - bool: true if the number is within range
func (p Partition) Team(number int) (Team, bool) {
	if number < 1 || number > len(p.Teams) {
		return Team{}, false
	}

	return p.Teams[number-1], true
}

// Clone returns a deep copy that shares no member slices with p.
func (p Partition) Clone() Partition {
	if p.Teams == nil {
		return Partition{}
	}

	teams := make([]Team, len(p.Teams))
	for i, t := range p.Teams {
		teams[i] = Team{Number: t.Number, Members: slices.Clone(t.Members)}
		if teams[i].Members == nil {
			teams[i].Members = []Person{}
		}
	}

	return Partition{Teams: teams}
}

// DepartmentCounts returns, per team, how many members each department has.
//
// The outer slice is indexed like Teams.
func (p Partition) DepartmentCounts() []map[string]int {
	counts := make([]map[string]int, len(p.Teams))
	for i, t := range p.Teams {
		counts[i] = make(map[string]int)
		for _, m := range t.Members {
			counts[i][m.Department]++
		}
	}

	return counts
}

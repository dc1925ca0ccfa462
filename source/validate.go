package source

import (
	"fmt"
	"strings"

	"github.com/arloliu/teamdraw/types"
)

// validate cleans every row and rejects the first one with a missing field.
//
// Rows are numbered from 1 in error messages, and the sequence number is shown
// when the roster has one.
func validate(rows []types.Person, origin string) ([]types.Person, error) {
	people := make([]types.Person, 0, len(rows))
	for i, row := range rows {
		p := row.Clean()
		if missing := p.Missing(); len(missing) > 0 {
			ref := fmt.Sprintf("row %d", i+1)
			if p.SequenceNo != "" {
				ref += fmt.Sprintf(" (no. %s)", p.SequenceNo)
			}

			return nil, fmt.Errorf("%w: %s %s: missing %s",
				types.ErrInvalidRoster, origin, ref, strings.Join(missing, ", "))
		}
		people = append(people, p)
	}

	return people, nil
}

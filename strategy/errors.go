package strategy

import (
	"fmt"

	"github.com/arloliu/teamdraw/types"
)

// MinTeams is the smallest team count any strategy accepts.
const MinTeams = 2

func validateTeams(teams int) error {
	if teams < MinTeams {
		return fmt.Errorf("%w: need at least %d teams, got %d", types.ErrInvalidTeamCount, MinTeams, teams)
	}

	return nil
}

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrInvalidTeamCount, ErrInvalidTeamCount))
		require.False(t, errors.Is(ErrInvalidTeamCount, ErrTeamCountOutOfRange))

		// Test that wrapped errors maintain identity
		wrapped := fmt.Errorf("%w: got 1", ErrInvalidTeamCount)
		require.True(t, errors.Is(wrapped, ErrInvalidTeamCount))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			// Manager errors
			ErrInvalidConfig,
			ErrTeamCountOutOfRange,
			ErrRosterSourceRequired,
			ErrNothingToPublish,
			ErrAlreadyStarted,
			ErrNotStarted,
			ErrMirrorNotConfigured,
			// Allocation errors
			ErrInvalidTeamCount,
			ErrUnknownStrategy,
			// Roster errors
			ErrInvalidRoster,
			// Matching errors
			ErrInvalidMatcherConfig,
			// Mirror errors
			ErrPublishFailed,
			ErrClearFailed,
			ErrConcurrentPublish,
			ErrConnectivity,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

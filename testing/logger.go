package testing

import (
	"testing"

	"github.com/arloliu/teamdraw/internal/logger"
	"github.com/arloliu/teamdraw/types"
)

// NewTestLogger creates a logger that writes through t.Logf.
//
// This is useful for seeing library log output during test runs.
func NewTestLogger(t *testing.T) types.Logger {
	return logger.NewTest(t)
}

package transaction

import (
	"testing"
	"time"

	mcore "github.com/amirhossein-jamali/wallet-api/mocks/port/core"
	"github.com/stretchr/testify/mock"
)

// newPermissiveLogger returns a logger mock that accepts any call
func newPermissiveLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	return logger
}

// newFixedClock returns a time provider mock pinned to now
func newFixedClock(t *testing.T, now time.Time) *mcore.MockTimeProvider {
	clock := mcore.NewMockTimeProvider(t)
	clock.On("Now").Return(now).Maybe()
	return clock
}

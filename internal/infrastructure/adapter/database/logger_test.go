package database

import (
	"context"
	"errors"
	"testing"
	"time"

	mcore "github.com/amirhossein-jamali/wallet-api/mocks/port/core"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBridge(t *testing.T, level string, elapsed time.Duration) (logger.Interface, *mcore.MockLogger) {
	core := mcore.NewMockLogger(t)
	core.On("With", mock.Anything).Return(core).Once()

	clock := mcore.NewMockTimeProvider(t)
	clock.On("Since", mock.Anything).Return(elapsed).Maybe()

	return NewDatabaseLogger(core, clock, level), core
}

func TestDatabaseLoggerTrace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "transactions"`, 1 }

	t.Run("Regular Query Logs Debug", func(t *testing.T) {
		l, core := newBridge(t, "info", time.Millisecond)
		core.On("Debug", "SQL Query", mock.MatchedBy(func(f map[string]any) bool {
			return f["type"] == "SELECT" && f["rows"] == int64(1)
		})).Once()

		l.Trace(context.Background(), time.Now(), query, nil)
	})

	t.Run("Error Logs Error", func(t *testing.T) {
		l, core := newBridge(t, "info", time.Millisecond)
		core.On("Error", "SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom"
		})).Once()

		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	})

	t.Run("Record Not Found Is Not An Error", func(t *testing.T) {
		l, core := newBridge(t, "info", time.Millisecond)
		core.On("Debug", "SQL Query", mock.Anything).Once()

		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	})

	t.Run("Slow Query Logs Warn", func(t *testing.T) {
		l, core := newBridge(t, "warn", time.Second)
		core.On("Warn", "Slow SQL Query", mock.Anything).Once()

		l.Trace(context.Background(), time.Now(), query, nil)
	})

	t.Run("Silent Logs Nothing", func(t *testing.T) {
		l, _ := newBridge(t, "silent", time.Second)

		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	})
}

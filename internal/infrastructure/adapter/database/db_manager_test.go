package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/logger"
	tp "github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/time"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func newPingMock(t *testing.T) (sqlmock.Sqlmock, *Manager, func() error) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	cfg := validConfig()
	cfg.RetryDelay = 0
	manager := NewManager(cfg, logger.NewNoopLogger(), tp.NewRealTimeProvider())

	connect := func() error {
		_, err := manager.ConnectWith(context.Background(), postgres.New(postgres.Config{Conn: sqlDB}))
		return err
	}
	return mock, manager, connect
}

func TestManagerConnectAndPing(t *testing.T) {
	mock, manager, connect := newPingMock(t)

	mock.ExpectPing()
	require.NoError(t, connect())
	require.NotNil(t, manager.DB())

	mock.ExpectPing()
	assert.NoError(t, manager.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection reset"))
	assert.Error(t, manager.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, manager.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerConnectRetries(t *testing.T) {
	mock, manager, connect := newPingMock(t)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	require.NoError(t, connect())
	assert.NotNil(t, manager.DB())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerConnectGivesUp(t *testing.T) {
	mock, manager, connect := newPingMock(t)

	for i := 0; i < 3; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err := connect()
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Nil(t, manager.DB())
}

func TestManagerBeforeConnect(t *testing.T) {
	manager := NewManager(validConfig(), logger.NewNoopLogger(), tp.NewRealTimeProvider())

	assert.ErrorIs(t, manager.Ping(context.Background()), ErrNotConnected)
	assert.ErrorIs(t, manager.RegisterMetrics(prometheus.NewRegistry()), ErrNotConnected)
	assert.NoError(t, manager.Close())
}

func TestManagerRegisterMetrics(t *testing.T) {
	mock, manager, connect := newPingMock(t)

	mock.ExpectPing()
	require.NoError(t, connect())

	reg := prometheus.NewRegistry()
	require.NoError(t, manager.RegisterMetrics(reg))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_sql_open_connections")
}

package internal_repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internal_entity "github.com/yeti-switch/cdr-media/api/cdr-api/internal/entity"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
	"github.com/yeti-switch/cdr-media/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockConnector(t *testing.T, name string) (connectors.PostgresConnector, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return connectors.NewPostgresConnectorFromDB(name, db, commons.NewNopLogger()), mock
}

func cdrRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "uuid", "local_tag", "node_id", "dump_level_id", "audio_recorded", "duration"}).
		AddRow(101, "0d7f5bcb-3c5d-4bd8-9d3e-6d9a7c8a0f11", "some_local_tag", 25, 1, true, 3)
}

func TestCdrRepository_GetById(t *testing.T) {
	primary, mock := newMockConnector(t, "primary")
	mock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr" WHERE id = \$1`).WillReturnRows(cdrRows())

	repo := NewCdrRepository(primary, nil, commons.NewNopLogger())
	cdr, err := repo.Get(context.Background(), internal_entity.CdrKey{Id: 101})
	require.NoError(t, err)

	assert.Equal(t, uint64(101), cdr.Id)
	assert.Equal(t, "some_local_tag", cdr.LocalTag)
	require.NotNil(t, cdr.NodeId)
	assert.Equal(t, 25, *cdr.NodeId)
	assert.True(t, cdr.HasRecording())
	assert.True(t, cdr.HasDump())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCdrRepository_GetByUuidScopedToCustomer(t *testing.T) {
	primary, mock := newMockConnector(t, "primary")
	mock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr" WHERE uuid = \$1 AND customer_id = \$2 AND customer_acc_id IN \(\$3,\$4\)`).
		WillReturnRows(cdrRows())

	repo := NewCdrRepository(primary, nil, commons.NewNopLogger())
	cdr, err := repo.Get(context.Background(), internal_entity.CdrKey{
		Uuid:       "0d7f5bcb-3c5d-4bd8-9d3e-6d9a7c8a0f11",
		CustomerId: utils.Ptr(uint64(7)),
		AccountIds: []int64{70, 71},
	})
	require.NoError(t, err)
	assert.Equal(t, "0d7f5bcb-3c5d-4bd8-9d3e-6d9a7c8a0f11", cdr.Uuid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCdrRepository_NotFound(t *testing.T) {
	primary, mock := newMockConnector(t, "primary")
	mock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewCdrRepository(primary, nil, commons.NewNopLogger())
	_, err := repo.Get(context.Background(), internal_entity.CdrKey{Id: 1})
	assert.ErrorIs(t, err, ErrCdrNotFound)
}

func TestCdrRepository_ReplicaPreferred(t *testing.T) {
	primary, primaryMock := newMockConnector(t, "primary")
	replica, replicaMock := newMockConnector(t, "cdr_replica")
	replicaMock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr"`).WillReturnRows(cdrRows())

	repo := NewCdrRepository(primary, replica, commons.NewNopLogger())
	_, err := repo.Get(context.Background(), internal_entity.CdrKey{Id: 101})
	require.NoError(t, err)
	assert.NoError(t, replicaMock.ExpectationsWereMet())
	assert.NoError(t, primaryMock.ExpectationsWereMet())
}

func TestCdrRepository_ReplicaNotFoundIsFinal(t *testing.T) {
	primary, primaryMock := newMockConnector(t, "primary")
	replica, replicaMock := newMockConnector(t, "cdr_replica")
	replicaMock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewCdrRepository(primary, replica, commons.NewNopLogger())
	_, err := repo.Get(context.Background(), internal_entity.CdrKey{Id: 101})
	assert.ErrorIs(t, err, ErrCdrNotFound)
	assert.NoError(t, primaryMock.ExpectationsWereMet())
}

func TestCdrRepository_ReplicaFailureFallsBackToPrimary(t *testing.T) {
	primary, primaryMock := newMockConnector(t, "primary")
	replica, replicaMock := newMockConnector(t, "cdr_replica")
	replicaMock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr"`).WillReturnError(errors.New("connection refused"))
	primaryMock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr"`).WillReturnRows(cdrRows())

	repo := NewCdrRepository(primary, replica, commons.NewNopLogger())
	cdr, err := repo.Get(context.Background(), internal_entity.CdrKey{Id: 101})
	require.NoError(t, err)
	assert.Equal(t, uint64(101), cdr.Id)
	assert.NoError(t, replicaMock.ExpectationsWereMet())
	assert.NoError(t, primaryMock.ExpectationsWereMet())
}

func TestCdrRepository_PrimaryError(t *testing.T) {
	primary, mock := newMockConnector(t, "primary")
	mock.ExpectQuery(`SELECT \* FROM "cdr"\."cdr"`).WillReturnError(errors.New("too many connections"))

	repo := NewCdrRepository(primary, nil, commons.NewNopLogger())
	_, err := repo.Get(context.Background(), internal_entity.CdrKey{Id: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCdrNotFound)
	assert.Contains(t, err.Error(), "too many connections")
}

func TestApiAccessRepository_Get(t *testing.T) {
	primary, mock := newMockConnector(t, "primary")
	mock.ExpectQuery(`SELECT \* FROM "sys"\."api_access" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "customer_id", "account_ids", "allow_listen_recording"}).
			AddRow(5, "acme", 7, "{70,71}", true))

	repo := NewApiAccessRepository(primary, commons.NewNopLogger())
	access, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), access.CustomerId)
	assert.Equal(t, []int64{70, 71}, []int64(access.AccountIds))
	assert.True(t, access.AllowListenRecording)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApiAccessRepository_NotFound(t *testing.T) {
	primary, mock := newMockConnector(t, "primary")
	mock.ExpectQuery(`SELECT \* FROM "sys"\."api_access"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewApiAccessRepository(primary, commons.NewNopLogger())
	_, err := repo.Get(context.Background(), 5)
	assert.ErrorIs(t, err, ErrApiAccessNotFound)
}

package repository_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pointType struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	CentsPerPoint float64 `db:"cents_per_point"`
	model.Metadata
}

type chainWithPointType struct {
	ID            string   `db:"id"`
	Name          string   `db:"name"`
	CentsPerPoint *float64 `db:"point_type_cpp" table:"point_types" column:"cents_per_point"`
}

func (chainWithPointType) GetJoinQuery() string {
	return "LEFT JOIN point_types ON point_types.id = hotel_chains.point_type_id"
}

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestRepository_Insert(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[pointType]("point type", "point_types", "id", conn, mocks.NewOtel())

	assert.Equal(t, []string{"id", "name", "cents_per_point", "created_at", "modified_at", "created_by", "modified_by"}, repo.InsertColumns)

	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO point_types (id, name, cents_per_point, created_at, modified_at, created_by, modified_by) VALUES (?, ?, ?, ?, ?, ?, ?)")).
		WithArgs("pt-1", "Hyatt Points", 0.017, now, now, "system", "system").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), pointType{
		ID:            "pt-1",
		Name:          "Hyatt Points",
		CentsPerPoint: 0.017,
		Metadata:      model.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "system", ModifiedBy: "system"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetJoined(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[chainWithPointType]("hotel chain", "hotel_chains", "id", conn, mocks.NewOtel())

	mock.ExpectPrepare(regexp.QuoteMeta(
		"SELECT hotel_chains.id, hotel_chains.name, point_types.cents_per_point AS point_type_cpp FROM hotel_chains LEFT JOIN point_types ON point_types.id = hotel_chains.point_type_id  WHERE (hotel_chains.id = ?)",
	)).
		ExpectQuery().
		WithArgs("hyatt").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "point_type_cpp"}).AddRow("hyatt", "Hyatt", 0.02))

	got, err := repo.Get(context.Background(), dto.And(dto.Eq("hotel_chains", "id", "hyatt")))

	require.NoError(t, err)
	assert.Equal(t, "Hyatt", got.Name)
	require.NotNil(t, got.CentsPerPoint)
	assert.InDelta(t, 0.02, *got.CentsPerPoint, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNoRowsReturnsZeroValue(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[pointType]("point type", "point_types", "id", conn, mocks.NewOtel())

	mock.ExpectPrepare("SELECT .* FROM point_types").
		ExpectQuery().
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.Get(context.Background(), dto.And(dto.Eq("point_types", "id", "missing")))

	assert.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestRepository_UpdateUsesPrefixedArgs(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[pointType]("point type", "point_types", "id", conn, mocks.NewOtel())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE point_types SET cents_per_point = ?, id = ?  WHERE (point_types.id = ?)")).
		WithArgs(0.015, "pt-2", "pt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(
		context.Background(),
		map[string]any{"id": "pt-2", "cents_per_point": 0.015},
		dto.And(dto.Eq("point_types", "id", "pt-1")),
	)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRequiresFilter(t *testing.T) {
	conn, _ := newConnection(t)
	repo := repository.NewRepository[pointType]("point type", "point_types", "id", conn, mocks.NewOtel())

	err := repo.Update(context.Background(), map[string]any{"name": "x"}, dto.And())

	assert.Error(t, err)
}

func TestRepository_DeleteMapsConstraintViolations(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantCode int
	}{
		{
			name:     "foreign key violation",
			dbErr:    &pq.Error{Code: "23503", Constraint: "hotel_chains_point_type_id_fkey"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "unique violation",
			dbErr:    &pq.Error{Code: "23505", Constraint: "point_types_name_key"},
			wantCode: http.StatusConflict,
		},
		{
			name:     "other error",
			dbErr:    errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)
			repo := repository.NewRepository[pointType]("point type", "point_types", "id", conn, mocks.NewOtel())

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM point_types")).
				WithArgs("pt-1").
				WillReturnError(tt.dbErr)

			err := repo.Delete(context.Background(), dto.And(dto.Eq("point_types", "id", "pt-1")))

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestRepository_GetAllTxPaginates(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[pointType]("point type", "point_types", "id", conn, mocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY point_types.name ASC LIMIT ? OFFSET ?")).
		ExpectQuery().
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("pt-6", "Marriott Bonvoy"))
	mock.ExpectCommit()

	err := conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		models, err := repo.GetAllTx(
			context.Background(),
			tx,
			dto.QueryParams{Page: 2, Limit: 5, SortBy: "point_types.name", SortDir: dto.SortDirAsc},
			dto.And(),
		)
		if err != nil {
			return err
		}

		assert.Len(t, models, 1)

		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_WithTxRollsBackOnError(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := conn.WithTx(context.Background(), func(*sqlx.Tx) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertBulkSkipsEmpty(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[pointType]("point type", "point_types", "id", conn, mocks.NewOtel())

	assert.NoError(t, repo.InsertBulk(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

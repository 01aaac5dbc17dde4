package repository

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"tourdesk/infras/otel/mocks"
	"tourdesk/infras/postgres"
	"tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}

type gadget struct {
	ID         string `db:"id"`
	WidgetID   string `db:"widget_id"`
	WidgetName string `db:"widget_name" table:"widgets" column:"name"`
}

func (gadget) GetJoinQuery() string {
	return "LEFT JOIN widgets ON widgets.id = gadgets.widget_id"
}

func newMockRepository[T any](t *testing.T, table string) (Repository[T], sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return NewRepository[T](table, table, "id", conn, mocks.NewOtel()), mock, sqlxDB
}

func idFilter(table, id string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: id, Table: table}},
	}
}

func TestNewRepository_Columns(t *testing.T) {
	repo, _, _ := newMockRepository[gadget](t, "gadgets")

	assert.Equal(t, []string{"id", "widget_id"}, repo.InsertColumns)
	assert.False(t, repo.softDelete)
	assert.Equal(t, "gadgets.id, gadgets.widget_id, widgets.name AS widget_name", repo.getSelectQuery(context.Background()))

	soft, _, _ := newMockRepository[widget](t, "widgets")
	assert.True(t, soft.softDelete)
	assert.Contains(t, soft.InsertColumns, "deleted_at")
}

func TestRepository_OrderBy(t *testing.T) {
	repo, _, _ := newMockRepository[gadget](t, "gadgets")

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "known column", params: dto.QueryParams{SortBy: "id", SortDir: dto.SortDirDesc}, want: "ORDER BY gadgets.id DESC"},
		{name: "aliased join column", params: dto.QueryParams{SortBy: "widget_name"}, want: "ORDER BY widgets.name ASC"},
		{name: "unknown column is ignored", params: dto.QueryParams{SortBy: "id; DROP TABLE gadgets", SortDir: dto.SortDirAsc}, want: ""},
		{name: "no sort", params: dto.QueryParams{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderBy(tt.params))
		})
	}
}

func TestRepository_BuildWhereClause(t *testing.T) {
	soft, _, _ := newMockRepository[widget](t, "widgets")

	where, args := soft.BuildWhereClause(context.Background(), idFilter("widgets", "w1"))
	assert.Equal(t, " WHERE (widgets.id = :id) AND widgets.deleted_at IS NULL ", where)
	assert.Equal(t, map[string]any{"id": "w1"}, args)

	where, _ = soft.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Equal(t, " WHERE widgets.deleted_at IS NULL ", where)

	hard, _, _ := newMockRepository[gadget](t, "gadgets")
	where, args = hard.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, _ := newMockRepository[widget](t, "widgets")

		mock.ExpectPrepare(regexp.QuoteMeta("FROM widgets   WHERE (widgets.id = $1) AND widgets.deleted_at IS NULL")).
			ExpectQuery().
			WithArgs("w1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("w1", "Ha Long"))

		got, err := repo.Get(context.Background(), idFilter("widgets", "w1"))
		require.NoError(t, err)
		assert.Equal(t, "w1", got.ID)
		assert.Equal(t, "Ha Long", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row returns zero model", func(t *testing.T) {
		repo, mock, _ := newMockRepository[widget](t, "widgets")

		mock.ExpectPrepare("SELECT (.+) FROM widgets").
			ExpectQuery().
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		got, err := repo.Get(context.Background(), idFilter("widgets", "nope"))
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetForUpdateTx(t *testing.T) {
	repo, mock, db := newMockRepository[gadget](t, "gadgets")

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("FOR UPDATE OF gadgets")).
		ExpectQuery().
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "widget_id", "widget_name"}).AddRow("g1", "w1", "Sa Pa"))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	got, err := repo.GetForUpdateTx(context.Background(), tx, idFilter("gadgets", "g1"))
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, "Sa Pa", got.WidgetName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	repo, mock, _ := newMockRepository[gadget](t, "gadgets")

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY widgets.name DESC LIMIT $1 OFFSET $2")).
		ExpectQuery().
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "widget_id", "widget_name"}).
			AddRow("g1", "w1", "Sa Pa").
			AddRow("g2", "w2", "Hue"))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "widget_name", SortDir: dto.SortDirDesc}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock, _ := newMockRepository[widget](t, "widgets")

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(widgets.id) FROM widgets")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	got, err := repo.Count(context.Background(), dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	t.Run("soft delete stamps deleted_at", func(t *testing.T) {
		repo, mock, _ := newMockRepository[widget](t, "widgets")

		mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET deleted_at = $1  WHERE (widgets.id = $2) AND widgets.deleted_at IS NULL")).
			WithArgs(sqlmock.AnyArg(), "w1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), idFilter("widgets", "w1")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hard delete without metadata", func(t *testing.T) {
		repo, mock, _ := newMockRepository[gadget](t, "gadgets")

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM gadgets  WHERE (gadgets.id = $1)")).
			WithArgs("g1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), idFilter("gadgets", "g1")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filter is required", func(t *testing.T) {
		repo, _, _ := newMockRepository[gadget](t, "gadgets")

		assert.ErrorIs(t, repo.Delete(context.Background(), dto.FilterGroup{}), errRequiredFilter)
	})

	t.Run("referenced row is a bad request", func(t *testing.T) {
		repo, mock, _ := newMockRepository[gadget](t, "gadgets")

		mock.ExpectExec("DELETE FROM gadgets").WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Delete(context.Background(), idFilter("gadgets", "g1"))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRepository_Insert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, _ := newMockRepository[gadget](t, "gadgets")

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gadgets (id, widget_id) VALUES ($1, $2)")).
			WithArgs("g1", "w1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Insert(context.Background(), gadget{ID: "g1", WidgetID: "w1"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is a conflict", func(t *testing.T) {
		repo, mock, _ := newMockRepository[gadget](t, "gadgets")

		mock.ExpectExec("INSERT INTO gadgets").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Insert(context.Background(), gadget{ID: "g1", WidgetID: "w1"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("empty bulk is a no-op", func(t *testing.T) {
		repo, mock, _ := newMockRepository[gadget](t, "gadgets")

		require.NoError(t, repo.InsertBulk(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock, _ := newMockRepository[widget](t, "widgets")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET modified_by = $1, name = $2  WHERE (widgets.id = $3) AND widgets.deleted_at IS NULL")).
		WithArgs("admin", "Da Lat", "w1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"name": "Da Lat", "modified_by": "admin"}, idFilter("widgets", "w1"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.ErrorIs(t, repo.Update(context.Background(), map[string]any{"name": "x"}, dto.FilterGroup{}), errRequiredFilter)
}

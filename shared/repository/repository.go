package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/logger"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const updateArgPrefix = "set_"

var errRequiredFilter = errors.New("required filter")

// Transactor runs a unit of work in one database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// NewTransactor exposes the write connection as a Transactor.
func NewTransactor(db *postgres.Connection) Transactor {
	return db
}

// joiner is implemented by row types that read columns from other tables.
type joiner interface {
	GetJoinQuery() string
}

// runner is satisfied by both *sqlx.DB and *sqlx.Tx.
type runner interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) selectExpr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

// Repository is a table gateway for rows of type T. Columns come from the
// db tags of T; a table tag moves a column to a joined table and a column
// tag renames it on read.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

func NewRepository[T any](entity, table, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(table, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            db,
		otel:          otl,
		table:         table,
		entity:        entity,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) span(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

// fail records err on the span and logs it with a stack.
func fail(scope otel.Scope, err error) {
	logger.ErrorWithStack(err)
	scope.TraceError(err)
}

func (repo *Repository[T]) Insert(ctx context.Context, row T) error {
	return repo.insert(ctx, repo.db.Write, row)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, row T) error {
	return repo.insert(ctx, tx, row)
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	return repo.insert(ctx, repo.db.Write, rows)
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, tx *sqlx.Tx, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	return repo.insert(ctx, tx, rows)
}

// insert accepts a single T or a []T; sqlx expands a slice into a
// multi-row VALUES list.
func (repo *Repository[T]) insert(ctx context.Context, run runner, arg any) error {
	ctx, scope := repo.span(ctx, "insert")
	defer scope.End()

	named := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		named[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(named, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := run.NamedExecContext(ctx, query, arg); err != nil {
		fail(scope, err)

		return repo.translate("insert", err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, repo.db.Read, filter)
}

func (repo *Repository[T]) ExistTx(ctx context.Context, tx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, tx, filter)
}

func (repo *Repository[T]) exist(ctx context.Context, run runner, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.span(ctx, "exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	if err := repo.queryOne(ctx, scope, run, query, args, &exist); err != nil {
		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return exist, nil
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, repo.db.Read, filter, columns...)
}

// GetTx reads inside a transaction so rows written earlier in it are visible.
func (repo *Repository[T]) GetTx(ctx context.Context, tx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, tx, filter, columns...)
}

func (repo *Repository[T]) get(ctx context.Context, run runner, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.span(ctx, "get")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns), repo.table, repo.join, where)

	var row T

	err := repo.queryOne(ctx, scope, run, query, args, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return row, nil
	}

	if err != nil {
		return row, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return row, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, repo.db.Read, params, filter, columns...)
}

func (repo *Repository[T]) GetAllTx(ctx context.Context, tx *sqlx.Tx, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, tx, params, filter, columns...)
}

func (repo *Repository[T]) getAll(ctx context.Context, run runner, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.span(ctx, "getAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	ordering := ""

	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectList(columns), repo.table, repo.join, where, ordering, paginate(params, args))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []T{}

	stmt, err := run.PrepareNamedContext(ctx, query)
	if err != nil {
		fail(scope, err)

		return rows, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		fail(scope, err)

		return rows, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return rows, nil
}

// paginate adds limit and offset args when params ask for a page.
func paginate(params dto.QueryParams, args map[string]any) string {
	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		return "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit

		return "LIMIT :limit"
	default:
		return ""
	}
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.span(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var count int

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	if err := repo.queryOne(ctx, scope, repo.db.Read, query, args, &count); err != nil {
		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, err)
	}

	return count, nil
}

// queryOne prepares query and scans a single row into dest. sql.ErrNoRows
// is returned as is and not logged.
func (repo *Repository[T]) queryOne(ctx context.Context, scope otel.Scope, run runner, query string, args map[string]any, dest any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := run.PrepareNamedContext(ctx, query)
	if err != nil {
		fail(scope, err)

		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, dest, args)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		fail(scope, err)
	}

	return err //nolint:wrapcheck
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.delete(ctx, repo.db.Write, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, tx *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.delete(ctx, tx, filter)
}

func (repo *Repository[T]) delete(ctx context.Context, run runner, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, scope, run, "delete", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

func (repo *Repository[T]) Update(ctx context.Context, set map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, set, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, tx *sqlx.Tx, set map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, tx, set, filter)
}

// update binds new values under a prefix so a column can appear in both
// the SET list and the filter.
func (repo *Repository[T]) update(ctx context.Context, run runner, set map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "update")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(set))

	for _, col := range slices.Sorted(maps.Keys(set)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s%s", col, updateArgPrefix, col))
		args[updateArgPrefix+col] = set[col]
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	return repo.exec(ctx, scope, run, "update", query, args)
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, run runner, action, query string, args map[string]any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := run.NamedExecContext(ctx, query, args); err != nil {
		fail(scope, err)

		return repo.translate(action, err)
	}

	return nil
}

// selectList renders the projection, limited to names when any are given.
func (repo *Repository[T]) selectList(names []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(names) > 0 && !slices.Contains(names, col.name) {
			continue
		}

		exprs = append(exprs, col.selectExpr())
	}

	return strings.Join(exprs, ", ")
}

func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

// getColumns walks the db tags of t, descending into embedded structs.
// Only columns owned by table are insertable.
func getColumns(table string, t reflect.Type) (columns []column, insertColumns []string) {
	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			nested, nestedInsert := getColumns(table, field.Type)
			columns = append(columns, nested...)
			insertColumns = append(insertColumns, nestedInsert...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}

// translate maps constraint violations to conflicts so callers get a 409
// instead of an opaque 500 when a referenced row is still in use.
func (repo *Repository[T]) translate(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeFkViolation:
			return failure.Conflictf("%s is referenced by other records (%s)", repo.entity, pqErr.Constraint)
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflictf("%s already exists (%s)", repo.entity, pqErr.Constraint)
		}
	}

	return fmt.Errorf("failed to %s data (%s): %w", action, repo.entity, err)
}

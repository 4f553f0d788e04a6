package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/dberrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
)

// querier is the subset of pgxpool.Pool and pgx.Tx used by repositories
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// table holds what every entity repository shares: the pool, a squirrel
// builder with $n placeholders, and the names used in queries and errors.
type table[T any] struct {
	db     *pgxpool.Pool
	sb     squirrel.StatementBuilderType
	name   string // SQL table name
	alias  string // alias used in the joined SELECT
	entity string // human-readable name for error messages

	// selectBase returns the SELECT with every joined name column.
	// Its column list must match the db tags of T exactly.
	selectBase func(sb squirrel.StatementBuilderType) squirrel.SelectBuilder
}

func newTable[T any](db *pgxpool.Pool, name, alias, entity string, selectBase func(squirrel.StatementBuilderType) squirrel.SelectBuilder) table[T] {
	return table[T]{
		db:         db,
		sb:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		name:       name,
		alias:      alias,
		entity:     entity,
		selectBase: selectBase,
	}
}

// col qualifies a column with the table alias
func (t table[T]) col(column string) string {
	return t.alias + "." + column
}

func (t table[T]) notFound() error {
	return apperrors.NewResourceNotFoundError("%s not found", t.entity)
}

// translate maps driver errors onto the application error taxonomy
func (t table[T]) translate(err error, op string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return t.notFound()
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConflictError("%s already exists", t.entity)
	case dberrors.IsCheckViolation(err):
		return apperrors.NewValidationError("invalid value for %s (%s)", t.entity, dberrors.ConstraintName(err))
	}
	return apperrors.Wrap(err, "failed to %s %s", op, t.entity)
}

func (t table[T]) queryAll(ctx context.Context, q querier, query squirrel.Sqlizer) ([]*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building list SQL")
		return nil, apperrors.Wrap(err, "failed to build %s list query", t.entity)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, t.translate(err, "list")
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, t.translate(err, "scan")
	}
	if records == nil {
		records = []*T{}
	}
	return records, nil
}

func (t table[T]) queryOne(ctx context.Context, q querier, query squirrel.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building get SQL")
		return nil, apperrors.Wrap(err, "failed to build %s query", t.entity)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, t.translate(err, "get")
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, t.translate(err, "get")
	}
	return record, nil
}

// list runs the joined SELECT with optional conditions and ordering
func (t table[T]) list(ctx context.Context, where squirrel.And, orderBy ...string) ([]*T, error) {
	query := t.selectBase(t.sb).OrderBy(orderBy...)
	if len(where) > 0 {
		query = query.Where(where)
	}
	return t.queryAll(ctx, t.db, query)
}

func (t table[T]) getByID(ctx context.Context, id int64) (*T, error) {
	return t.queryOne(ctx, t.db, t.selectBase(t.sb).Where(squirrel.Eq{t.col("id"): id}).Limit(1))
}

func (t table[T]) getBy(ctx context.Context, column string, value any) (*T, error) {
	return t.queryOne(ctx, t.db, t.selectBase(t.sb).Where(squirrel.Eq{t.col(column): value}).Limit(1))
}

// insert writes one row and returns its generated id
func (t table[T]) insert(ctx context.Context, values map[string]interface{}) (int64, error) {
	sql, args, err := t.sb.Insert(t.name).SetMap(values).Suffix("RETURNING id").ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building insert SQL")
		return 0, apperrors.Wrap(err, "failed to build %s insert", t.entity)
	}

	var id int64
	if err := t.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, t.translate(err, "create")
	}
	return id, nil
}

// create inserts and reads the record back through the joined SELECT
func (t table[T]) create(ctx context.Context, values map[string]interface{}) (*T, error) {
	id, err := t.insert(ctx, values)
	if err != nil {
		return nil, err
	}
	return t.getByID(ctx, id)
}

// update writes only the given columns. touch adds updated_at = NOW().
func (t table[T]) update(ctx context.Context, id int64, fields map[string]interface{}, touch bool) (*T, error) {
	if len(fields) == 0 {
		return t.getByID(ctx, id)
	}

	builder := t.sb.Update(t.name).SetMap(fields).Where(squirrel.Eq{"id": id})
	if touch {
		builder = builder.Set("updated_at", squirrel.Expr("NOW()"))
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building update SQL")
		return nil, apperrors.Wrap(err, "failed to build %s update", t.entity)
	}

	cmdTag, err := t.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, t.translate(err, "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, t.notFound()
	}
	return t.getByID(ctx, id)
}

// delete is a hard delete. Rows referencing this one are left untouched.
func (t table[T]) delete(ctx context.Context, id int64) error {
	sql, args, err := t.sb.Delete(t.name).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building delete SQL")
		return apperrors.Wrap(err, "failed to build %s delete", t.entity)
	}

	cmdTag, err := t.db.Exec(ctx, sql, args...)
	if err != nil {
		return t.translate(err, "delete")
	}
	if cmdTag.RowsAffected() == 0 {
		return t.notFound()
	}
	return nil
}

// eqIf appends column = value when value is not the zero value
func eqIf[V comparable](where squirrel.And, column string, value V) squirrel.And {
	var zero V
	if value != zero {
		where = append(where, squirrel.Eq{column: value})
	}
	return where
}

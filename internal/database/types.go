package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// Queryable is the subset of behaviour shared by *sqlx.DB and *sqlx.Tx. Stores
// accept a Queryable so the caller decides whether the work runs inside
// a transaction or not.
type Queryable interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	Rebind(query string) string
}

var (
	_ Queryable = (*sqlx.DB)(nil)
	_ Queryable = (*sqlx.Tx)(nil)
)

// JsonColumn is a generic container for columns which are selected
// as JSON (typically via JSONB_AGG) and need decoding in to a Go type.
type JsonColumn[T any] struct {
	val T
}

func (j *JsonColumn[T]) Scan(src any) error {
	if src == nil {
		j.val = *new(T)
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T in to JsonColumn", src)
	}

	return json.Unmarshal(data, &j.val)
}

func (j JsonColumn[T]) Value() (driver.Value, error) {
	return json.Marshal(j.val)
}

func (j *JsonColumn[T]) Get() *T {
	return &j.val
}

// IsUniqueViolation returns true if the error provided is (or wraps) a
// postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}

	return false
}

// IsNoRows is a small helper to detect the 'no rows' error returned by
// Get when no result is found.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

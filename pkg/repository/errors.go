package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes surfaced as domain errors.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

// ErrorMap names the domain errors a store reports for driver failures.
// Nil fields leave the matching failure unmapped.
type ErrorMap struct {
	NotFound  error
	Duplicate error
	Invalid   error
}

// Map translates sql.ErrNoRows, unique violations and check violations.
// Invalid is wrapped with the violated constraint name.
func (m ErrorMap) Map(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && m.NotFound != nil {
		return m.NotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == codeUniqueViolation && m.Duplicate != nil:
		return m.Duplicate
	case pgErr.Code == codeCheckViolation && m.Invalid != nil:
		return fmt.Errorf("%w: %s", m.Invalid, pgErr.ConstraintName)
	}
	return err
}

package repository

import (
	"errors"
	"strings"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgconn"
)

// randomOrder orders a query by RANDOM(), understood by both sqlite and
// postgres.
func randomOrder(s *entsql.Selector) {
	s.OrderExpr(entsql.Expr("RANDOM()"))
}

// isUniqueViolation detects a unique-constraint failure from either supported
// driver. Postgres reports SQLSTATE 23505 through pgconn; sqlite only gives
// us the message text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

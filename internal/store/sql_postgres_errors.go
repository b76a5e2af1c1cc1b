package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failure is transient.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, syntax errors,
	// data exceptions and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks failures that may succeed on a later attempt, such as
	// a dropped connection or a serialization conflict.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
//
// Retryable: class 08 (connection), class 40 (rollback, serialization,
// deadlock) and 57P03 (cannot connect now). Everything else is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

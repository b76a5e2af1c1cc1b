package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps the connection pool together with the driver-specific error
// classifier and the migration set to apply.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// Migrate applies the embedded migrations for this database.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.Migrate(db.DB)
	}
	return db.migrate(db.DB)
}

// withRetry runs op and retries it with exponential backoff while the
// classifier reports the failure as transient. Without a classifier op runs
// exactly once.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	if db.errorClassificator == nil {
		return op(ctx)
	}

	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

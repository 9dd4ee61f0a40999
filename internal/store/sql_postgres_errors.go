package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller whether a failed statement is worth
// running again.
type ErrorClassification int

const (
	// NonRetryable failures repeat on every attempt: constraint violations,
	// bad data, bad SQL and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable failures are transient: lost connections, serialization
	// failures, deadlocks, lock timeouts and a server that is restarting.
	Retryable
)

// retryableClasses are SQLSTATE classes whose every code is transient.
var retryableClasses = []string{
	"08", // connection exception
	"40", // transaction rollback: serialization failure, deadlock
}

// retryableCodes are transient codes from otherwise permanent classes.
var retryableCodes = map[string]struct{}{
	pgerrcode.TooManyConnections: {}, // 53300
	pgerrcode.LockNotAvailable:   {}, // 55P03
	pgerrcode.AdminShutdown:      {}, // 57P01
	pgerrcode.CrashShutdown:      {}, // 57P02
	pgerrcode.CannotConnectNow:   {}, // 57P03
}

// PostgresErrorClassifier implements [ErrorClassificator] on SQLSTATE codes
// reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Errors that carry no SQLSTATE
// are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyCode(pgErr.Code)
}

// ClassifyCode maps a SQLSTATE code to its classification.
func ClassifyCode(code string) ErrorClassification {
	if _, ok := retryableCodes[code]; ok {
		return Retryable
	}
	for _, class := range retryableClasses {
		if strings.HasPrefix(code, class) {
			return Retryable
		}
	}
	return NonRetryable
}

// IsRetryable reports whether err wraps a transient Postgres failure.
func IsRetryable(err error) bool {
	return NewPostgresErrorClassifier().Classify(err) == Retryable
}

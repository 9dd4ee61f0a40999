package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. Permissions are kept as JSON text in the
// _permissions column.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, log *logger.Logger) AccountRepository {
	log.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: log,
	}
}

func (r *accountRepository) GetAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.getAccount(ctx, "accountRepository.GetAccountByUsername", getAccountByUsername, username)
}

func (r *accountRepository) GetAccountByID(ctx context.Context, id int64) (models.Account, error) {
	return r.getAccount(ctx, "accountRepository.GetAccountByID", getAccountByID, id)
}

func (r *accountRepository) getAccount(ctx context.Context, funcName, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to get account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return queryAccounts(ctx, r.DB, "accountRepository.ListAccounts")
}

func (r *accountRepository) DeleteAccount(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteAccountByUsername, username)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.DeleteAccount").Str("username", username).Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrAccountNotFound
	}

	log.Info().Str("func", "accountRepository.DeleteAccount").Str("username", username).Msg("account deleted")
	return nil
}

func queryAccounts(ctx context.Context, q Querier, funcName string) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, listAccounts)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectRows(ctx, rows, funcName, scanAccount)
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account     models.Account
		isAdmin     sql.NullBool
		permissions sql.NullString
	)
	if err := row.Scan(&account.ID, &account.Username, &account.PasswordHash, &isAdmin, &permissions); err != nil {
		return models.Account{}, err
	}
	account.IsAdmin = isAdmin.Bool

	decoded, err := decodePermissions(permissions.String)
	if err != nil {
		return models.Account{}, err
	}
	account.Permissions = decoded

	return account, nil
}

func encodePermissions(permissions models.Permissions) (string, error) {
	if permissions == nil {
		permissions = models.Permissions{}
	}
	data, err := json.Marshal(permissions)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}

func decodePermissions(raw string) (models.Permissions, error) {
	permissions := models.Permissions{}
	if raw == "" {
		return permissions, nil
	}
	if err := json.Unmarshal([]byte(raw), &permissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return permissions, nil
}

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
)

// maxSyncAttempts bounds retries of a reconciliation that failed with a
// retryable error such as a serialization failure.
const maxSyncAttempts = 3

// syncRepository is the PostgreSQL-backed implementation of [SyncRepository].
type syncRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncRepository constructs a [SyncRepository] backed by the provided
// database connection and logger.
func NewSyncRepository(db *DB, log *logger.Logger) SyncRepository {
	log.Debug().Msg("creating sync repository")
	return &syncRepository{
		DB:     db,
		logger: log,
	}
}

// WithinSyncTx holds the reconciliation advisory lock on a dedicated
// connection and runs fn in a SERIALIZABLE transaction on that connection.
// The lock is taken before the transaction begins, so its snapshot already
// sees the commits of the run that held the lock before. Retryable failures
// rerun fn from scratch on a fresh transaction.
func (r *syncRepository) WithinSyncTx(ctx context.Context, fn func(ctx context.Context, tx SyncTx) error) error {
	log := logger.FromContext(ctx)

	conn, err := r.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncRepository.WithinSyncTx").Msg("failed to reserve connection")
		return fmt.Errorf("%w: %w", ErrAcquiringLock, err)
	}
	defer conn.Close()

	if _, err = conn.ExecContext(ctx, acquireSyncLock, syncLockKey); err != nil {
		log.Err(err).Str("func", "syncRepository.WithinSyncTx").Msg("failed to acquire sync lock")
		return fmt.Errorf("%w: %w", ErrAcquiringLock, err)
	}
	defer r.releaseSyncLock(ctx, conn)

	for attempt := 1; attempt <= maxSyncAttempts; attempt++ {
		err = runInTx(ctx, conn, &sql.TxOptions{Isolation: sql.LevelSerializable}, "syncRepository.WithinSyncTx", func(tx *sql.Tx) error {
			return fn(ctx, &syncTx{tx: tx})
		})
		if err == nil || !r.Retryable(err) {
			return err
		}

		log.Warn().Err(err).
			Str("func", "syncRepository.WithinSyncTx").
			Int("attempt", attempt).
			Msg("retrying reconciliation")
	}

	return err
}

// releaseSyncLock unlocks the session lock. A connection that cannot be
// unlocked is discarded instead of returned to the pool, which ends the
// session and frees the lock.
func (r *syncRepository) releaseSyncLock(ctx context.Context, conn *sql.Conn) {
	_, err := conn.ExecContext(context.WithoutCancel(ctx), releaseSyncLock, syncLockKey)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn().Err(err).
		Str("func", "syncRepository.releaseSyncLock").
		Msg("failed to release sync lock, discarding connection")
	_ = conn.Raw(func(any) error { return driver.ErrBadConn })
}

// syncTx implements [SyncTx] on an open transaction.
type syncTx struct {
	tx *sql.Tx
}

// LoadState reads every entity a reconciliation document can describe.
func (s *syncTx) LoadState(ctx context.Context) (models.SyncState, error) {
	var (
		state models.SyncState
		err   error
	)

	if state.Services, err = s.loadServices(ctx); err != nil {
		return models.SyncState{}, err
	}
	if state.LegacyCollections, err = s.loadLegacyCollections(ctx); err != nil {
		return models.SyncState{}, err
	}
	if state.Collections, err = queryList(ctx, s.tx, "syncTx.LoadState.Collections", listAllCollections, scanCollection); err != nil {
		return models.SyncState{}, err
	}
	if state.APIRoots, err = queryList(ctx, s.tx, "syncTx.LoadState.APIRoots", listAPIRoots, scanAPIRoot); err != nil {
		return models.SyncState{}, err
	}
	if state.Accounts, err = queryAccounts(ctx, s.tx, "syncTx.LoadState.Accounts"); err != nil {
		return models.SyncState{}, err
	}

	return state, nil
}

func (s *syncTx) loadServices(ctx context.Context) ([]models.Service, error) {
	return queryList(ctx, s.tx, "syncTx.loadServices", listServices, func(row rowScanner) (models.Service, error) {
		var (
			service    models.Service
			kind       sql.NullString
			properties string
		)
		err := row.Scan(&service.ID, &kind, &properties, &service.DateCreated, &service.DateUpdated)
		service.Type = models.ServiceType(kind.String)
		if properties != "" {
			service.Properties = json.RawMessage(properties)
		}
		return service, err
	})
}

func (s *syncTx) loadLegacyCollections(ctx context.Context) ([]models.LegacyCollection, error) {
	collections, err := queryList(ctx, s.tx, "syncTx.loadLegacyCollections", listLegacyCollections, scanLegacyCollection)
	if err != nil {
		return nil, err
	}

	type link struct {
		serviceID    string
		collectionID int64
	}
	links, err := queryList(ctx, s.tx, "syncTx.loadLegacyCollections", listServiceLinks, func(row rowScanner) (link, error) {
		var l link
		err := row.Scan(&l.serviceID, &l.collectionID)
		return l, err
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]int, len(collections))
	for i, c := range collections {
		byID[c.ID] = i
	}
	for _, l := range links {
		if i, ok := byID[l.collectionID]; ok {
			collections[i].ServiceIDs = append(collections[i].ServiceIDs, l.serviceID)
		}
	}

	return collections, nil
}

func (s *syncTx) CreateService(ctx context.Context, service models.Service) error {
	return s.exec(ctx, "syncTx.CreateService", insertService, service.ID, string(service.Type), propertiesText(service.Properties))
}

func (s *syncTx) UpdateService(ctx context.Context, service models.Service) error {
	return s.exec(ctx, "syncTx.UpdateService", updateService, service.ID, string(service.Type), propertiesText(service.Properties))
}

func (s *syncTx) DeleteService(ctx context.Context, id string) error {
	return s.exec(ctx, "syncTx.DeleteService", deleteService, id)
}

func (s *syncTx) CreateLegacyCollection(ctx context.Context, c models.LegacyCollection) (int64, error) {
	log := logger.FromContext(ctx)

	bindings, err := bindingsText(c.SupportedContent)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.tx.QueryRowContext(ctx, insertLegacyCollection,
		c.Name, string(c.Type), c.Description, c.AcceptAllContent, bindings, c.Available,
	).Scan(&id)
	if err != nil {
		log.Err(err).Str("func", "syncTx.CreateLegacyCollection").Str("name", c.Name).Msg("failed to insert collection")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = s.linkServices(ctx, id, c.ServiceIDs); err != nil {
		return 0, err
	}

	return id, nil
}

func (s *syncTx) UpdateLegacyCollection(ctx context.Context, c models.LegacyCollection) error {
	bindings, err := bindingsText(c.SupportedContent)
	if err != nil {
		return err
	}

	err = s.exec(ctx, "syncTx.UpdateLegacyCollection", updateLegacyCollection,
		c.ID, string(c.Type), c.Description, c.AcceptAllContent, bindings, c.Available)
	if err != nil {
		return err
	}

	if err = s.exec(ctx, "syncTx.UpdateLegacyCollection", deleteServiceLinks, c.ID); err != nil {
		return err
	}
	return s.linkServices(ctx, c.ID, c.ServiceIDs)
}

func (s *syncTx) linkServices(ctx context.Context, collectionID int64, serviceIDs []string) error {
	for _, serviceID := range serviceIDs {
		if err := s.exec(ctx, "syncTx.linkServices", insertServiceLink, serviceID, collectionID); err != nil {
			return err
		}
	}
	return nil
}

func (s *syncTx) DeleteLegacyCollection(ctx context.Context, id int64) error {
	return s.exec(ctx, "syncTx.DeleteLegacyCollection", deleteLegacyCollection, id)
}

func (s *syncTx) DisableLegacyCollection(ctx context.Context, id int64) error {
	return s.exec(ctx, "syncTx.DisableLegacyCollection", disableLegacyCollection, id)
}

func (s *syncTx) CreateCollection(ctx context.Context, c models.Collection) error {
	if err := execInsertCollection(ctx, s.tx, c); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncTx.CreateCollection").
			Str("collection_id", c.ID.String()).
			Msg("failed to insert collection")
		return err
	}
	return nil
}

func (s *syncTx) UpdateCollection(ctx context.Context, c models.Collection) error {
	return s.exec(ctx, "syncTx.UpdateCollection", updateCollection,
		c.ID, c.APIRootID, c.Title, c.Description, c.Alias, c.IsPublic, c.IsPublicWrite, c.Available)
}

func (s *syncTx) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, "syncTx.DeleteCollection", deleteCollection, id)
}

func (s *syncTx) DisableCollection(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, "syncTx.DisableCollection", disableCollection, id)
}

func (s *syncTx) CreateAccount(ctx context.Context, account models.Account) error {
	permissions, err := encodePermissions(account.Permissions)
	if err != nil {
		return err
	}
	return s.exec(ctx, "syncTx.CreateAccount", insertAccount, account.Username, account.PasswordHash, account.IsAdmin, permissions)
}

func (s *syncTx) UpdateAccount(ctx context.Context, account models.Account) error {
	permissions, err := encodePermissions(account.Permissions)
	if err != nil {
		return err
	}
	return s.exec(ctx, "syncTx.UpdateAccount", updateAccount, account.ID, account.PasswordHash, account.IsAdmin, permissions)
}

func (s *syncTx) DeleteAccount(ctx context.Context, id int64) error {
	return s.exec(ctx, "syncTx.DeleteAccount", deleteAccountByID, id)
}

func (s *syncTx) exec(ctx context.Context, funcName, query string, args ...any) error {
	if _, err := s.tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func queryList[T any](ctx context.Context, q Querier, funcName, query string, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectRows(ctx, rows, funcName, scan)
}

func scanLegacyCollection(row rowScanner) (models.LegacyCollection, error) {
	var (
		c              models.LegacyCollection
		kind, bindings sql.NullString
		available      sql.NullBool
		acceptAll      sql.NullBool
		volume         sql.NullInt64
	)
	err := row.Scan(&c.ID, &c.Name, &kind, &c.Description, &available, &acceptAll, &bindings, &volume, &c.DateCreated)
	if err != nil {
		return models.LegacyCollection{}, err
	}

	c.Type = models.LegacyCollectionType(kind.String)
	c.Available = !available.Valid || available.Bool
	c.AcceptAllContent = acceptAll.Bool
	c.Volume = int(volume.Int64)
	if bindings.String != "" {
		if err = json.Unmarshal([]byte(bindings.String), &c.SupportedContent); err != nil {
			return models.LegacyCollection{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
	}

	return c, nil
}

func propertiesText(properties json.RawMessage) string {
	if len(properties) == 0 {
		return "{}"
	}
	return string(properties)
}

func bindingsText(supported []string) (string, error) {
	if len(supported) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(supported)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}

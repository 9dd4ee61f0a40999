package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// directoryRepository is the PostgreSQL-backed implementation of
// [DirectoryRepository] over the opentaxii_api_root and opentaxii_collection
// tables.
type directoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDirectoryRepository constructs a [DirectoryRepository] backed by the
// provided database connection and logger.
func NewDirectoryRepository(db *DB, log *logger.Logger) DirectoryRepository {
	log.Debug().Msg("creating directory repository")
	return &directoryRepository{
		DB:     db,
		logger: log,
	}
}

func (r *directoryRepository) ListAPIRoots(ctx context.Context) ([]models.APIRoot, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listAPIRoots)
	if err != nil {
		log.Err(err).Str("func", "directoryRepository.ListAPIRoots").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roots := make([]models.APIRoot, 0, 4)
	for rows.Next() {
		root, scanErr := scanAPIRoot(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "directoryRepository.ListAPIRoots").Msg("failed to scan api root row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		roots = append(roots, root)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "directoryRepository.ListAPIRoots").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roots, nil
}

func (r *directoryRepository) GetAPIRoot(ctx context.Context, id uuid.UUID) (models.APIRoot, error) {
	log := logger.FromContext(ctx)

	root, err := scanAPIRoot(r.DB.QueryRowContext(ctx, getAPIRoot, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.APIRoot{}, ErrAPIRootNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "directoryRepository.GetAPIRoot").Str("api_root_id", id.String()).Msg("failed to get api root")
		return models.APIRoot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return root, nil
}

// CreateAPIRoot stores root. When root is the default one, the flag is
// cleared on every other root in the same transaction.
func (r *directoryRepository) CreateAPIRoot(ctx context.Context, root models.APIRoot) (models.APIRoot, error) {
	log := logger.FromContext(ctx)

	if root.ID == uuid.Nil {
		root.ID = uuid.New()
	}

	err := r.withinTx(ctx, nil, "directoryRepository.CreateAPIRoot", func(tx *sql.Tx) error {
		if root.IsDefault {
			if _, err := tx.ExecContext(ctx, clearDefaultAPIRoot); err != nil {
				log.Err(err).Str("func", "directoryRepository.CreateAPIRoot").Msg("failed to clear default api root")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		_, err := tx.ExecContext(ctx, insertAPIRoot, root.ID, root.Title, root.Description, root.IsDefault, root.IsPublic)
		if err != nil {
			log.Err(err).Str("func", "directoryRepository.CreateAPIRoot").Str("api_root_id", root.ID.String()).Msg("failed to insert api root")
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrAPIRootExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		return models.APIRoot{}, err
	}

	log.Info().Str("func", "directoryRepository.CreateAPIRoot").Str("api_root_id", root.ID.String()).Msg("api root created")
	return root, nil
}

func (r *directoryRepository) ListCollections(ctx context.Context, apiRootID uuid.UUID) ([]models.Collection, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listCollections, apiRootID)
	if err != nil {
		log.Err(err).Str("func", "directoryRepository.ListCollections").Str("api_root_id", apiRootID.String()).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectRows(ctx, rows, "directoryRepository.ListCollections", scanCollection)
}

func (r *directoryRepository) GetCollection(ctx context.Context, id uuid.UUID) (models.Collection, error) {
	return r.getCollection(ctx, "directoryRepository.GetCollection", getCollection, id)
}

func (r *directoryRepository) GetCollectionByAlias(ctx context.Context, apiRootID uuid.UUID, alias string) (models.Collection, error) {
	return r.getCollection(ctx, "directoryRepository.GetCollectionByAlias", getCollectionByAlias, apiRootID, alias)
}

func (r *directoryRepository) getCollection(ctx context.Context, funcName, query string, args ...any) (models.Collection, error) {
	log := logger.FromContext(ctx)

	collection, err := scanCollection(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Collection{}, ErrCollectionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to get collection")
		return models.Collection{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collection, nil
}

func (r *directoryRepository) CreateCollection(ctx context.Context, collection models.Collection) (models.Collection, error) {
	log := logger.FromContext(ctx)

	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}

	if err := execInsertCollection(ctx, r.DB, collection); err != nil {
		log.Err(err).Str("func", "directoryRepository.CreateCollection").Str("collection_id", collection.ID.String()).Msg("failed to insert collection")
		return models.Collection{}, err
	}

	log.Info().Str("func", "directoryRepository.CreateCollection").Str("collection_id", collection.ID.String()).Msg("collection created")
	return collection, nil
}

func execInsertCollection(ctx context.Context, q Querier, c models.Collection) error {
	_, err := q.ExecContext(ctx, insertCollection,
		c.ID, c.APIRootID, c.Title, c.Description, c.Alias, c.IsPublic, c.IsPublicWrite, c.Available)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrCollectionAliasExists
		case pgerrcode.ForeignKeyViolation:
			return ErrAPIRootNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAPIRoot(row rowScanner) (models.APIRoot, error) {
	var root models.APIRoot
	err := row.Scan(&root.ID, &root.Title, &root.Description, &root.IsDefault, &root.IsPublic)
	return root, err
}

func scanCollection(row rowScanner) (models.Collection, error) {
	var c models.Collection
	err := row.Scan(&c.ID, &c.APIRootID, &c.Title, &c.Description, &c.Alias, &c.IsPublic, &c.IsPublicWrite, &c.Available)
	return c, err
}

// collectRows drains rows through scan, wrapping failures the same way for
// every list query.
func collectRows[T any](ctx context.Context, rows *sql.Rows, funcName string, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	items := make([]T, 0, 16)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
)

// objectRepository is the PostgreSQL-backed implementation of
// [ObjectRepository]. Rows are keyed by (collection_id, id, version) and
// ordered by (date_added, id, version).
type objectRepository struct {
	*DB
	logger *logger.Logger
}

// NewObjectRepository constructs an [ObjectRepository] backed by the
// provided database connection and logger.
func NewObjectRepository(db *DB, log *logger.Logger) ObjectRepository {
	log.Debug().Msg("creating object repository")
	return &objectRepository{
		DB:     db,
		logger: log,
	}
}

// AddObject inserts object unless its (collection, id, version) key is
// already stored. On a key collision the stored payload is compared as jsonb:
// an equal payload is [models.AlreadyExists], a different one a
// [*ConflictError].
func (r *objectRepository) AddObject(ctx context.Context, object models.STIXObject) (models.AddResult, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "objectRepository.AddObject").
		Str("collection_id", object.CollectionID.String()).
		Str("object_id", object.ID).
		Time("version", object.Version).
		Logger()

	if object.PK == uuid.Nil {
		object.PK = uuid.New()
	}

	var pk uuid.UUID
	err := r.DB.QueryRowContext(ctx, insertObject,
		object.PK, object.ID, object.CollectionID, object.Type, object.SpecVersion, object.Version.UTC(), string(object.Payload),
	).Scan(&pk)
	if err == nil {
		log.Debug().Msg("object version stored")
		return models.Created, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Msg("failed to insert object")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var same bool
	err = r.DB.QueryRowContext(ctx, sameObjectPayload,
		object.CollectionID, object.ID, object.Version.UTC(), string(object.Payload),
	).Scan(&same)
	if err != nil {
		log.Err(err).Msg("failed to compare stored payload")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !same {
		log.Warn().Msg("object version already stored with a different payload")
		return 0, &ConflictError{
			CollectionID: object.CollectionID.String(),
			ObjectID:     object.ID,
			Version:      object.Version,
		}
	}

	log.Debug().Msg("object version already stored")
	return models.AlreadyExists, nil
}

func (r *objectRepository) ListObjects(ctx context.Context, query models.ObjectQuery) ([]models.STIXObject, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListObjectsQuery(query, objectColumns)
	if err != nil {
		log.Err(err).Str("func", "objectRepository.ListObjects").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "objectRepository.ListObjects").
			Str("collection_id", query.Filter.CollectionID.String()).
			Msg("failed to execute query for listing objects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectRows(ctx, rows, "objectRepository.ListObjects", scanObject)
}

func (r *objectRepository) ListManifest(ctx context.Context, query models.ObjectQuery) ([]models.ManifestEntry, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListObjectsQuery(query, manifestColumns)
	if err != nil {
		log.Err(err).Str("func", "objectRepository.ListManifest").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "objectRepository.ListManifest").
			Str("collection_id", query.Filter.CollectionID.String()).
			Msg("failed to execute query for listing manifest")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectRows(ctx, rows, "objectRepository.ListManifest", scanManifestEntry)
}

// ListVersions returns every stored version of objectID in ascending order,
// or [ErrObjectNotFound] when there is none.
func (r *objectRepository) ListVersions(ctx context.Context, collectionID uuid.UUID, objectID string, specVersions []string) ([]time.Time, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListVersionsQuery(collectionID, objectID, specVersions)
	if err != nil {
		log.Err(err).Str("func", "objectRepository.ListVersions").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "objectRepository.ListVersions").Str("object_id", objectID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions, err := collectRows(ctx, rows, "objectRepository.ListVersions", func(row rowScanner) (time.Time, error) {
		var version time.Time
		err := row.Scan(&version)
		return version.UTC(), err
	})
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, ErrObjectNotFound
	}

	return versions, nil
}

// DeleteObjects removes the selected versions and reports
// [ErrObjectNotFound] when nothing matched.
func (r *objectRepository) DeleteObjects(ctx context.Context, filter models.ObjectFilter) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildDeleteObjectsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "objectRepository.DeleteObjects").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "objectRepository.DeleteObjects").Strs("object_ids", filter.IDs).Msg("failed to delete objects")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if deleted == 0 {
		return 0, ErrObjectNotFound
	}

	log.Info().
		Str("func", "objectRepository.DeleteObjects").
		Strs("object_ids", filter.IDs).
		Int64("deleted", deleted).
		Msg("objects deleted")
	return deleted, nil
}

func scanObject(row rowScanner) (models.STIXObject, error) {
	var (
		object  models.STIXObject
		payload []byte
	)
	err := row.Scan(&object.PK, &object.ID, &object.CollectionID, &object.Type, &object.SpecVersion,
		&object.DateAdded, &object.Version, &payload)
	object.DateAdded = object.DateAdded.UTC()
	object.Version = object.Version.UTC()
	object.Payload = payload
	return object, err
}

func scanManifestEntry(row rowScanner) (models.ManifestEntry, error) {
	var (
		entry       models.ManifestEntry
		specVersion string
	)
	err := row.Scan(&entry.ID, &entry.DateAdded, &entry.Version, &specVersion)
	entry.DateAdded = entry.DateAdded.UTC()
	entry.Version = entry.Version.UTC()
	entry.MediaType = models.MediaTypeFor(specVersion)
	return entry, err
}

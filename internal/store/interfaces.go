package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
)

// DirectoryRepository reads and administers API roots and collections.
type DirectoryRepository interface {
	ListAPIRoots(ctx context.Context) ([]models.APIRoot, error)
	GetAPIRoot(ctx context.Context, id uuid.UUID) (models.APIRoot, error)
	CreateAPIRoot(ctx context.Context, root models.APIRoot) (models.APIRoot, error)

	ListCollections(ctx context.Context, apiRootID uuid.UUID) ([]models.Collection, error)
	GetCollection(ctx context.Context, id uuid.UUID) (models.Collection, error)
	GetCollectionByAlias(ctx context.Context, apiRootID uuid.UUID, alias string) (models.Collection, error)
	CreateCollection(ctx context.Context, collection models.Collection) (models.Collection, error)
}

// ObjectRepository stores versioned STIX objects.
type ObjectRepository interface {
	// AddObject inserts one object version. An identical payload under the
	// same key yields [models.AlreadyExists]; a different one a *ConflictError.
	AddObject(ctx context.Context, object models.STIXObject) (models.AddResult, error)
	// ListObjects returns up to query.Limit rows after query.After, ordered by
	// (date_added, id, version).
	ListObjects(ctx context.Context, query models.ObjectQuery) ([]models.STIXObject, error)
	ListManifest(ctx context.Context, query models.ObjectQuery) ([]models.ManifestEntry, error)
	ListVersions(ctx context.Context, collectionID uuid.UUID, objectID string, specVersions []string) ([]time.Time, error)
	// DeleteObjects removes the versions of filter.IDs[0] selected by the
	// filter and returns the number of deleted rows.
	DeleteObjects(ctx context.Context, filter models.ObjectFilter) (int64, error)
}

// JobRepository persists ingestion jobs and their per-object details.
type JobRepository interface {
	// CreateJob stores the job and all of its pending details atomically.
	CreateJob(ctx context.Context, job models.Job) error
	// RecordOutcome moves one pending detail to status and adjusts the job
	// counters in the same transaction.
	RecordOutcome(ctx context.Context, jobID, detailID uuid.UUID, status models.JobDetailStatus, message string) error
	GetJob(ctx context.Context, apiRootID, jobID uuid.UUID) (models.Job, error)
	// DeleteCompletedJobs removes complete jobs finished before the cutoff.
	DeleteCompletedJobs(ctx context.Context, before time.Time) (int64, error)
}

// AccountRepository reads and administers accounts.
type AccountRepository interface {
	GetAccountByUsername(ctx context.Context, username string) (models.Account, error)
	GetAccountByID(ctx context.Context, id int64) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	DeleteAccount(ctx context.Context, username string) error
}

// SyncRepository runs a reconciliation against the persisted configuration.
type SyncRepository interface {
	// WithinSyncTx runs fn inside a single serializable transaction holding
	// the reconciliation advisory lock. Any error from fn rolls everything back.
	WithinSyncTx(ctx context.Context, fn func(ctx context.Context, tx SyncTx) error) error
}

// SyncTx is the set of operations available inside a reconciliation
// transaction.
type SyncTx interface {
	LoadState(ctx context.Context) (models.SyncState, error)

	CreateService(ctx context.Context, service models.Service) error
	UpdateService(ctx context.Context, service models.Service) error
	DeleteService(ctx context.Context, id string) error

	CreateLegacyCollection(ctx context.Context, collection models.LegacyCollection) (int64, error)
	UpdateLegacyCollection(ctx context.Context, collection models.LegacyCollection) error
	DeleteLegacyCollection(ctx context.Context, id int64) error
	DisableLegacyCollection(ctx context.Context, id int64) error

	CreateCollection(ctx context.Context, collection models.Collection) error
	UpdateCollection(ctx context.Context, collection models.Collection) error
	DeleteCollection(ctx context.Context, id uuid.UUID) error
	DisableCollection(ctx context.Context, id uuid.UUID) error

	CreateAccount(ctx context.Context, account models.Account) error
	UpdateAccount(ctx context.Context, account models.Account) error
	DeleteAccount(ctx context.Context, id int64) error
}

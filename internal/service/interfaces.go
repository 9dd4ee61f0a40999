package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// PermissionGate decides whether a principal may act on a collection.
// A nil principal is anonymous.
type PermissionGate interface {
	// Resolve returns the collection when action is allowed. Missing or
	// unavailable collections yield ErrNotFound before any permission check;
	// a denial yields ErrPermissionDenied.
	Resolve(ctx context.Context, principal *models.Account, collectionID uuid.UUID, action models.Access) (models.Collection, error)
	// ResolveRef is Resolve for a collection addressed by id or alias
	// within an API root.
	ResolveRef(ctx context.Context, principal *models.Account, ref models.CollectionRef, action models.Access) (models.Collection, error)
}

// DirectoryService exposes API roots and collections.
type DirectoryService interface {
	ListAPIRoots(ctx context.Context, principal *models.Account) ([]models.APIRoot, error)
	GetAPIRoot(ctx context.Context, principal *models.Account, id uuid.UUID) (models.APIRoot, error)
	ListCollections(ctx context.Context, principal *models.Account, apiRootID uuid.UUID) ([]models.CollectionView, error)
	GetCollection(ctx context.Context, principal *models.Account, ref models.CollectionRef) (models.CollectionView, error)

	CreateAPIRoot(ctx context.Context, principal *models.Account, root models.APIRoot) (models.APIRoot, error)
	CreateCollection(ctx context.Context, principal *models.Account, collection models.Collection) (models.Collection, error)
}

// ObjectService reads and deletes versioned objects of a collection.
type ObjectService interface {
	ListObjects(ctx context.Context, principal *models.Account, ref models.CollectionRef, filter models.ObjectFilter, page models.PageRequest) (models.ObjectPage, error)
	GetObject(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, filter models.ObjectFilter, page models.PageRequest) (models.ObjectPage, error)
	ListVersions(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, specVersions []string) ([]time.Time, error)
	ListManifest(ctx context.Context, principal *models.Account, ref models.CollectionRef, filter models.ObjectFilter, page models.PageRequest) (models.ManifestPage, error)
	DeleteObject(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, filter models.ObjectFilter) error
}

// IngestService accepts object batches and tracks their processing.
type IngestService interface {
	// SubmitBatch records a pending job and returns it; the objects are
	// processed in the background.
	SubmitBatch(ctx context.Context, principal *models.Account, ref models.CollectionRef, objects []map[string]any) (models.JobStatusResource, error)
	GetJob(ctx context.Context, principal *models.Account, apiRootID, jobID uuid.UUID) (models.JobStatusResource, error)
	// CleanupJobs removes complete jobs finished more than olderThan ago.
	CleanupJobs(ctx context.Context, olderThan time.Duration) (int64, error)
	// Wait blocks until every submitted batch is processed or ctx is done.
	Wait(ctx context.Context) error
}

// SyncService reconciles persisted configuration with a YAML document.
type SyncService interface {
	// ParseDocument decodes and validates a document without touching storage.
	ParseDocument(ctx context.Context, data []byte) (models.SyncDocument, error)
	// Sync applies the document atomically and reports what changed.
	Sync(ctx context.Context, data []byte) (models.SyncReport, error)
	// DryRun reports what Sync would change without committing anything.
	DryRun(ctx context.Context, data []byte) (models.SyncReport, error)
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	Authenticate(ctx context.Context, token string) (*models.Account, error)
}

// AccountService administers accounts outside of reconciliation.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	DeleteAccount(ctx context.Context, username string) error
}

// ObjectServiceWrapper decorates an ObjectService with additional behavior
// such as input validation.
type ObjectServiceWrapper interface {
	Wrap(ObjectService) ObjectService
}

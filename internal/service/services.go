package service

import (
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/cache"
	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/pagination"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/MKhiriev/go-taxii/internal/validators"
)

type Services struct {
	DirectoryService DirectoryService
	ObjectService    ObjectService
	IngestService    IngestService
	SyncService      SyncService
	AuthService      AuthService
	AccountService   AccountService

	// DirectoryCache fronts the directory repository for every service
	// above. Purge it when another instance announces a change.
	DirectoryCache *cache.DirectoryCache
}

func NewServices(repositories *store.Repositories, notifier cache.Notifier, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	objectValidator, err := validators.NewSTIXObjectValidator()
	if err != nil {
		return nil, fmt.Errorf("error building object validator: %w", err)
	}

	directory := cache.NewDirectoryCache(repositories.DirectoryRepository, cfg.Cache, log)
	gate := NewPermissionGate(directory, log)
	hasher := utils.NewScryptHasher()
	pages := pagination.NewEngine(cfg.Pagination, cfg.App.CursorKey)

	objects := NewObjectService(repositories.ObjectRepository, gate, pages, log)
	objects = NewObjectValidationService().Wrap(objects)

	return &Services{
		DirectoryService: NewDirectoryService(directory, notifier, log),
		ObjectService:    objects,
		IngestService:    NewIngestService(repositories.JobRepository, repositories.ObjectRepository, gate, objectValidator, cfg.Ingest, log),
		SyncService:      NewSyncService(repositories.SyncRepository, hasher, notifier, log),
		AuthService:      NewAuthService(repositories.AccountRepository, hasher, cfg.App, log),
		AccountService:   NewAccountService(repositories.AccountRepository, log),
		DirectoryCache:   directory,
	}, nil
}

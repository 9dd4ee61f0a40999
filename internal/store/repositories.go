package store

import "github.com/MKhiriev/go-taxii/internal/logger"

// Repositories groups every Postgres-backed repository.
type Repositories struct {
	DirectoryRepository DirectoryRepository
	ObjectRepository    ObjectRepository
	JobRepository       JobRepository
	AccountRepository   AccountRepository
	SyncRepository      SyncRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		DirectoryRepository: NewDirectoryRepository(db, log),
		ObjectRepository:    NewObjectRepository(db, log),
		JobRepository:       NewJobRepository(db, log),
		AccountRepository:   NewAccountRepository(db, log),
		SyncRepository:      NewSyncRepository(db, log),
	}
}

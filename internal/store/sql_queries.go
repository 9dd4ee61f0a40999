package store

import (
	"time"

	"github.com/MKhiriev/go-taxii/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	apiRootColumns = `id, title, description, "default", is_public`

	listAPIRoots = `SELECT ` + apiRootColumns + `
		FROM opentaxii_api_root
		ORDER BY title, id;`
	getAPIRoot = `SELECT ` + apiRootColumns + `
		FROM opentaxii_api_root
		WHERE id = $1;`
	clearDefaultAPIRoot = `UPDATE opentaxii_api_root SET "default" = FALSE WHERE "default";`
	insertAPIRoot       = `INSERT INTO opentaxii_api_root (` + apiRootColumns + `)
		VALUES ($1, $2, $3, $4, $5);`

	collectionColumns = `id, api_root_id, title, description, alias, is_public, is_public_write, available`

	listCollections = `SELECT ` + collectionColumns + `
		FROM opentaxii_collection
		WHERE api_root_id = $1
		ORDER BY title, id;`
	listAllCollections = `SELECT ` + collectionColumns + `
		FROM opentaxii_collection
		ORDER BY id;`
	getCollection = `SELECT ` + collectionColumns + `
		FROM opentaxii_collection
		WHERE id = $1;`
	getCollectionByAlias = `SELECT ` + collectionColumns + `
		FROM opentaxii_collection
		WHERE api_root_id = $1 AND alias = $2;`
	insertCollection = `INSERT INTO opentaxii_collection (` + collectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	updateCollection = `UPDATE opentaxii_collection
		SET api_root_id = $2, title = $3, description = $4, alias = $5,
			is_public = $6, is_public_write = $7, available = $8
		WHERE id = $1;`
	deleteCollection  = `DELETE FROM opentaxii_collection WHERE id = $1;`
	disableCollection = `UPDATE opentaxii_collection SET available = FALSE WHERE id = $1;`

	insertObject = `INSERT INTO opentaxii_stixobject
			(pk, id, collection_id, type, spec_version, date_added, version, serialized_data)
		VALUES ($1, $2, $3, $4, $5, clock_timestamp(), $6, $7)
		ON CONFLICT (collection_id, id, version) DO NOTHING
		RETURNING pk;`
	sameObjectPayload = `SELECT serialized_data::jsonb = $4::jsonb
		FROM opentaxii_stixobject
		WHERE collection_id = $1 AND id = $2 AND version = $3;`

	insertJob = `INSERT INTO opentaxii_job (
			id, api_root_id, status, request_timestamp, completed_timestamp,
			total_count, success_count, failure_count, pending_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	insertJobDetail = `INSERT INTO opentaxii_job_detail (id, job_id, stix_id, version, message, status)
		VALUES ($1, $2, $3, $4, $5, $6);`
	resolveJobDetail = `UPDATE opentaxii_job_detail
		SET status = $3, message = $4
		WHERE id = $1 AND job_id = $2 AND status = 'pending';`
	bumpJobCounters = `UPDATE opentaxii_job
		SET pending_count = pending_count - 1,
			success_count = success_count + $2,
			failure_count = failure_count + $3,
			status = CASE WHEN pending_count = 1 THEN 'complete'::job_status_enum ELSE status END,
			completed_timestamp = CASE WHEN pending_count = 1 THEN clock_timestamp() ELSE completed_timestamp END
		WHERE id = $1 AND pending_count > 0;`
	getJob = `SELECT id, api_root_id, status, request_timestamp, completed_timestamp,
			total_count, success_count, failure_count, pending_count
		FROM opentaxii_job
		WHERE api_root_id = $1 AND id = $2;`
	getJobDetails = `SELECT id, job_id, stix_id, version, message, status
		FROM opentaxii_job_detail
		WHERE job_id = $1
		ORDER BY stix_id, version, id;`

	accountColumns = `id, username, password_hash, is_admin, _permissions`

	getAccountByUsername = `SELECT ` + accountColumns + `
		FROM accounts
		WHERE username = $1;`
	getAccountByID = `SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1;`
	listAccounts = `SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY username;`
	insertAccount = `INSERT INTO accounts (username, password_hash, is_admin, _permissions)
		VALUES ($1, $2, $3, $4);`
	updateAccount = `UPDATE accounts
		SET password_hash = $2, is_admin = $3, _permissions = $4
		WHERE id = $1;`
	deleteAccountByUsername = `DELETE FROM accounts WHERE username = $1;`
	deleteAccountByID       = `DELETE FROM accounts WHERE id = $1;`

	acquireSyncLock = `SELECT pg_advisory_lock($1);`
	releaseSyncLock = `SELECT pg_advisory_unlock($1);`

	listServices = `SELECT id, type, _properties, date_created, date_updated
		FROM services
		ORDER BY id;`
	insertService = `INSERT INTO services (id, type, _properties, date_created, date_updated)
		VALUES ($1, $2, $3, NOW(), NOW());`
	updateService = `UPDATE services
		SET type = $2, _properties = $3, date_updated = NOW()
		WHERE id = $1;`
	deleteService = `DELETE FROM services WHERE id = $1;`

	listLegacyCollections = `SELECT id, name, type, description, available, accept_all_content,
			bindings, volume, date_created
		FROM data_collections
		ORDER BY name;`
	listServiceLinks       = `SELECT service_id, collection_id FROM service_to_collection ORDER BY service_id;`
	insertLegacyCollection = `INSERT INTO data_collections
			(name, type, description, accept_all_content, bindings, available, volume, date_created)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW())
		RETURNING id;`
	updateLegacyCollection = `UPDATE data_collections
		SET type = $2, description = $3, accept_all_content = $4, bindings = $5, available = $6
		WHERE id = $1;`
	deleteLegacyCollection  = `DELETE FROM data_collections WHERE id = $1;`
	disableLegacyCollection = `UPDATE data_collections SET available = FALSE WHERE id = $1;`
	deleteServiceLinks      = `DELETE FROM service_to_collection WHERE collection_id = $1;`
	insertServiceLink       = `INSERT INTO service_to_collection (service_id, collection_id) VALUES ($1, $2);`
)

// syncLockKey identifies the reconciliation advisory lock.
const syncLockKey int64 = 0x7461786969

const stixObjectTable = "opentaxii_stixobject"

var (
	objectColumns   = []string{"pk", "id", "collection_id", "type", "spec_version", "date_added", "version", "serialized_data"}
	manifestColumns = []string{"id", "date_added", "version", "spec_version"}
)

// objectFilterConditions returns the row-level predicates of filter. They
// apply before any first/last version selection.
func objectFilterConditions(filter models.ObjectFilter) sq.And {
	conditions := sq.And{sq.Eq{"collection_id": filter.CollectionID.String()}}

	if len(filter.IDs) > 0 {
		conditions = append(conditions, sq.Eq{"id": filter.IDs})
	}
	if len(filter.Types) > 0 {
		conditions = append(conditions, sq.Eq{"type": filter.Types})
	}
	if len(filter.SpecVersions) > 0 {
		conditions = append(conditions, sq.Eq{"spec_version": filter.SpecVersions})
	}
	if filter.Version.Mode == models.VersionSpecific {
		conditions = append(conditions, sq.Eq{"version": filter.Version.Versions})
	}

	return conditions
}

// versionOrder returns the ordering DISTINCT ON (id) needs to keep the
// requested version, or false when every matching version is selected.
func versionOrder(mode models.VersionMode) (string, bool) {
	switch mode {
	case models.VersionFirst:
		return "version ASC", true
	case models.VersionLast:
		return "version DESC", true
	default:
		return "", false
	}
}

// buildListObjectsQuery builds the keyset-paginated select for objects or
// manifest entries. added_after and the cursor apply to the rows left after
// version selection.
func buildListObjectsQuery(query models.ObjectQuery, columns []string) (string, []any, error) {
	conditions := objectFilterConditions(query.Filter)

	var builder sq.SelectBuilder
	if order, distinct := versionOrder(query.Filter.Version.Mode); distinct {
		selected := sq.Select(objectColumns...).
			Options("DISTINCT ON (id)").
			From(stixObjectTable).
			Where(conditions).
			OrderBy("id", order)
		builder = sq.Select(columns...).FromSelect(selected, "selected")
	} else {
		builder = sq.Select(columns...).From(stixObjectTable).Where(conditions)
	}

	if query.Filter.AddedAfter != nil {
		builder = builder.Where(sq.Gt{"date_added": query.Filter.AddedAfter.UTC()})
	}
	if query.After != nil {
		builder = builder.Where("(date_added, id, version) > (?, ?, ?)",
			query.After.DateAdded.UTC(), query.After.ID, query.After.Version.UTC())
	}

	builder = builder.OrderBy("date_added ASC", "id ASC", "version ASC")
	if query.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit))
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

// buildDeleteObjectsQuery builds the delete for the versions selected by
// filter.
func buildDeleteObjectsQuery(filter models.ObjectFilter) (string, []any, error) {
	conditions := objectFilterConditions(filter)

	builder := sq.Delete(stixObjectTable)
	if order, distinct := versionOrder(filter.Version.Mode); distinct {
		selected, args, err := sq.Select("pk").
			Options("DISTINCT ON (id)").
			From(stixObjectTable).
			Where(conditions).
			OrderBy("id", order).
			ToSql()
		if err != nil {
			return "", nil, err
		}
		builder = builder.Where("pk IN ("+selected+")", args...)
	} else {
		builder = builder.Where(conditions)
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

func buildListVersionsQuery(collectionID uuid.UUID, objectID string, specVersions []string) (string, []any, error) {
	builder := sq.Select("version").
		From(stixObjectTable).
		Where(sq.Eq{"collection_id": collectionID.String(), "id": objectID})
	if len(specVersions) > 0 {
		builder = builder.Where(sq.Eq{"spec_version": specVersions})
	}

	return builder.OrderBy("version ASC").PlaceholderFormat(sq.Dollar).ToSql()
}

func buildDeleteCompletedJobsQuery(before time.Time) (string, []any, error) {
	return sq.Delete("opentaxii_job").
		Where(sq.Eq{"status": string(models.JobComplete)}).
		Where(sq.Lt{"completed_timestamp": before.UTC()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

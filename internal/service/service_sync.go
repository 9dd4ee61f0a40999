// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/MKhiriev/go-taxii/internal/cache"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/MKhiriev/go-taxii/internal/validators"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// syncService is the concrete implementation of SyncService.
//
// A run parses and validates the document without touching storage, then
// diffs it against the persisted state, checks every reference and applies
// the resulting plan inside one serializable transaction.
type syncService struct {
	repo      store.SyncRepository
	validator validators.Validator
	hasher    utils.PasswordHasher
	notifier  cache.Notifier
	logger    *logger.Logger
}

// NewSyncService constructs a SyncService.
func NewSyncService(repo store.SyncRepository, hasher utils.PasswordHasher, notifier cache.Notifier, log *logger.Logger) SyncService {
	return &syncService{
		repo:      repo,
		validator: validators.NewSyncDocumentValidator(),
		hasher:    hasher,
		notifier:  notifier,
		logger:    log,
	}
}

// ParseDocument decodes data strictly: unknown or duplicate keys, unknown
// enum values and duplicate entities are all rejected.
func (s *syncService) ParseDocument(ctx context.Context, data []byte) (models.SyncDocument, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc models.SyncDocument
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return models.SyncDocument{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if doc.CollectionsNotInConfig == "" {
		doc.CollectionsNotInConfig = models.PolicyIgnore
	}

	if err := s.validator.Validate(ctx, doc); err != nil {
		return models.SyncDocument{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return doc, nil
}

func (s *syncService) Sync(ctx context.Context, data []byte) (models.SyncReport, error) {
	return s.run(ctx, data, false)
}

// DryRun goes through the whole run under the reconciliation lock and then
// rolls back, so the report and violations are the ones Sync would produce
// against the current state.
func (s *syncService) DryRun(ctx context.Context, data []byte) (models.SyncReport, error) {
	return s.run(ctx, data, true)
}

// errRollback aborts the transaction of a dry run after a successful apply.
var errRollback = errors.New("dry run rollback")

func (s *syncService) run(ctx context.Context, data []byte, dryRun bool) (models.SyncReport, error) {
	log := logger.FromContext(ctx).With().Str("func", "syncService.run").Bool("dry_run", dryRun).Logger()

	doc, err := s.ParseDocument(ctx, data)
	if err != nil {
		log.Err(err).Msg("sync document rejected")
		return models.SyncReport{}, err
	}

	var report models.SyncReport
	err = s.repo.WithinSyncTx(ctx, func(ctx context.Context, tx store.SyncTx) error {
		// A retried attempt starts from a clean report.
		report = models.SyncReport{}

		state, loadErr := tx.LoadState(ctx)
		if loadErr != nil {
			return loadErr
		}

		plan, violations, planErr := BuildSyncPlan(doc, state, s.hasher)
		if planErr != nil {
			return planErr
		}
		if len(violations) > 0 {
			return &ConfigValidationError{Violations: violations}
		}

		var applyErr error
		if report, applyErr = applySyncPlan(ctx, tx, plan); applyErr != nil {
			return applyErr
		}
		if dryRun {
			return errRollback
		}
		return nil
	})
	switch {
	case dryRun && errors.Is(err, errRollback):
		log.Info().
			Any("services", report.Services).
			Any("collections", report.Collections).
			Any("accounts", report.Accounts).
			Msg("dry run rolled back")
		return report, nil
	case errors.Is(err, ErrConfigValidation):
		log.Warn().Err(err).Msg("sync document has unresolved references")
		return models.SyncReport{}, err
	case err != nil:
		log.Err(err).Msg("sync failed")
		return models.SyncReport{}, mapStoreError(err)
	}

	if report.Collections != (models.SyncCounts{}) {
		if pubErr := s.notifier.Publish(ctx); pubErr != nil {
			log.Warn().Err(pubErr).Msg("directory change not broadcast")
		}
	}

	log.Info().
		Any("services", report.Services).
		Any("collections", report.Collections).
		Any("accounts", report.Accounts).
		Msg("configuration synchronized")
	return report, nil
}

// BuildSyncPlan diffs doc against state and checks every reference the
// document makes. It never writes; a non-empty violation list means the
// plan must not be applied.
func BuildSyncPlan(doc models.SyncDocument, state models.SyncState, hasher utils.PasswordHasher) (models.SyncPlan, []models.ReferenceViolation, error) {
	plan := models.SyncPlan{CollectionPolicy: doc.CollectionsNotInConfig}
	var violations []models.ReferenceViolation

	diffServices(doc, state, &plan)
	violations = append(violations, diffLegacyCollections(doc, state, &plan)...)
	violations = append(violations, diffCollections(doc, state, &plan)...)

	accountViolations, err := diffAccounts(doc, state, hasher, &plan)
	if err != nil {
		return models.SyncPlan{}, nil, err
	}
	violations = append(violations, accountViolations...)
	violations = append(violations, checkPermissions(doc, state, plan)...)

	return plan, violations, nil
}

// ── services ──

func diffServices(doc models.SyncDocument, state models.SyncState, plan *models.SyncPlan) {
	persisted := make(map[string]models.Service, len(state.Services))
	for _, svc := range state.Services {
		persisted[svc.ID] = svc
	}

	listed := make(map[string]struct{}, len(doc.Services))
	for _, entry := range doc.Services {
		listed[entry.ID] = struct{}{}
		properties, _ := json.Marshal(entry.Properties)
		if entry.Properties == nil {
			properties = []byte("{}")
		}
		svc := models.Service{ID: entry.ID, Type: entry.Type, Properties: properties}

		existing, ok := persisted[entry.ID]
		switch {
		case !ok:
			plan.CreateServices = append(plan.CreateServices, svc)
		case existing.Type != svc.Type || !sameJSON(existing.Properties, svc.Properties):
			plan.UpdateServices = append(plan.UpdateServices, svc)
		}
	}

	if !doc.PruneServices {
		return
	}
	for _, svc := range state.Services {
		if _, ok := listed[svc.ID]; !ok {
			plan.RemoveServices = append(plan.RemoveServices, svc)
		}
	}
}

func sameJSON(a, b json.RawMessage) bool {
	var left, right any
	if len(a) == 0 {
		a = json.RawMessage("{}")
	}
	if len(b) == 0 {
		b = json.RawMessage("{}")
	}
	if json.Unmarshal(a, &left) != nil || json.Unmarshal(b, &right) != nil {
		return false
	}
	return reflect.DeepEqual(left, right)
}

// ── collections ──

func diffLegacyCollections(doc models.SyncDocument, state models.SyncState, plan *models.SyncPlan) []models.ReferenceViolation {
	var violations []models.ReferenceViolation

	persisted := make(map[string]models.LegacyCollection, len(state.LegacyCollections))
	for _, c := range state.LegacyCollections {
		persisted[c.Name] = c
	}
	services := make(map[string]struct{}, len(state.Services)+len(doc.Services))
	for _, svc := range state.Services {
		services[svc.ID] = struct{}{}
	}
	for _, svc := range doc.Services {
		services[svc.ID] = struct{}{}
	}

	listed := make(map[string]struct{})
	for _, entry := range doc.Collections {
		if entry.IsModern() {
			continue
		}
		listed[entry.Name] = struct{}{}

		serviceIDs := slices.Clone(entry.ServiceIDs)
		slices.Sort(serviceIDs)
		serviceIDs = slices.Compact(serviceIDs)
		for _, id := range serviceIDs {
			if _, ok := services[id]; !ok {
				violations = append(violations, models.ReferenceViolation{
					Key:    entry.Name,
					Reason: fmt.Sprintf("collection references unknown service %q", id),
				})
			}
		}

		desired := models.LegacyCollection{
			Name:             entry.Name,
			Type:             entry.LegacyType(),
			Description:      entry.Description,
			Available:        entry.IsAvailable(),
			AcceptAllContent: entry.AcceptsAllContent(),
			SupportedContent: entry.SupportedContent,
			ServiceIDs:       serviceIDs,
		}

		existing, ok := persisted[entry.Name]
		if !ok {
			plan.CreateLegacyCollections = append(plan.CreateLegacyCollections, desired)
			continue
		}
		desired.ID = existing.ID
		desired.Volume = existing.Volume
		desired.DateCreated = existing.DateCreated
		if !sameLegacyCollection(existing, desired) {
			plan.UpdateLegacyCollections = append(plan.UpdateLegacyCollections, desired)
		}
	}

	for _, c := range state.LegacyCollections {
		if _, ok := listed[c.Name]; ok {
			continue
		}
		switch doc.CollectionsNotInConfig {
		case models.PolicyDisable:
			if c.Available {
				plan.RemoveLegacyCollections = append(plan.RemoveLegacyCollections, c)
			}
		case models.PolicyDelete:
			plan.RemoveLegacyCollections = append(plan.RemoveLegacyCollections, c)
		}
	}

	return violations
}

func sameLegacyCollection(a, b models.LegacyCollection) bool {
	serviceIDs := slices.Clone(a.ServiceIDs)
	slices.Sort(serviceIDs)

	return a.Type == b.Type &&
		sameText(a.Description, b.Description) &&
		a.Available == b.Available &&
		a.AcceptAllContent == b.AcceptAllContent &&
		slices.Equal(a.SupportedContent, b.SupportedContent) &&
		slices.Equal(serviceIDs, b.ServiceIDs)
}

func diffCollections(doc models.SyncDocument, state models.SyncState, plan *models.SyncPlan) []models.ReferenceViolation {
	var violations []models.ReferenceViolation

	persisted := make(map[uuid.UUID]models.Collection, len(state.Collections))
	for _, c := range state.Collections {
		persisted[c.ID] = c
	}
	roots := make(map[uuid.UUID]struct{}, len(state.APIRoots))
	for _, root := range state.APIRoots {
		roots[root.ID] = struct{}{}
	}
	// Removals run after creates and updates, so every persisted alias is
	// still taken when a new or changed alias is written.
	aliasHolders := make(map[string]uuid.UUID)
	for _, c := range state.Collections {
		if c.Alias != nil && *c.Alias != "" {
			aliasHolders[c.APIRootID.String()+"/"+*c.Alias] = c.ID
		}
	}

	listed := make(map[uuid.UUID]struct{})
	for _, entry := range doc.Collections {
		if !entry.IsModern() {
			continue
		}
		id, err := uuid.Parse(entry.ID)
		if err != nil {
			violations = append(violations, models.ReferenceViolation{Key: entry.ID, Reason: "collection id is not a UUID"})
			continue
		}
		listed[id] = struct{}{}

		apiRootID, err := uuid.Parse(entry.APIRootID)
		if _, ok := roots[apiRootID]; err != nil || !ok {
			violations = append(violations, models.ReferenceViolation{
				Key:    id.String(),
				Reason: fmt.Sprintf("collection references unknown api root %q", entry.APIRootID),
			})
			continue
		}

		desired := models.Collection{
			ID:            id,
			APIRootID:     apiRootID,
			Title:         entry.Title,
			Description:   entry.Description,
			Alias:         entry.Alias,
			IsPublic:      entry.IsPublic,
			IsPublicWrite: entry.IsPublicWrite,
			Available:     entry.IsAvailable(),
		}

		if entry.Alias != nil && *entry.Alias != "" {
			holder, taken := aliasHolders[apiRootID.String()+"/"+*entry.Alias]
			if taken && holder != id {
				violations = append(violations, models.ReferenceViolation{
					Key:    id.String(),
					Reason: fmt.Sprintf("alias %q is already used by collection %s", *entry.Alias, holder),
				})
				continue
			}
		}

		existing, ok := persisted[id]
		switch {
		case !ok:
			plan.CreateCollections = append(plan.CreateCollections, desired)
		case !sameCollection(existing, desired):
			plan.UpdateCollections = append(plan.UpdateCollections, desired)
		}
	}

	for _, c := range state.Collections {
		if _, ok := listed[c.ID]; ok {
			continue
		}
		switch doc.CollectionsNotInConfig {
		case models.PolicyDisable:
			if c.Available {
				plan.RemoveCollections = append(plan.RemoveCollections, c)
			}
		case models.PolicyDelete:
			plan.RemoveCollections = append(plan.RemoveCollections, c)
		}
	}

	return violations
}

func sameCollection(a, b models.Collection) bool {
	return a.APIRootID == b.APIRootID &&
		a.Title == b.Title &&
		sameText(a.Description, b.Description) &&
		sameText(a.Alias, b.Alias) &&
		a.IsPublic == b.IsPublic &&
		a.IsPublicWrite == b.IsPublicWrite &&
		a.Available == b.Available
}

func sameText(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ── accounts ──

func diffAccounts(doc models.SyncDocument, state models.SyncState, hasher utils.PasswordHasher, plan *models.SyncPlan) ([]models.ReferenceViolation, error) {
	var violations []models.ReferenceViolation

	persisted := make(map[string]models.Account, len(state.Accounts))
	for _, a := range state.Accounts {
		persisted[a.Username] = a
	}

	listed := make(map[string]struct{}, len(doc.Accounts))
	for _, entry := range doc.Accounts {
		listed[entry.Username] = struct{}{}
		permissions := entry.Permissions
		if permissions == nil {
			permissions = models.Permissions{}
		}

		existing, ok := persisted[entry.Username]
		if !ok {
			if entry.Password == nil {
				violations = append(violations, models.ReferenceViolation{
					Account: entry.Username,
					Reason:  "password is required for a new account",
				})
				continue
			}
			hash, err := hasher.Hash(*entry.Password)
			if err != nil {
				return nil, fmt.Errorf("hashing password of %q: %w", entry.Username, err)
			}
			plan.CreateAccounts = append(plan.CreateAccounts, models.Account{
				Username:     entry.Username,
				PasswordHash: hash,
				IsAdmin:      entry.IsAdmin,
				Permissions:  permissions,
			})
			continue
		}

		desired := existing
		desired.IsAdmin = entry.IsAdmin
		desired.Permissions = permissions
		changed := existing.IsAdmin != desired.IsAdmin || !existing.Permissions.Equal(permissions)

		if entry.Password != nil && !hasher.Verify(existing.PasswordHash, *entry.Password) {
			hash, err := hasher.Hash(*entry.Password)
			if err != nil {
				return nil, fmt.Errorf("hashing password of %q: %w", entry.Username, err)
			}
			desired.PasswordHash = hash
			changed = true
		}

		if changed {
			plan.UpdateAccounts = append(plan.UpdateAccounts, desired)
		}
	}

	if doc.PruneAccounts {
		for _, a := range state.Accounts {
			if _, ok := listed[a.Username]; !ok {
				plan.RemoveAccounts = append(plan.RemoveAccounts, a)
			}
		}
	}

	return violations, nil
}

// checkPermissions resolves every permission key of the document against
// persisted and created collections of its namespace, minus the ones the
// delete policy removes. The grant shape must match the key namespace.
func checkPermissions(doc models.SyncDocument, state models.SyncState, plan models.SyncPlan) []models.ReferenceViolation {
	names := make(map[string]struct{})
	for _, c := range state.LegacyCollections {
		names[c.Name] = struct{}{}
	}
	for _, c := range plan.CreateLegacyCollections {
		names[c.Name] = struct{}{}
	}
	if plan.CollectionPolicy == models.PolicyDelete {
		for _, c := range plan.RemoveLegacyCollections {
			delete(names, c.Name)
		}
	}

	ids := make(map[uuid.UUID]struct{})
	for _, c := range state.Collections {
		ids[c.ID] = struct{}{}
	}
	for _, c := range plan.CreateCollections {
		ids[c.ID] = struct{}{}
	}
	if plan.CollectionPolicy == models.PolicyDelete {
		for _, c := range plan.RemoveCollections {
			delete(ids, c.ID)
		}
	}

	var violations []models.ReferenceViolation
	for _, account := range doc.Accounts {
		for _, key := range account.Permissions.Keys() {
			grant := account.Permissions[key]
			violation := models.ReferenceViolation{Account: account.Username, Key: key.String()}

			switch key.Kind {
			case models.KeyByName:
				if grant.Kind != models.GrantLegacy {
					violation.Reason = "collection name keys take a read or modify grant"
				} else if _, ok := names[key.Name]; !ok {
					violation.Reason = "no collection with this name"
				}
			case models.KeyByID:
				if grant.Kind != models.GrantModern {
					violation.Reason = "collection id keys take a list of read and write"
				} else if _, ok := ids[key.ID]; !ok {
					violation.Reason = "no collection with this id"
				}
			}

			if violation.Reason != "" {
				violations = append(violations, violation)
			}
		}
	}

	return violations
}

// ── apply ──

// applySyncPlan writes plan in the order creates, updates, removals.
func applySyncPlan(ctx context.Context, tx store.SyncTx, plan models.SyncPlan) (models.SyncReport, error) {
	var report models.SyncReport

	for _, svc := range plan.CreateServices {
		if err := tx.CreateService(ctx, svc); err != nil {
			return models.SyncReport{}, err
		}
		report.Services.Created++
	}
	for _, c := range plan.CreateLegacyCollections {
		if _, err := tx.CreateLegacyCollection(ctx, c); err != nil {
			return models.SyncReport{}, err
		}
		report.Collections.Created++
	}
	for _, c := range plan.CreateCollections {
		if err := tx.CreateCollection(ctx, c); err != nil {
			return models.SyncReport{}, err
		}
		report.Collections.Created++
	}
	for _, a := range plan.CreateAccounts {
		if err := tx.CreateAccount(ctx, a); err != nil {
			return models.SyncReport{}, err
		}
		report.Accounts.Created++
	}

	for _, svc := range plan.UpdateServices {
		if err := tx.UpdateService(ctx, svc); err != nil {
			return models.SyncReport{}, err
		}
		report.Services.Updated++
	}
	for _, c := range plan.UpdateLegacyCollections {
		if err := tx.UpdateLegacyCollection(ctx, c); err != nil {
			return models.SyncReport{}, err
		}
		report.Collections.Updated++
	}
	for _, c := range plan.UpdateCollections {
		if err := tx.UpdateCollection(ctx, c); err != nil {
			return models.SyncReport{}, err
		}
		report.Collections.Updated++
	}
	for _, a := range plan.UpdateAccounts {
		if err := tx.UpdateAccount(ctx, a); err != nil {
			return models.SyncReport{}, err
		}
		report.Accounts.Updated++
	}

	for _, a := range plan.RemoveAccounts {
		if err := tx.DeleteAccount(ctx, a.ID); err != nil {
			return models.SyncReport{}, err
		}
		report.Accounts.Removed++
	}
	for _, c := range plan.RemoveLegacyCollections {
		if err := removeLegacyCollection(ctx, tx, plan.CollectionPolicy, c, &report.Collections); err != nil {
			return models.SyncReport{}, err
		}
	}
	for _, c := range plan.RemoveCollections {
		if err := removeCollection(ctx, tx, plan.CollectionPolicy, c, &report.Collections); err != nil {
			return models.SyncReport{}, err
		}
	}
	for _, svc := range plan.RemoveServices {
		if err := tx.DeleteService(ctx, svc.ID); err != nil {
			return models.SyncReport{}, err
		}
		report.Services.Removed++
	}

	return report, nil
}

func removeLegacyCollection(ctx context.Context, tx store.SyncTx, policy models.CollectionPolicy, c models.LegacyCollection, counts *models.SyncCounts) error {
	switch policy {
	case models.PolicyDisable:
		if err := tx.DisableLegacyCollection(ctx, c.ID); err != nil {
			return err
		}
		counts.Disabled++
	case models.PolicyDelete:
		if err := tx.DeleteLegacyCollection(ctx, c.ID); err != nil {
			return err
		}
		counts.Removed++
	}
	return nil
}

func removeCollection(ctx context.Context, tx store.SyncTx, policy models.CollectionPolicy, c models.Collection, counts *models.SyncCounts) error {
	switch policy {
	case models.PolicyDisable:
		if err := tx.DisableCollection(ctx, c.ID); err != nil {
			return err
		}
		counts.Disabled++
	case models.PolicyDelete:
		if err := tx.DeleteCollection(ctx, c.ID); err != nil {
			return err
		}
		counts.Removed++
	}
	return nil
}

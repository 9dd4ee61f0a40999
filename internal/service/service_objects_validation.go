package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-taxii/models"
)

// knownSpecVersions are the accepted match[spec_version] values.
var knownSpecVersions = []string{"2.0", "2.1"}

// objectValidationService rejects malformed read and delete requests
// before they reach the gate or the database.
type objectValidationService struct {
	inner ObjectService
}

// NewObjectValidationService returns a wrapper validating ObjectService input.
func NewObjectValidationService() ObjectServiceWrapper {
	return &objectValidationService{}
}

func (v *objectValidationService) Wrap(inner ObjectService) ObjectService {
	v.inner = inner
	return v
}

func (v *objectValidationService) ListObjects(ctx context.Context, principal *models.Account, ref models.CollectionRef, filter models.ObjectFilter, page models.PageRequest) (models.ObjectPage, error) {
	if err := validateListRequest(filter, page); err != nil {
		return models.ObjectPage{}, err
	}
	return v.inner.ListObjects(ctx, principal, ref, filter, page)
}

func (v *objectValidationService) GetObject(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, filter models.ObjectFilter, page models.PageRequest) (models.ObjectPage, error) {
	if err := validateObjectID(objectID); err != nil {
		return models.ObjectPage{}, err
	}
	if err := validateListRequest(filter, page); err != nil {
		return models.ObjectPage{}, err
	}
	return v.inner.GetObject(ctx, principal, ref, objectID, filter, page)
}

func (v *objectValidationService) ListVersions(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, specVersions []string) ([]time.Time, error) {
	if err := validateObjectID(objectID); err != nil {
		return nil, err
	}
	if err := validateSpecVersions(specVersions); err != nil {
		return nil, err
	}
	return v.inner.ListVersions(ctx, principal, ref, objectID, specVersions)
}

func (v *objectValidationService) ListManifest(ctx context.Context, principal *models.Account, ref models.CollectionRef, filter models.ObjectFilter, page models.PageRequest) (models.ManifestPage, error) {
	if err := validateListRequest(filter, page); err != nil {
		return models.ManifestPage{}, err
	}
	return v.inner.ListManifest(ctx, principal, ref, filter, page)
}

func (v *objectValidationService) DeleteObject(ctx context.Context, principal *models.Account, ref models.CollectionRef, objectID string, filter models.ObjectFilter) error {
	if err := validateObjectID(objectID); err != nil {
		return err
	}
	if err := validateSpecVersions(filter.SpecVersions); err != nil {
		return err
	}
	return v.inner.DeleteObject(ctx, principal, ref, objectID, filter)
}

func validateListRequest(filter models.ObjectFilter, page models.PageRequest) error {
	if page.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrValidation)
	}
	if slices.Contains(filter.IDs, "") || slices.Contains(filter.Types, "") {
		return fmt.Errorf("%w: empty match value", ErrValidation)
	}
	if filter.Version.Mode == models.VersionSpecific && len(filter.Version.Versions) == 0 {
		return fmt.Errorf("%w: no versions to match", ErrValidation)
	}
	return validateSpecVersions(filter.SpecVersions)
}

func validateObjectID(objectID string) error {
	if models.ObjectTypeFromID(objectID) == "" {
		return fmt.Errorf("%w: malformed object id %q", ErrValidation, objectID)
	}
	return nil
}

func validateSpecVersions(specVersions []string) error {
	for _, sv := range specVersions {
		if !slices.Contains(knownSpecVersions, sv) {
			return fmt.Errorf("%w: unknown spec_version %q", ErrValidation, sv)
		}
	}
	return nil
}
